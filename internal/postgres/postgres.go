package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"

	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const driverName = "postgres"

// the database container usually comes up a few seconds after the service
var pingRetry = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2,
}

// New opens the pool and waits until the database answers. With traced set
// every query gets its own span.
func New(ctx context.Context, cfg config.Postgres, traced bool) (*sqlx.DB, error) {
	dsn := cfg.DSN()

	var (
		sqlDB *sql.DB
		err   error
	)
	if traced {
		sqlDB, err = otelsql.Open(driverName, dsn, otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	} else {
		sqlDB, err = sql.Open(driverName, dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	db := sqlx.NewDb(sqlDB, driverName)
	configurePool(db, cfg)

	err = utils.Retry(ctx, pingRetry, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return db.PingContext(pingCtx)
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return db, nil
}

func configurePool(db *sqlx.DB, cfg config.Postgres) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// RegisterMetrics exposes pool statistics under the go_sql_* metric family.
func RegisterMetrics(reg prometheus.Registerer, db *sqlx.DB, name string) error {
	return reg.Register(collectors.NewDBStatsCollector(db.DB, name))
}
