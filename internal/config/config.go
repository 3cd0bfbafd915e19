package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	CacheLRU   = "lru"
	CacheRedis = "redis"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Storage Storage `validate:"required"`

	Kafka Kafka

	Postgres Postgres

	Cache Cache `validate:"required"`

	Redis Redis

	Telemetry Telemetry

	Inventory Inventory
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Storage struct {
	Driver string `validate:"required,oneof=memory postgres"`
}

type Kafka struct {
	Enabled bool

	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	// consumed
	StockTopic string `validate:"required"`
	// produced
	OrderEventsTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

// DLQTopic is where stock adjustments that can not be applied end up.
func (k Kafka) DLQTopic() string {
	return k.StockTopic + "-dlq"
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

// DSN renders the settings as a lib/pq key/value connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// URL renders the connection settings in the form golang-migrate expects.
func (p Postgres) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     p.DBName,
		RawQuery: "sslmode=" + p.SSLMode,
	}
	return u.String()
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Driver   string        `validate:"required,oneof=lru redis"`
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
	// number of latest orders loaded on start, 0 disables warm up
	WarmUp int `validate:"gte=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Telemetry struct {
	Enabled     bool
	ServiceName string `validate:"required"`
	Endpoint    string `validate:"required,hostname_port"`
}

type Inventory struct {
	LowStockThreshold int `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Storage: Storage{
			Driver: env("STORAGE_DRIVER", StoragePostgres),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", true),

			GroupID: env("KAFKA_GROUP_ID", "fulfillment-service"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			StockTopic:       env("KAFKA_STOCK_TOPIC", "stock-adjustments"),
			OrderEventsTopic: env("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "fulfillment"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Driver:   env("CACHE_DRIVER", CacheLRU),
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
			WarmUp:   envInt("CACHE_WARM_UP", 100),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Telemetry: Telemetry{
			Enabled:     envBool("OTEL_ENABLED", false),
			ServiceName: env("OTEL_SERVICE_NAME", "fulfillment-service"),
			Endpoint:    env("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		},

		Inventory: Inventory{
			LowStockThreshold: envInt("LOW_STOCK_THRESHOLD", 10),
		},
	}
}

// Validate checks the always-required sections, then the ones switched on by
// the chosen drivers.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.StructExcept(c, "Postgres", "Redis", "Kafka", "Telemetry"); err != nil {
		return err
	}
	if c.Storage.Driver == StoragePostgres {
		if err := validate.Struct(c.Postgres); err != nil {
			return err
		}
	}
	if c.Cache.Driver == CacheRedis {
		if err := validate.Struct(c.Redis); err != nil {
			return err
		}
	}
	if c.Kafka.Enabled {
		if err := validate.Struct(c.Kafka); err != nil {
			return err
		}
	}
	if c.Telemetry.Enabled {
		if err := validate.Struct(c.Telemetry); err != nil {
			return err
		}
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
