//go:build integration

package repo

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := t.Context()

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("fulfillment"),
		postgres.WithUsername("fulfillment"),
		postgres.WithPassword("fulfillment"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := migrate.New(migrationsPath(), connStr)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("failed to run migrations: %v", err)
	}
	_, _ = m.Close()

	db, err := sqlx.Connect("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func migrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(filename), "..", "..")
	return "file://" + filepath.Join(root, "migrations")
}

func seedProduct(t *testing.T, products *postgresProductRepo, name string, stock int) entities.Product {
	t.Helper()
	p, err := products.Create(t.Context(), entities.Product{
		ID:            uuid.NewString(),
		Name:          name,
		Price:         decimal.RequireFromString("10.00"),
		StockQuantity: stock,
		Category:      "general",
		Active:        true,
	})
	require.NoError(t, err)
	return p
}

func TestPostgres(t *testing.T) {
	db := setupPostgres(t)
	products := NewPostgresProductRepo(db)
	orders := NewPostgresOrderRepo(db)
	txManager := trm.NewManager(db)

	t.Run("product round trip", func(t *testing.T) {
		ctx := t.Context()
		p, err := products.Create(ctx, entities.Product{
			ID:            uuid.NewString(),
			Name:          "Desk Lamp",
			Description:   "Warm LED light",
			Price:         decimal.RequireFromString("19.99"),
			StockQuantity: 4,
			Category:      "lighting",
			SKU:           "LMP-PG-1",
			Active:        true,
		})
		require.NoError(t, err)
		assert.False(t, p.CreatedAt.IsZero())

		got, err := products.GetBySKU(ctx, "LMP-PG-1")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.True(t, decimal.RequireFromString("19.99").Equal(got.Price))

		_, err = products.Create(ctx, entities.Product{
			ID: uuid.NewString(), Name: "Other", Price: decimal.NewFromInt(1), Category: "x", SKU: "LMP-PG-1",
		})
		assert.ErrorIs(t, err, entities.ErrDuplicateResource)

		exists, err := products.ExistsBySKU(ctx, "LMP-PG-1", p.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		found, err := products.List(ctx, entities.ProductFilter{Keyword: "led"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, p.ID, found[0].ID)

		_, err = products.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})

	t.Run("concurrent decrements never oversell", func(t *testing.T) {
		p := seedProduct(t, products, "Scarce", 10)

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := products.DecrementStock(t.Context(), p.ID, 3)
				assert.NoError(t, err)
				if ok {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 3, succeeded)
		got, err := products.GetByID(t.Context(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.StockQuantity)
	})

	t.Run("failed transaction leaves nothing behind", func(t *testing.T) {
		ctx := t.Context()
		p := seedProduct(t, products, "Rollback", 5)
		o, err := entities.NewOrder("Jane", "jane@example.com", []entities.OrderLine{
			{ProductID: p.ID, ProductName: p.Name, Quantity: 2, UnitPrice: p.Price},
		}, time.Now())
		require.NoError(t, err)

		boom := errors.New("boom")
		err = txManager.Do(ctx, func(ctx context.Context) error {
			ok, err := products.DecrementStock(ctx, p.ID, 2)
			require.NoError(t, err)
			require.True(t, ok)
			require.NoError(t, orders.Create(ctx, o))
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := products.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, got.StockQuantity)

		_, err = orders.GetByID(ctx, o.ID)
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})

	t.Run("orders", func(t *testing.T) {
		ctx := t.Context()
		a := seedProduct(t, products, "Keyboard", 5)
		b := seedProduct(t, products, "Mouse", 5)

		o, err := entities.NewOrder("Jane", "jane.pg@example.com", []entities.OrderLine{
			{ProductID: b.ID, ProductName: b.Name, Quantity: 1, UnitPrice: b.Price},
			{ProductID: a.ID, ProductName: a.Name, Quantity: 2, UnitPrice: a.Price},
		}, time.Now().UTC())
		require.NoError(t, err)
		require.NoError(t, orders.Create(ctx, o))

		clash := o
		clash.ID = uuid.NewString()
		assert.ErrorIs(t, orders.Create(ctx, clash), entities.ErrDuplicateResource)

		got, err := orders.GetByNumber(ctx, o.OrderNumber)
		require.NoError(t, err)
		require.Len(t, got.Lines, 2)
		assert.Equal(t, b.ID, got.Lines[0].ProductID, "lines keep their order")
		assert.True(t, decimal.RequireFromString("30.00").Equal(got.Total()))

		ok, err := orders.UpdateStatus(ctx, o.ID, entities.StatusConfirmed, entities.StatusProcessing)
		require.NoError(t, err)
		assert.False(t, ok, "order is not CONFIRMED yet")

		ok, err = orders.UpdateStatus(ctx, o.ID, entities.StatusPending, entities.StatusConfirmed)
		require.NoError(t, err)
		assert.True(t, ok)

		byEmail, err := orders.List(ctx, entities.OrderFilter{CustomerEmail: "jane.pg@example.com"})
		require.NoError(t, err)
		require.Len(t, byEmail, 1)
		assert.Equal(t, entities.StatusConfirmed, byEmail[0].Status)

		counts, err := orders.CountByStatus(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, counts[entities.StatusConfirmed], 1)
		assert.Contains(t, counts, entities.StatusDelivered)

		err = products.Delete(ctx, a.ID)
		assert.ErrorIs(t, err, entities.ErrInvalidArgument)
	})
}
