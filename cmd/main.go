package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/fulfillment-service/docs"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/app"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/events"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/handler"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/postgres"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/redisx"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/repo"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/telemetry"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/cache"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// @title           Fulfillment Service API
// @version         1.0
// @description     Product catalog, inventory and order management
// @BasePath        /api/v1
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if conf.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracerProvider(ctx, conf.Telemetry.ServiceName, conf.Telemetry.Endpoint)
		panicIfErr("failed to init tracing", err)
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("failed to flush traces", slog.Any("error", err))
			}
		}()
		logger.Info("tracing enabled", slog.String("endpoint", conf.Telemetry.Endpoint))
	}

	var (
		products  service.ProductRepo
		orders    service.OrderRepo
		txManager trm.Manager
	)
	switch conf.Storage.Driver {
	case config.StoragePostgres:
		db, err := postgres.New(ctx, conf.Postgres, conf.Telemetry.Enabled)
		panicIfErr("failed to connect to db", err)
		defer db.Close()
		panicIfErr("failed to register db metrics", postgres.RegisterMetrics(prometheus.DefaultRegisterer, db, conf.Postgres.DBName))
		logger.Info("postgres connected")

		products = repo.NewPostgresProductRepo(db)
		orders = repo.NewPostgresOrderRepo(db)
		txManager = trm.NewManager(db)
	default:
		store := repo.NewMemoryStore()
		products = store.Products()
		orders = store.Orders()
		txManager = trm.NewNopManager()
		logger.Warn("using in-memory storage, data is lost on restart")
	}

	var starters []app.Starter

	var orderCache service.Cache
	switch conf.Cache.Driver {
	case config.CacheRedis:
		rdb, err := redisx.New(ctx, conf.Redis)
		panicIfErr("failed to connect to redis", err)
		defer rdb.Close()
		logger.Info("redis connected")
		orderCache = redisx.NewOrderCache(logger, rdb, conf.Cache.TTL)
	default:
		lru := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
		registerCacheMetrics(lru)
		starters = append(starters, lru)
		orderCache = lru
	}

	var publisher interface {
		service.EventPublisher
		Close() error
	} = events.NopPublisher{}
	if conf.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(logger, conf.Kafka)
	}
	defer publisher.Close()

	inventoryService := service.NewInventoryService(logger, products)
	catalogService := service.NewCatalogService(logger, products, conf.Inventory.LowStockThreshold)
	orderService := service.NewOrderService(logger, txManager, products, orders, inventoryService, orderCache, publisher)

	starters = append(starters, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.WarmUp})

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewProductHandler(logger, catalogService, inventoryService),
		handler.NewOrderHandler(logger, orderService),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, inventoryService))
	}
	app.SetStarters(starters...)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}

func registerCacheMetrics(lru *cache.LRUCache) {
	const namespace, subsystem = "fulfillment", "lru_cache"

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "entries", Help: "Entries held by the in-process order cache.",
	}, func() float64 { return float64(lru.Stats().Entries) })

	promauto.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "evictions_total", Help: "Entries evicted over capacity.",
	}, func() float64 { return float64(lru.Stats().Evictions) })

	promauto.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "expired_total", Help: "Entries dropped after their TTL.",
	}, func() float64 { return float64(lru.Stats().Expired) })
}
