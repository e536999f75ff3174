package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/pixelcraft/config"
	cachemem "github.com/Gunvolt24/pixelcraft/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/pixelcraft/internal/cache/redis"
	"github.com/Gunvolt24/pixelcraft/internal/kafka"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/internal/repo/postgres"
	rest "github.com/Gunvolt24/pixelcraft/internal/transport/http"
	"github.com/Gunvolt24/pixelcraft/internal/usecase"
	"github.com/Gunvolt24/pixelcraft/pkg/logger"
	"github.com/Gunvolt24/pixelcraft/pkg/metrics"
	"github.com/Gunvolt24/pixelcraft/pkg/telemetry"
	"github.com/Gunvolt24/pixelcraft/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, фид каталога).
type App struct {
	Logger        ports.Logger          // логгер
	HTTPServer    *http.Server          // HTTP API витрины
	MetricsServer *http.Server          // отдельный порт для /metrics (может быть nil)
	FeedConsumer  ports.MessageConsumer // консьюмер фида (nil, если Kafka выключена)

	gracefulTimeout time.Duration // время ожидания завершения HTTP-серверов
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// resolveGinMode — режим Gin по строке из конфигурации;
// неизвестное значение → debug и предупреждение в лог.
func resolveGinMode(ctx context.Context, mode string, log ports.Logger) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	case "", "debug":
		return gin.DebugMode
	default:
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
		return gin.DebugMode
	}
}

// cartStore — Redis при включённой конфигурации, иначе LRU в памяти процесса.
func cartStore(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.CartStore, func(), error) {
	if !cfg.Redis.Enabled {
		log.Infof(ctx, "session carts: memory capacity=%d ttl=%s", cfg.Cache.Capacity, cfg.Cache.TTL)
		return cachemem.NewCartStore(cfg.Cache.Capacity, cfg.Cache.TTL, cachemem.WithLogger(log)), func() {}, nil
	}

	rdb, err := cacheredis.Connect(ctx, cacheredis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return nil, func() {}, err
	}
	log.Infof(ctx, "session carts: redis addr=%s db=%d ttl=%s", cfg.Redis.Addr, cfg.Redis.DB, cfg.Cache.TTL)
	return cacheredis.NewCartStore(rdb, cfg.Cache.TTL), func() {
		if err := rdb.Close(); err != nil {
			log.Warnf(ctx, "redis close: %v", err)
		}
	}, nil
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, postgres.PoolOptions{
		MaxConns: cfg.Postgres.MaxConns,
		AppName:  cfg.Tracing.ServiceName,
	})
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	carts, closeCarts, err := cartStore(ctx, cfg, logg)
	if err != nil {
		pool.Close()
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
			otelServiceName = cfg.Tracing.ServiceName
		}
	}

	// Сборка зависимостей доменного слоя.
	products := postgres.NewProductRepository(pool)
	cartService := usecase.NewCartService(products, carts, logg)
	catalogService := usecase.NewCatalogService(products, logg)
	newsletterService := usecase.NewNewsletterService(postgres.NewNewsletterRepository(pool), logg)

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(cartService, catalogService, newsletterService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, rest.RouterOptions{
		StaticDir:      "./web",
		GinMode:        resolveGinMode(ctx, cfg.HTTP.GinMode, logg),
		AllowOrigins:   cfg.HTTP.AllowOrigins,
		SecureCookie:   cfg.HTTP.SecureCookie,
		TracingService: otelServiceName,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	var metricsSrv *http.Server
	if cfg.Metrics.Addr != "" && cfg.Metrics.Addr != cfg.HTTP.Addr {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout}
	}

	// Фид каталога из Kafka (опционально).
	var consumer *kafka.FeedConsumer
	if cfg.Kafka.Enabled {
		feedService := usecase.NewProductFeedService(products, logg, validate.NewProductValidator())
		consumer = kafka.NewFeedConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, feedService, logg)
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}
	if consumer != nil {
		app.FeedConsumer = consumer
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}

		closeCarts()
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-серверы и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	// Запуск консьюмера.
	if a.FeedConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka feed consumer starting")
			if err := a.FeedConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-серверов.
	servers := []*http.Server{a.HTTPServer}
	if a.MetricsServer != nil {
		servers = append(servers, a.MetricsServer)
	}
	for _, srv := range servers {
		go func(srv *http.Server) {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed addr=%s: %v", srv.Addr, err)
		} else {
			a.Logger.Infof(ctx, "http server stopped gracefully addr=%s", srv.Addr)
		}
	}

	// Остановка консьюмера фида.
	if a.FeedConsumer != nil {
		if err := a.FeedConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
