package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/sales_table/config"
	"github.com/Gunvolt24/sales_table/internal/domain"
	"github.com/Gunvolt24/sales_table/internal/ports"
	"github.com/Gunvolt24/sales_table/internal/repo/postgres"
	"github.com/Gunvolt24/sales_table/internal/security"
	rest "github.com/Gunvolt24/sales_table/internal/transport/http"
	"github.com/Gunvolt24/sales_table/internal/usecase"
	"github.com/Gunvolt24/sales_table/pkg/httpx"
	"github.com/Gunvolt24/sales_table/pkg/logger"
	"github.com/Gunvolt24/sales_table/pkg/metrics"
	"github.com/Gunvolt24/sales_table/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешний интерфейс (HTTP).
type App struct {
	Logger          ports.Logger  // логгер
	HTTPServer      *http.Server  // HTTP-сервер
	gracefulTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// tokenSecret — ключ подписи токенов из конфигурации;
// пустой → случайный: токены не переживут перезапуск сервиса.
func tokenSecret(ctx context.Context, secret string, log ports.Logger) ([]byte, error) {
	if secret != "" {
		return []byte(secret), nil
	}
	random, err := security.RandomSecret()
	if err != nil {
		return nil, err
	}
	log.Warnf(ctx, "SALES_SECURITY_TOKEN_SECRET is empty, using a random per-process secret")
	return random, nil
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		closeLogger()
		return nil, func() {}, err
	}

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			closeLogger()
			return nil, func() {}, err
		}
		logg.Infof(ctx, "migrations applied")
	}

	secret, err := tokenSecret(ctx, cfg.Security.TokenSecret, logg)
	if err != nil {
		pool.Close()
		closeLogger()
		return nil, func() {}, fmt.Errorf("token secret: %w", err)
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	orderRepo := postgres.NewOrderRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	lookupService := usecase.NewOrderLookupService(orderRepo, domain.DefaultStatusVocabulary(), logg, cfg.Lookup.LoadConcurrency)
	catalogService := usecase.NewProductCatalogService(catalogRepo, logg)
	tokens := security.NewTokenManager(secret, cfg.Security.TokenTTL)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(lookupService, catalogService, tokens, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName, httpx.SessionOptions{
		CookieName: cfg.Security.SessionCookie,
		Secure:     cfg.Security.CookieSecure,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		pool.Close()
		closeLogger()
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки сервера и останавливает его.
// Ошибка запуска сервера (например, занятый порт) возвращается вызывающему.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Errorf(ctx, "http server failed: %v", err)
		runErr = fmt.Errorf("http server: %w", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
