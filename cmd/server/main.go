package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/sales_table/config"
	"github.com/Gunvolt24/sales_table/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sales-table: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env.local — только для локального запуска, в контейнере переменные приходят из окружения
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer cleanup()

	return application.Run(ctx)
}
