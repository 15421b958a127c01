package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/guest-order-service/internal/app"
	"github.com/SergeyBogomolovv/guest-order-service/internal/config"
	"github.com/SergeyBogomolovv/guest-order-service/internal/handler"
	"github.com/SergeyBogomolovv/guest-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/guest-order-service/internal/repo"
	"github.com/SergeyBogomolovv/guest-order-service/internal/service"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           Guest Order Service API
// @version         1.0
// @description     Доступ к гостевому заказу по токену
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	handler.RegisterMetrics(reg)

	orderRepo := repo.NewPostgresRepo(db)
	guestOrderService := service.NewGuestOrderService(logger, orderRepo)
	httpHandler := handler.NewHTTPHandler(logger, guestOrderService)

	app := app.New(logger, conf, reg)
	app.SetHTTPHandlers(httpHandler)

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
