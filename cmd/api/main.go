// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/patrik-rangel/hotel-data-generator/internal/config"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/generators"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/services"
	"github.com/patrik-rangel/hotel-data-generator/internal/httpapi"
	"github.com/patrik-rangel/hotel-data-generator/internal/logger"
	"github.com/patrik-rangel/hotel-data-generator/internal/metrics"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Erro fatal ao carregar configuração: %v", err)
	}

	zl, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "hotel-data-api")
	if err != nil {
		log.Fatalf("Erro fatal ao criar logger: %v", err)
	}
	defer zl.Sync()

	m := metrics.New()
	store := services.NewSnapshotStore(cfg.Hotel, generators.Options{
		OperationDays: cfg.Generation.OperationDays,
		Adjustments:   cfg.Generation.Adjustments,
		Seed:          cfg.Generation.Seed,
	}, m, zl)
	store.Regenerate(0)

	srv := httpapi.NewServer(store, m, zl)
	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      httpapi.NewRouter(srv, m.Handler()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zl.Info("API iniciada", zap.String("addr", cfg.HTTP.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("Erro no servidor HTTP", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zl.Info("Encerrando")
	if err := httpSrv.Shutdown(ctx); err != nil {
		zl.Error("Erro ao encerrar", zap.Error(err))
		os.Exit(1)
	}
}
