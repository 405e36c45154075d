// cmd/seeder/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/patrik-rangel/hotel-data-generator/internal/config"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/generators"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/services"
	"github.com/patrik-rangel/hotel-data-generator/internal/logger"
	"github.com/patrik-rangel/hotel-data-generator/internal/resources/s3"
)

// Executado por uma regra agendada do EventBridge. Cada execução publica um snapshot novo no S3;
// o loader é disparado pelos eventos de criação desses objetos.
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Erro fatal ao carregar configuração: %v", err)
	}
	if err := cfg.RequireS3(); err != nil {
		log.Fatalf("Erro fatal: %v", err)
	}

	zl, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "hotel-data-seeder")
	if err != nil {
		log.Fatalf("Erro fatal ao criar logger: %v", err)
	}
	defer zl.Sync()

	writer, err := s3.NewS3ResourceWriter(context.Background(), cfg.S3.Endpoint, zl)
	if err != nil {
		zl.Fatal("Erro fatal ao criar adaptador S3", zap.Error(err))
	}

	seeder := services.NewSeederService(writer, cfg.S3.Bucket, cfg.S3.Prefix, cfg.Hotel, generators.Options{
		OperationDays: cfg.Generation.OperationDays,
		Adjustments:   cfg.Generation.Adjustments,
		Seed:          cfg.Generation.Seed,
	}, zl)

	lambda.Start(func(ctx context.Context, event events.CloudWatchEvent) error {
		now := event.Time
		if now.IsZero() {
			now = time.Now()
		}
		_, err := seeder.Run(ctx, now.Local())
		return err
	})
}
