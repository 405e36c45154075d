// cmd/loader/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/patrik-rangel/hotel-data-generator/internal/config"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/services"
	"github.com/patrik-rangel/hotel-data-generator/internal/logger"
	"github.com/patrik-rangel/hotel-data-generator/internal/resources/database/mongodb"
	"github.com/patrik-rangel/hotel-data-generator/internal/resources/s3"
)

type handler struct {
	ingest *services.DataLoaderService
	logger *zap.Logger
}

// Handle processa cada objeto do evento; um arquivo com erro não impede os demais.
func (h *handler) Handle(ctx context.Context, s3Event events.S3Event) error {
	var errs []error
	for _, record := range s3Event.Records {
		bucketName := record.S3.Bucket.Name
		objectKey := record.S3.Object.URLDecodedKey
		if objectKey == "" {
			objectKey = record.S3.Object.Key
		}

		n, err := h.ingest.IngestFromS3(ctx, bucketName, objectKey)
		if err != nil {
			h.logger.Error("Erro ao processar arquivo S3",
				zap.String("bucket", bucketName),
				zap.String("key", objectKey),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s/%s: %w", bucketName, objectKey, err))
			continue
		}
		h.logger.Info("Arquivo processado", zap.String("key", objectKey), zap.Int("records", n))
	}
	return errors.Join(errs...)
}

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Erro fatal ao carregar configuração: %v", err)
	}
	if err := cfg.RequireMongo(); err != nil {
		log.Fatalf("Erro fatal: %v", err)
	}

	zl, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "hotel-data-loader")
	if err != nil {
		log.Fatalf("Erro fatal ao criar logger: %v", err)
	}
	defer zl.Sync()

	mongoRepo, err := mongodb.NewMongoRepository(cfg.Mongo.URI, cfg.Mongo.Database, zl)
	if err != nil {
		zl.Fatal("Erro fatal ao criar repositório MongoDB", zap.Error(err))
	}
	defer mongoRepo.CloseConnection(context.Background())

	s3Rdr, err := s3.NewS3Resource(context.Background(), cfg.S3.Endpoint, zl)
	if err != nil {
		zl.Fatal("Erro fatal ao criar adaptador S3", zap.Error(err))
	}

	h := &handler{
		ingest: services.NewDataLoaderService(mongoRepo, s3Rdr, cfg.Mongo.Replace, zl),
		logger: zl,
	}
	lambda.Start(h.Handle)
}
