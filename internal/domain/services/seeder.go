package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/gateways"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/generators"
)

const jsonContentType = "application/json"

type SeederService struct {
	writer gateways.ObjectWriter
	bucket string
	prefix string
	hotel  entities.HotelConfig
	opts   generators.Options
	logger *zap.Logger
}

func NewSeederService(writer gateways.ObjectWriter, bucket, prefix string, hotel entities.HotelConfig, opts generators.Options, logger *zap.Logger) *SeederService {
	return &SeederService{
		writer: writer,
		bucket: bucket,
		prefix: prefix,
		hotel:  hotel,
		opts:   opts,
		logger: logger,
	}
}

// ObjectKey monta a chave de uma coleção publicada: <prefix>/<snapshotID>/<collection>.json
func ObjectKey(prefix, snapshotID string, c entities.Collection) string {
	return path.Join(prefix, snapshotID, string(c)+".json")
}

// Run gera um snapshot novo e publica.
func (s *SeederService) Run(ctx context.Context, now time.Time) (*entities.Snapshot, error) {
	snap := generators.BuildSnapshot(s.hotel, s.opts, now)
	s.logger.Info("Snapshot gerado",
		zap.String("snapshot_id", snap.ID),
		zap.Int64("seed", snap.Seed),
		zap.Int("devices", len(snap.Devices)),
		zap.Int("rooms", len(snap.Rooms)),
		zap.Int("adjustments", len(snap.Adjustments)),
	)
	if err := s.Publish(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Publish envia cada coleção como um array JSON, em paralelo, e por último o manifest.
// O manifest só é escrito se todas as coleções subiram.
func (s *SeederService) Publish(ctx context.Context, snap *entities.Snapshot) error {
	var wg sync.WaitGroup
	errorChannel := make(chan error, 1)

	for _, c := range entities.AllCollections {
		body, err := json.Marshal(snap.Records(c))
		if err != nil {
			return fmt.Errorf("falha ao serializar coleção %s: %w", c, err)
		}

		wg.Add(1)
		go func(c entities.Collection, body []byte) {
			defer wg.Done()
			key := ObjectKey(s.prefix, snap.ID, c)
			if err := s.writer.UploadFile(ctx, s.bucket, key, body, jsonContentType); err != nil {
				select {
				case errorChannel <- fmt.Errorf("erro ao publicar coleção %s: %w", c, err):
				default:
				}
				s.logger.Error("Falha ao publicar coleção", zap.String("collection", string(c)), zap.Error(err))
			}
		}(c, body)
	}

	wg.Wait()

	select {
	case err := <-errorChannel:
		return err
	default:
	}

	manifest, err := json.Marshal(snap.Manifest())
	if err != nil {
		return fmt.Errorf("falha ao serializar manifest: %w", err)
	}
	key := path.Join(s.prefix, snap.ID, manifestObject)
	if err := s.writer.UploadFile(ctx, s.bucket, key, manifest, jsonContentType); err != nil {
		return fmt.Errorf("erro ao publicar manifest: %w", err)
	}

	s.logger.Info("Snapshot publicado", zap.String("snapshot_id", snap.ID), zap.String("bucket", s.bucket))
	return nil
}
