package services

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/generators"
)

var ErrSnapshotNotFound = errors.New("nenhum snapshot gerado")

// SnapshotObserver recebe o manifest e o tempo de geração de cada snapshot novo.
type SnapshotObserver interface {
	ObserveSnapshot(manifest entities.Manifest, took time.Duration)
}

// SnapshotStore mantém o snapshot atual servido pela API. O snapshot é trocado inteiro e nunca alterado.
type SnapshotStore struct {
	mu       sync.RWMutex
	current  *entities.Snapshot
	hotel    entities.HotelConfig
	opts     generators.Options
	observer SnapshotObserver
	logger   *zap.Logger
	now      func() time.Time
}

func NewSnapshotStore(hotel entities.HotelConfig, opts generators.Options, observer SnapshotObserver, logger *zap.Logger) *SnapshotStore {
	return &SnapshotStore{
		hotel:    hotel,
		opts:     opts,
		observer: observer,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *SnapshotStore) Current() (*entities.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrSnapshotNotFound
	}
	return s.current, nil
}

// Regenerate gera um snapshot novo. seed != 0 sobrescreve a seed configurada.
func (s *SnapshotStore) Regenerate(seed int64) *entities.Snapshot {
	opts := s.opts
	if seed != 0 {
		opts.Seed = seed
	}

	begin := time.Now()
	snap := generators.BuildSnapshot(s.hotel, opts, s.now())
	took := time.Since(begin)

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.ObserveSnapshot(snap.Manifest(), took)
	}
	s.logger.Info("Snapshot regenerado",
		zap.String("snapshot_id", snap.ID),
		zap.Int64("seed", snap.Seed),
		zap.Duration("took", took),
	)
	return snap
}
