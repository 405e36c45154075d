package services

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

// MockDatasetRepository is a mock implementation of gateways.DatasetRepository
type MockDatasetRepository struct {
	mock.Mock
	mu       sync.Mutex
	inserted []any
}

func (m *MockDatasetRepository) InsertMany(ctx context.Context, collection entities.Collection, documents []any) error {
	args := m.Called(ctx, collection, documents)
	if args.Error(0) == nil {
		m.mu.Lock()
		m.inserted = append(m.inserted, documents...)
		m.mu.Unlock()
	}
	return args.Error(0)
}

func (m *MockDatasetRepository) DropCollection(ctx context.Context, collection entities.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

type fakeReader struct {
	body string
	err  error
}

func (f *fakeReader) GetObjectStream(_ context.Context, _, _ string) (io.ReadCloser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.body)), nil
}

// MockObjectWriter is a mock implementation of gateways.ObjectWriter
type MockObjectWriter struct {
	mock.Mock
	mu      sync.Mutex
	uploads map[string][]byte
}

func (m *MockObjectWriter) UploadFile(ctx context.Context, bucketName, objectKey string, fileContent []byte, contentType string) error {
	args := m.Called(ctx, bucketName, objectKey, fileContent, contentType)
	if args.Error(0) == nil {
		m.mu.Lock()
		if m.uploads == nil {
			m.uploads = map[string][]byte{}
		}
		m.uploads[objectKey] = fileContent
		m.mu.Unlock()
	}
	return args.Error(0)
}
