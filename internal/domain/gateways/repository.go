package gateways

import (
	"context"
	"io"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

type DatasetRepository interface {
	InsertMany(ctx context.Context, collection entities.Collection, documents []any) error
	DropCollection(ctx context.Context, collection entities.Collection) error
}

type ObjectReader interface {
	GetObjectStream(ctx context.Context, bucketName, objectKey string) (io.ReadCloser, error)
}

type ObjectWriter interface {
	UploadFile(ctx context.Context, bucketName, objectKey string, fileContent []byte, contentType string) error
}
