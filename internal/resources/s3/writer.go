package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

type S3ResourceWriter struct {
	client *s3.Client
	logger *zap.Logger
}

func NewS3ResourceWriter(ctx context.Context, endpoint string, logger *zap.Logger) (*S3ResourceWriter, error) {
	client, err := newClient(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar cliente S3 Writer: %w", err)
	}
	return &S3ResourceWriter{client: client, logger: logger}, nil
}

// UploadFile faz o upload do conteúdo de um slice de bytes para um bucket S3.
func (a *S3ResourceWriter) UploadFile(ctx context.Context, bucketName, objectKey string, fileContent []byte, contentType string) error {
	a.logger.Info("Iniciando upload",
		zap.String("bucket", bucketName),
		zap.String("key", objectKey),
		zap.String("content_type", contentType),
		zap.Int("bytes", len(fileContent)),
	)

	putObjectInput := &s3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(fileContent),
		ContentType: aws.String(contentType),
	}

	_, err := a.client.PutObject(ctx, putObjectInput)
	if err != nil {
		return fmt.Errorf("falha ao fazer upload para S3 para a chave '%s': %w", objectKey, err)
	}

	a.logger.Info("Upload concluído com sucesso", zap.String("key", objectKey))
	return nil
}
