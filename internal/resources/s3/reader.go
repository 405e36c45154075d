package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

type S3Resource struct {
	client *s3.Client
	logger *zap.Logger
}

// NewS3Resource carrega a configuração padrão da AWS. Um endpoint não vazio (MinIO, LocalStack)
// ativa o endereçamento por caminho.
func NewS3Resource(ctx context.Context, endpoint string, logger *zap.Logger) (*S3Resource, error) {
	client, err := newClient(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return &S3Resource{client: client, logger: logger}, nil
}

func newClient(ctx context.Context, endpoint string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar a configuração AWS: %w", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// GetObjectStream baixa um objeto do S3 e retorna seu conteúdo como um io.ReadCloser.
// É responsabilidade do chamador fechar o io.ReadCloser.
func (a *S3Resource) GetObjectStream(ctx context.Context, bucketName, objectKey string) (io.ReadCloser, error) {
	a.logger.Debug("Obtendo stream do objeto", zap.String("bucket", bucketName), zap.String("key", objectKey))

	input := &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	}

	resp, err := a.client.GetObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter stream do objeto S3 %s/%s: %w", bucketName, objectKey, err)
	}

	a.logger.Debug("Stream do objeto obtido com sucesso", zap.String("bucket", bucketName), zap.String("key", objectKey))
	return resp.Body, nil
}
