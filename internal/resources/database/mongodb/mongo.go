// internal/resources/database/mongodb/mongo.go
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

type MongoRepository struct {
	client       *mongo.Client
	databaseName string
	logger       *zap.Logger
}

func NewMongoRepository(connectionString, databaseName string, logger *zap.Logger) (*MongoRepository, error) {
	clientOptions := options.Client().ApplyURI(connectionString)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao MongoDB: %w", err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		return nil, fmt.Errorf("falha ao fazer ping no MongoDB: %w", err)
	}

	logger.Info("Conectado com sucesso ao MongoDB", zap.String("database", databaseName))
	return &MongoRepository{
		client:       client,
		databaseName: databaseName,
		logger:       logger,
	}, nil
}

func (r *MongoRepository) InsertMany(ctx context.Context, collection entities.Collection, documents []any) error {
	if len(documents) == 0 {
		return nil
	}
	coll := r.client.Database(r.databaseName).Collection(string(collection))

	r.logger.Debug("Inserindo documentos",
		zap.Int("count", len(documents)),
		zap.String("collection", string(collection)),
		zap.String("database", r.databaseName),
	)

	insertCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := coll.InsertMany(insertCtx, documents, options.InsertMany().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("falha ao inserir documentos em '%s': %w", collection, err)
	}

	r.logger.Debug("Documentos inseridos com sucesso",
		zap.String("collection", string(collection)),
		zap.Int("inserted", len(res.InsertedIDs)),
	)
	return nil
}

// DropCollection remove a coleção inteira antes de uma nova carga.
func (r *MongoRepository) DropCollection(ctx context.Context, collection entities.Collection) error {
	if err := r.client.Database(r.databaseName).Collection(string(collection)).Drop(ctx); err != nil {
		return fmt.Errorf("falha ao remover a coleção '%s': %w", collection, err)
	}
	r.logger.Info("Coleção removida", zap.String("collection", string(collection)))
	return nil
}

func (r *MongoRepository) CloseConnection(ctx context.Context) error {
	if r.client != nil {
		return r.client.Disconnect(ctx)
	}
	return nil
}
