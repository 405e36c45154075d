package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/gateways"
)

const (
	BatchSize = 1000 // Quantos documentos inserir no MongoDB por lote

	manifestObject = "manifest.json"
)

var ErrUnknownCollection = errors.New("coleção desconhecida")

type DataLoaderService struct {
	repo    gateways.DatasetRepository
	reader  gateways.ObjectReader
	replace bool
	logger  *zap.Logger
}

func NewDataLoaderService(repo gateways.DatasetRepository, reader gateways.ObjectReader, replace bool, logger *zap.Logger) *DataLoaderService {
	return &DataLoaderService{
		repo:    repo,
		reader:  reader,
		replace: replace,
		logger:  logger,
	}
}

// CollectionFromKey deduz a coleção pelo nome do arquivo ("snapshots/<id>/rooms.json" -> rooms).
func CollectionFromKey(objectKey string) (entities.Collection, error) {
	name := strings.TrimSuffix(path.Base(objectKey), ".json")
	c, ok := entities.ParseCollection(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return c, nil
}

// IngestFromS3 lê o array JSON publicado pelo seeder elemento por elemento e insere em lotes concorrentes.
// O manifest é ignorado. Retorna o número de registros processados.
func (s *DataLoaderService) IngestFromS3(ctx context.Context, bucketName, objectKey string) (int, error) {
	if path.Base(objectKey) == manifestObject {
		s.logger.Info("Manifest ignorado", zap.String("key", objectKey))
		return 0, nil
	}

	collection, err := CollectionFromKey(objectKey)
	if err != nil {
		return 0, err
	}

	log := s.logger.With(zap.String("bucket", bucketName), zap.String("key", objectKey), zap.String("collection", string(collection)))
	log.Info("Iniciando ingestão")

	bodyStream, err := s.reader.GetObjectStream(ctx, bucketName, objectKey)
	if err != nil {
		return 0, fmt.Errorf("falha ao obter stream do S3: %w", err)
	}
	defer bodyStream.Close()

	decoder := json.NewDecoder(bodyStream)

	t, err := decoder.Token()
	if err != nil {
		return 0, fmt.Errorf("falha ao ler token inicial do JSON: %w", err)
	}
	if t != json.Delim('[') {
		return 0, fmt.Errorf("erro: JSON esperado como array, encontrado %v", t)
	}

	if s.replace {
		if err := s.repo.DropCollection(ctx, collection); err != nil {
			return 0, err
		}
	}

	var wg sync.WaitGroup
	errorChannel := make(chan error, 1) // buffer de 1: só o primeiro erro importa

	insert := func(batchNum int, data []any) {
		defer wg.Done()
		log.Debug("Iniciando inserção do lote", zap.Int("batch", batchNum), zap.Int("records", len(data)))
		if err := s.repo.InsertMany(ctx, collection, data); err != nil {
			select {
			case errorChannel <- fmt.Errorf("erro ao inserir lote %d: %w", batchNum, err):
			default:
			}
			log.Error("Erro na inserção do lote", zap.Int("batch", batchNum), zap.Error(err))
			return
		}
		log.Debug("Lote inserido com sucesso", zap.Int("batch", batchNum))
	}

	var currentBatch []any
	recordsProcessed := 0
	batchCount := 0

	for decoder.More() {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			// depois de um erro de sintaxe o decoder não se recupera
			wg.Wait()
			return recordsProcessed, fmt.Errorf("falha ao decodificar registro %d: %w", recordsProcessed+1, err)
		}

		record, err := decodeRecord(collection, raw)
		if err != nil {
			log.Warn("Registro inválido, pulando para o próximo", zap.Int("index", recordsProcessed+1), zap.Error(err))
			continue
		}

		currentBatch = append(currentBatch, record)
		recordsProcessed++

		if len(currentBatch) >= BatchSize {
			batchCount++
			wg.Add(1)
			go insert(batchCount, currentBatch)
			currentBatch = nil
		}
	}

	if len(currentBatch) > 0 {
		batchCount++
		wg.Add(1)
		go insert(batchCount, currentBatch)
	}

	wg.Wait()

	select {
	case err = <-errorChannel:
		return recordsProcessed, fmt.Errorf("um ou mais erros ocorreram durante a inserção: %w", err)
	default:
	}

	t, err = decoder.Token()
	if err != nil {
		return recordsProcessed, fmt.Errorf("falha ao ler token final do JSON: %w", err)
	}
	if t != json.Delim(']') {
		return recordsProcessed, fmt.Errorf("erro: JSON esperado terminar com array, encontrado %v", t)
	}

	log.Info("Ingestão concluída", zap.Int("records", recordsProcessed), zap.Int("batches", batchCount))
	return recordsProcessed, nil
}

// decodeRecord converte o JSON cru no tipo do domínio, para que as tags bson sejam aplicadas na inserção.
func decodeRecord(c entities.Collection, raw json.RawMessage) (any, error) {
	switch c {
	case entities.CollectionDevices:
		return decodeAs[entities.Device](raw)
	case entities.CollectionRooms:
		return decodeAs[entities.Room](raw)
	case entities.CollectionOperations:
		return decodeAs[entities.OperationData](raw)
	case entities.CollectionAdjustments:
		return decodeAs[entities.DeviceAdjustment](raw)
	case entities.CollectionFaultWarnings:
		return decodeAs[entities.FaultWarning](raw)
	case entities.CollectionDeviceLinkages:
		return decodeAs[entities.DeviceLinkage](raw)
	case entities.CollectionUsers:
		return decodeAs[entities.User](raw)
	case entities.CollectionOrganizationUnits:
		return decodeAs[entities.OrganizationUnit](raw)
	case entities.CollectionSafetyEvents:
		return decodeAs[entities.SafetyEvent](raw)
	case entities.CollectionInspectionRecords:
		return decodeAs[entities.InspectionRecord](raw)
	case entities.CollectionRectificationItems:
		return decodeAs[entities.RectificationItem](raw)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
}

func decodeAs[T any](raw json.RawMessage) (any, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
