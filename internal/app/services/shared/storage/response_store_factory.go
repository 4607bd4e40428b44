package storage

import (
	"adhd-intake-service/internal/app/config"
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/app/drivers/database"
	storagedriver "adhd-intake-service/internal/app/drivers/storage"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/exceptions"
	"context"
	"strings"

	"go.uber.org/zap"
)

// NewResponseStore builds the store named by PERSISTENCE_BACKEND and connects
// only the driver that backend needs. The returned close func releases it.
func NewResponseStore(ctx context.Context, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.ResponseStore, func() error, error) {
	noop := func() error { return nil }
	backend := strings.ToLower(strings.TrimSpace(internalConfig.Persistence.Backend))

	switch backend {
	case constvars.PersistenceBackendCSV:
		return NewCSVResponseStore(internalConfig.Persistence.CSVFilePath, logger), noop, nil
	case constvars.PersistenceBackendMongo:
		client := database.NewMongoDB(driverConfig)
		store := NewMongoResponseStore(client, internalConfig.MongoDB.DBName, internalConfig.MongoDB.ResponsesCollection, logger)
		return store, func() error { return client.Disconnect(context.Background()) }, nil
	case constvars.PersistenceBackendMinio:
		client := storagedriver.NewMinio(driverConfig)
		return NewMinioResponseStore(client, internalConfig.Minio.BucketName, internalConfig.Minio.ObjectPrefix, logger), noop, nil
	case constvars.PersistenceBackendSheets:
		service := storagedriver.NewSheets(ctx, internalConfig)
		return NewSheetsResponseStore(service, internalConfig.Sheets.SpreadsheetID, internalConfig.Sheets.SheetName, logger), noop, nil
	}
	return nil, noop, exceptions.ErrUnknownPersistenceBackend(backend)
}
