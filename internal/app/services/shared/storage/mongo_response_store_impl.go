package storage

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/exceptions"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type documentInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// mongoResponseStore writes one document per row with the header columns as
// keys, in column order. Documents carry their own header so none is stored
// separately.
type mongoResponseStore struct {
	Collection documentInserter
	Log        *zap.Logger
}

func NewMongoResponseStore(db *mongo.Client, dbName, collection string, logger *zap.Logger) contracts.ResponseStore {
	return &mongoResponseStore{
		Collection: db.Database(dbName).Collection(collection),
		Log:        logger,
	}
}

func (s *mongoResponseStore) Backend() string {
	return constvars.PersistenceBackendMongo
}

func (s *mongoResponseStore) AppendRow(ctx context.Context, header, row []string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	document, err := rowDocument(header, row)
	if err != nil {
		return exceptions.ErrPrepareHeader(err, s.Backend())
	}

	result, err := s.Collection.InsertOne(ctx, document)
	if err != nil {
		s.Log.Error("mongoResponseStore.AppendRow error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPersistResponse(err, s.Backend())
	}

	s.Log.Debug("mongoResponseStore.AppendRow inserted document",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any("inserted_id", result.InsertedID),
	)
	return nil
}

func rowDocument(header, row []string) (bson.D, error) {
	if len(header) != len(row) {
		return nil, fmt.Errorf("header has %d columns but row has %d", len(header), len(row))
	}
	document := make(bson.D, 0, len(header))
	for i, column := range header {
		document = append(document, bson.E{Key: column, Value: row[i]})
	}
	return document, nil
}
