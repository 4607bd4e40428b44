package storage

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/exceptions"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// csvResponseStore owns a local file. Appends are serialized here since no
// other process is expected to write to it.
type csvResponseStore struct {
	mu   sync.Mutex
	Path string
	Log  *zap.Logger
}

func NewCSVResponseStore(path string, logger *zap.Logger) contracts.ResponseStore {
	return &csvResponseStore{
		Path: path,
		Log:  logger,
	}
}

func (s *csvResponseStore) Backend() string {
	return constvars.PersistenceBackendCSV
}

func (s *csvResponseStore) AppendRow(ctx context.Context, header, row []string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := ctx.Err(); err != nil {
		return exceptions.ErrPersistResponse(err, s.Backend())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exceptions.ErrPrepareHeader(err, s.Backend())
		}
	}

	file, err := os.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return exceptions.ErrPersistResponse(err, s.Backend())
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return exceptions.ErrPrepareHeader(err, s.Backend())
	}

	writer := csv.NewWriter(file)
	if info.Size() == 0 {
		s.Log.Info("csvResponseStore.AppendRow writing header to empty file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		if err := writer.Write(header); err != nil {
			return exceptions.ErrPrepareHeader(err, s.Backend())
		}
	}
	if err := writer.Write(row); err != nil {
		return exceptions.ErrPersistResponse(err, s.Backend())
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return exceptions.ErrPersistResponse(err, s.Backend())
	}
	return nil
}
