package storage

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/exceptions"
	"context"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"
)

const (
	sheetsValueInputRaw   = "RAW"
	sheetsInsertDataRows  = "INSERT_ROWS"
	sheetsHeaderRowSuffix = "!1:1"
)

type sheetsResponseStore struct {
	Service       *sheets.Service
	SpreadsheetID string
	SheetName     string
	Log           *zap.Logger

	mu          sync.Mutex
	headerReady bool
}

func NewSheetsResponseStore(service *sheets.Service, spreadsheetID, sheetName string, logger *zap.Logger) contracts.ResponseStore {
	return &sheetsResponseStore{
		Service:       service,
		SpreadsheetID: spreadsheetID,
		SheetName:     sheetName,
		Log:           logger,
	}
}

func (s *sheetsResponseStore) Backend() string {
	return constvars.PersistenceBackendSheets
}

func (s *sheetsResponseStore) AppendRow(ctx context.Context, header, row []string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := s.ensureHeader(ctx, header); err != nil {
		s.Log.Error("sheetsResponseStore.AppendRow error preparing header",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPrepareHeader(err, s.Backend())
	}

	if err := s.append(ctx, row); err != nil {
		s.Log.Error("sheetsResponseStore.AppendRow error appending row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPersistResponse(err, s.Backend())
	}
	return nil
}

// ensureHeader writes the header when the first row of the sheet is empty.
// Once seen it is not checked again for the life of the process.
func (s *sheetsResponseStore) ensureHeader(ctx context.Context, header []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.headerReady {
		return nil
	}

	existing, err := s.Service.Spreadsheets.Values.Get(s.SpreadsheetID, s.SheetName+sheetsHeaderRowSuffix).Context(ctx).Do()
	if err != nil {
		return err
	}
	if len(existing.Values) == 0 || len(existing.Values[0]) == 0 {
		if err := s.append(ctx, header); err != nil {
			return err
		}
	}

	s.headerReady = true
	return nil
}

func (s *sheetsResponseStore) append(ctx context.Context, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, cell := range cells {
		values[i] = cell
	}
	_, err := s.Service.Spreadsheets.Values.Append(s.SpreadsheetID, s.SheetName, &sheets.ValueRange{
		Values: [][]interface{}{values},
	}).ValueInputOption(sheetsValueInputRaw).InsertDataOption(sheetsInsertDataRows).Context(ctx).Do()
	return err
}
