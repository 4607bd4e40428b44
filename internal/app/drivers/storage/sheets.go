package storage

import (
	"adhd-intake-service/internal/app/config"
	"context"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewSheets authenticates with a service account key file. The target
// spreadsheet must be shared with that account.
func NewSheets(ctx context.Context, internalConfig *config.InternalConfig) *sheets.Service {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(internalConfig.Sheets.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		log.Fatalf("Google Sheets access error, make sure the API is enabled and the sheet is shared with the service account: %s", err.Error())
	}

	log.Println("Successfully connected to google sheets")
	return service
}
