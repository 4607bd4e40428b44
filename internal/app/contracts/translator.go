package contracts

import (
	"adhd-intake-service/internal/app/models"
	"context"
)

// Translator renders English source text in the requested language. It never
// fails: on any problem the source text comes back unchanged.
type Translator interface {
	Translate(ctx context.Context, text string, lang models.Language) string
}
