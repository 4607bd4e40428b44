package translation

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/app/models"
	"context"
)

type passthroughTranslator struct{}

// NewPassthroughTranslator returns every text unchanged. Used offline and when
// no translation endpoint is configured.
func NewPassthroughTranslator() contracts.Translator {
	return passthroughTranslator{}
}

func (passthroughTranslator) Translate(_ context.Context, text string, _ models.Language) string {
	return text
}
