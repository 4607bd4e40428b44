package utils

import (
	"adhd-intake-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeResponseBundle(t *testing.T) {
	t.Run("Identity Sanitization", func(t *testing.T) {
		bundle := &models.ResponseBundle{
			Name:  "  Jane Doe ",
			Email: "  J@X.COM  ",
			Phone: " 555-1234\t",
		}

		SanitizeResponseBundle(bundle)

		assert.Equal(t, "Jane Doe", bundle.Name, "name should be trimmed")
		assert.Equal(t, "j@x.com", bundle.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "555-1234", bundle.Phone, "phone should be trimmed")
	})

	t.Run("Whitespace Only Text Becomes Empty", func(t *testing.T) {
		bundle := &models.ResponseBundle{
			FunctionalImpairment: "   \n ",
			ParentRole:           "\t",
		}

		SanitizeResponseBundle(bundle)

		assert.Empty(t, bundle.FunctionalImpairment)
		assert.Empty(t, bundle.ParentRole)
	})

	t.Run("Nil Comorbidities Initialized", func(t *testing.T) {
		bundle := &models.ResponseBundle{}

		SanitizeResponseBundle(bundle)

		assert.NotNil(t, bundle.Comorbidities)
	})
}
