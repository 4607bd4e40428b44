package config

import (
	"adhd-intake-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalConfigValidate(t *testing.T) {
	configFor := func(env, secret, draftKey string) *InternalConfig {
		return &InternalConfig{
			App:    App{Env: env},
			JWT:    AppJWT{Secret: secret},
			Intake: AppIntake{DraftEncryptionKey: draftKey},
		}
	}

	t.Run("Development Accepts Defaults", func(t *testing.T) {
		cfg := configFor(constvars.AppEnvDevelopment, DefaultJWTSecret, DefaultDraftEncryptionKey)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Production Rejects Default JWT Secret", func(t *testing.T) {
		cfg := configFor(constvars.AppEnvProduction, DefaultJWTSecret, "a-real-draft-key")
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("Production Rejects Default Draft Key", func(t *testing.T) {
		cfg := configFor(constvars.AppEnvProduction, "a-real-secret", DefaultDraftEncryptionKey)
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "INTAKE_DRAFT_ENCRYPTION_KEY")
	})

	t.Run("Production Rejects Empty Secret", func(t *testing.T) {
		cfg := configFor(constvars.AppEnvProduction, "", "a-real-draft-key")
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production Accepts Configured Secrets", func(t *testing.T) {
		cfg := configFor(constvars.AppEnvProduction, "a-real-secret", "a-real-draft-key")
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Environment Defaults Fail In Production", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvProduction)
		t.Setenv("JWT_SECRET", "")
		t.Setenv("INTAKE_DRAFT_ENCRYPTION_KEY", "")

		assert.Error(t, NewInternalConfig().Validate())
	})
}
