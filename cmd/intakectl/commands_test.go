package main

import (
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/app/services/core/forms"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeAdultBundle() models.ResponseBundle {
	bundle := models.NewResponseBundle(models.ResponderSelf, models.LanguageEnglish)
	bundle.Name = "Jane Doe"
	bundle.Email = "j@x.com"
	bundle.Phone = "555-1234"
	for i := range bundle.Symptoms {
		bundle.Symptoms[i] = models.FrequencyOften
	}
	bundle.FunctionalImpairment = "Misses deadlines at work"
	bundle.MultiSetting = models.YesNoYes
	bundle.Consent = true
	bundle.ChildhoodHistory = "Teachers reported daydreaming"
	for i := range bundle.ASRS {
		bundle.ASRS[i] = models.FrequencySometimes
	}
	return bundle
}

func writeBundle(t *testing.T, bundle models.ResponseBundle) string {
	t.Helper()
	raw, err := json.Marshal(bundle)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func runCommand(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidateCommand(t *testing.T) {
	t.Run("Complete Bundle Passes", func(t *testing.T) {
		stdout, _, err := runCommand("validate", writeBundle(t, completeAdultBundle()))
		require.NoError(t, err)

		var report validateReport
		require.NoError(t, json.Unmarshal([]byte(stdout), &report))
		assert.True(t, report.OK)
		assert.Equal(t, models.PatientTypeAdult, report.PatientType)
		assert.True(t, report.Safety.Safe)
		require.NotNil(t, report.ASRSScore)
		assert.Equal(t, 12, *report.ASRSScore)
	})

	t.Run("Missing Fields Are Reported In Order", func(t *testing.T) {
		bundle := completeAdultBundle()
		bundle.Email = "   "
		bundle.Consent = false

		stdout, stderr, err := runCommand("validate", writeBundle(t, bundle))
		assert.ErrorIs(t, err, errBundleIncomplete)

		var report validateReport
		require.NoError(t, json.Unmarshal([]byte(stdout), &report))
		assert.False(t, report.OK)
		assert.Equal(t, []string{string(models.FieldEmail), string(models.FieldConsent)}, report.Missing)
		assert.Contains(t, stderr, "bundle is incomplete")
	})

	t.Run("Patient Type Flag Switches Branch", func(t *testing.T) {
		stdout, _, err := runCommand("validate", "--patient-type", "child", writeBundle(t, completeAdultBundle()))
		assert.ErrorIs(t, err, errBundleIncomplete)

		var report validateReport
		require.NoError(t, json.Unmarshal([]byte(stdout), &report))
		assert.Equal(t, models.PatientTypeChild, report.PatientType)
		assert.Equal(t, []string{string(models.FieldParentRole)}, report.Missing)
	})

	t.Run("Active Plan Is Flagged", func(t *testing.T) {
		bundle := completeAdultBundle()
		bundle.Suicidality = models.SuicidalityActivePlan

		stdout, stderr, err := runCommand("validate", writeBundle(t, bundle))
		require.NoError(t, err)

		var report validateReport
		require.NoError(t, json.Unmarshal([]byte(stdout), &report))
		assert.False(t, report.Safety.Safe)
		assert.Contains(t, stderr, "emergency services")
	})

	t.Run("Unreadable File", func(t *testing.T) {
		_, _, err := runCommand("validate", filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("Invalid Patient Type", func(t *testing.T) {
		_, _, err := runCommand("validate", "--patient-type", "elderly", writeBundle(t, completeAdultBundle()))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errBundleIncomplete)
	})
}

func TestScoreCommand(t *testing.T) {
	t.Run("Complete Answers", func(t *testing.T) {
		stdout, _, err := runCommand("score", writeBundle(t, completeAdultBundle()))
		require.NoError(t, err)

		result := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(stdout), &result))
		assert.Equal(t, true, result["complete"])
		assert.Equal(t, float64(12), result["score"])
	})

	t.Run("Incomplete Answers", func(t *testing.T) {
		bundle := completeAdultBundle()
		bundle.ASRS[5] = ""

		stdout, _, err := runCommand("score", writeBundle(t, bundle))
		require.NoError(t, err)

		result := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(stdout), &result))
		assert.Equal(t, false, result["complete"])
		assert.NotContains(t, result, "score")
	})
}

func TestHeaderCommand(t *testing.T) {
	stdout, _, err := runCommand("header")
	require.NoError(t, err)

	columns := strings.Split(strings.TrimSpace(stdout), ",")
	assert.Equal(t, forms.Header(), columns)
	assert.Equal(t, "Participant_ID", columns[0])
}

func TestFormCommand(t *testing.T) {
	t.Run("Defaults To English Self Report", func(t *testing.T) {
		stdout, _, err := runCommand("form")
		require.NoError(t, err)

		form := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(stdout), &form))
		assert.Equal(t, "en", form["language"])
		assert.NotEmpty(t, form["sections"])
	})

	t.Run("Unsupported Language Falls Back", func(t *testing.T) {
		stdout, stderr, err := runCommand("form", "--lang", "de")
		require.NoError(t, err)

		form := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(stdout), &form))
		assert.Equal(t, "en", form["language"])
		assert.Contains(t, stderr, "unsupported language")
	})

	t.Run("Unknown Responder", func(t *testing.T) {
		_, _, err := runCommand("form", "--responder", "stranger")
		assert.Error(t, err)
	})

	t.Run("Patient Type Picks History Question", func(t *testing.T) {
		stdout, _, err := runCommand("form", "--responder", "teacher", "--patient-type", "adult")
		require.NoError(t, err)
		assert.Contains(t, stdout, "childhood_history")
		assert.NotContains(t, stdout, "parent_role")
	})

	t.Run("Unknown Patient Type", func(t *testing.T) {
		_, _, err := runCommand("form", "--patient-type", "elderly")
		assert.Error(t, err)
	})
}
