package main

import (
	"adhd-intake-service/internal/app/drivers/logger"
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/app/services/core/forms"
	"adhd-intake-service/internal/app/services/core/screening"
	"adhd-intake-service/internal/app/services/shared/translation"
	"adhd-intake-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errBundleIncomplete = errors.New("bundle is missing required fields")

type validateReport struct {
	OK          bool               `json:"ok"`
	PatientType models.PatientType `json:"patient_type"`
	Missing     []string           `json:"missing,omitempty"`
	Safety      screening.Safety   `json:"safety"`
	ASRSScore   *int               `json:"asrs_score,omitempty"`
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "intakectl",
		Short:         "Offline tools for ADHD intake bundles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cliLogger := func(cmd *cobra.Command) *logrus.Logger {
		return logger.NewLogrusLogger(cmd.ErrOrStderr(), verbose)
	}

	rootCmd.AddCommand(validateCmd(cliLogger))
	rootCmd.AddCommand(scoreCmd(cliLogger))
	rootCmd.AddCommand(headerCmd())
	rootCmd.AddCommand(formCmd(cliLogger))
	return rootCmd
}

func validateCmd(cliLogger func(*cobra.Command) *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <bundle.json>",
		Short: "Check a response bundle for missing required fields and safety",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cliLogger(cmd)
			patientType, _ := cmd.Flags().GetString("patient-type")

			bundle, err := readBundle(args[0])
			if err != nil {
				return err
			}
			if patientType != "" {
				bundle.PatientType = models.PatientType(patientType)
			}
			utils.SanitizeResponseBundle(bundle)
			if err := utils.ValidateStruct(bundle); err != nil {
				return fmt.Errorf("invalid bundle: %w", err)
			}

			branch := bundle.Branch()
			log.WithFields(logrus.Fields{
				"responder":    bundle.Responder,
				"patient_type": branch.PatientType,
			}).Debug("validating bundle")

			completeness := screening.CheckRequired(bundle, branch)
			report := validateReport{
				OK:          completeness.OK,
				PatientType: branch.PatientType,
				Missing:     models.FieldIDsToStrings(completeness.Missing),
				Safety:      screening.CheckSafety(bundle.Suicidality),
				ASRSScore:   screening.ScoreASRSPointer(bundle.ASRS),
			}
			if !report.Safety.Safe {
				log.WithField("reason", report.Safety.Reason).Warn("bundle reports an active suicide plan, refer to emergency services")
			}
			if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.OK {
				log.WithField("missing", strings.Join(report.Missing, ",")).Error("bundle is incomplete")
				return errBundleIncomplete
			}
			return nil
		},
	}
	cmd.Flags().String("patient-type", "", "override the bundle's patient type (adult or child)")
	return cmd
}

func scoreCmd(cliLogger func(*cobra.Command) *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "score <bundle.json>",
		Short: "Compute the ASRS part A score of a response bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := readBundle(args[0])
			if err != nil {
				return err
			}

			score, ok := screening.ScoreASRS(bundle.ASRS)
			if !ok {
				cliLogger(cmd).Warn("ASRS answers are incomplete")
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{"complete": false})
			}
			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{"complete": true, "score": score})
		},
	}
}

func headerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header",
		Short: "Print the persisted column order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(forms.Header(), ","))
			return err
		},
	}
}

func formCmd(cliLogger func(*cobra.Command) *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Print the intake form definition with source labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, _ := cmd.Flags().GetString("lang")
			responder, _ := cmd.Flags().GetString("responder")
			patientType, _ := cmd.Flags().GetString("patient-type")

			language := models.ParseLanguage(lang)
			if language == models.LanguageEnglish && lang != string(models.LanguageEnglish) && lang != models.LanguageEnglish.DisplayName() {
				cliLogger(cmd).WithField("lang", lang).Warn("unsupported language, falling back to English")
			}
			if !models.Responder(responder).IsValid() {
				return fmt.Errorf("unknown responder %q", responder)
			}
			if patientType != "" && !models.PatientType(patientType).IsValid() {
				return fmt.Errorf("unknown patient type %q", patientType)
			}

			form := forms.BuildForm(context.Background(), translation.NewPassthroughTranslator(), language, models.Responder(responder), models.PatientType(patientType))
			return writeJSON(cmd.OutOrStdout(), form)
		},
	}
	cmd.Flags().String("lang", string(models.LanguageEnglish), "form language (en, ar, fr)")
	cmd.Flags().String("responder", string(models.ResponderSelf), "who fills in the form (self, parent, teacher)")
	cmd.Flags().String("patient-type", "", "who the form is about (adult, child); defaults from the responder")
	return cmd
}

func readBundle(path string) (*models.ResponseBundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	bundle := models.NewResponseBundle("", "")
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}
	return &bundle, nil
}

func writeJSON(out io.Writer, value interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
