package utils

import (
	"adhd-intake-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("language", validateLanguage)
	validate.RegisterValidation("responder", validateResponder)
	validate.RegisterValidation("patient_type", validatePatientType)
	validate.RegisterValidation("frequency", validateFrequency)
	validate.RegisterValidation("suicidality", validateSuicidality)
	validate.RegisterValidation("yes_no_unsure", validateYesNoUnsure)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateLanguage(fl validator.FieldLevel) bool {
	return models.Language(fl.Field().String()).IsValid()
}

func validateResponder(fl validator.FieldLevel) bool {
	return models.Responder(fl.Field().String()).IsValid()
}

func validatePatientType(fl validator.FieldLevel) bool {
	return models.PatientType(fl.Field().String()).IsValid()
}

func validateFrequency(fl validator.FieldLevel) bool {
	return models.FrequencyAnswer(fl.Field().String()).IsValid()
}

func validateSuicidality(fl validator.FieldLevel) bool {
	return models.Suicidality(fl.Field().String()).IsValid()
}

func validateYesNoUnsure(fl validator.FieldLevel) bool {
	return models.YesNoUnsure(fl.Field().String()).IsValid()
}
