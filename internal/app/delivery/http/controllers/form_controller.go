package controllers

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/dto/requests"
	"adhd-intake-service/internal/pkg/exceptions"
	"adhd-intake-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FormController struct {
	Log         *zap.Logger
	FormUsecase contracts.FormUsecase
}

func NewFormController(logger *zap.Logger, formUsecase contracts.FormUsecase) *FormController {
	return &FormController{
		Log:         logger,
		FormUsecase: formUsecase,
	}
}

// GetForm renders the form for ?lang=&responder=&patient_type=. An unknown
// language falls back to English; responder defaults to self.
func (ctrl *FormController) GetForm(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("FormController.GetForm requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("FormController.GetForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	responder := models.Responder(r.URL.Query().Get(constvars.QueryParamsResponder))
	if responder == "" {
		responder = models.ResponderSelf
	}
	request := &requests.GetForm{
		Language:    models.ParseLanguage(r.URL.Query().Get(constvars.QueryParamsLanguage)),
		Responder:   responder,
		PatientType: models.PatientType(r.URL.Query().Get(constvars.QueryParamsPatientType)),
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("FormController.GetForm validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.FormUsecase.GetForm(ctx, request)
	if err != nil {
		ctrl.Log.Error("FormController.GetForm error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFormSuccessMessage, result)
}

func (ctrl *FormController) ScoreASRS(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("FormController.ScoreASRS requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("FormController.ScoreASRS called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ScoreASRS)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("FormController.ScoreASRS error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("FormController.ScoreASRS validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.FormUsecase.ScoreASRS(r.Context(), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScoreASRSSuccessMessage, result)
}
