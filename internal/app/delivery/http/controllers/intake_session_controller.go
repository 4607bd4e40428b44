package controllers

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/dto/requests"
	"adhd-intake-service/internal/pkg/exceptions"
	"adhd-intake-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type IntakeSessionController struct {
	Log                  *zap.Logger
	IntakeSessionUsecase contracts.IntakeSessionUsecase
}

func NewIntakeSessionController(logger *zap.Logger, intakeSessionUsecase contracts.IntakeSessionUsecase) *IntakeSessionController {
	return &IntakeSessionController{
		Log:                  logger,
		IntakeSessionUsecase: intakeSessionUsecase,
	}
}

func (ctrl *IntakeSessionController) StartSession(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("IntakeSessionController.StartSession requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("IntakeSessionController.StartSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.StartSession)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("IntakeSessionController.StartSession error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("IntakeSessionController.StartSession validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.IntakeSessionUsecase.StartSession(ctx, request)
	if err != nil {
		ctrl.Log.Error("IntakeSessionController.StartSession error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("IntakeSessionController.StartSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, result.SessionID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StartSessionSuccessMessage, result)
}

func (ctrl *IntakeSessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("IntakeSessionController.GetSession requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("IntakeSessionController.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.IntakeSessionUsecase.GetSession(ctx, sessionID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, result)
}

func (ctrl *IntakeSessionController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("IntakeSessionController.SaveDraft requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("IntakeSessionController.SaveDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	request := new(requests.SaveDraft)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("IntakeSessionController.SaveDraft error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionID = sessionID

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("IntakeSessionController.SaveDraft validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.IntakeSessionUsecase.SaveDraft(ctx, request)
	if err != nil {
		ctrl.Log.Error("IntakeSessionController.SaveDraft error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveDraftSuccessMessage, result)
}

func (ctrl *IntakeSessionController) SetSuicidality(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("IntakeSessionController.SetSuicidality requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("IntakeSessionController.SetSuicidality called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	request := new(requests.SetSuicidality)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionID = sessionID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.IntakeSessionUsecase.SetSuicidality(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetSuicidalitySuccessMessage, result)
}

func (ctrl *IntakeSessionController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("IntakeSessionController.Submit requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("IntakeSessionController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.IntakeSessionUsecase.Submit(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("IntakeSessionController.Submit error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("IntakeSessionController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingParticipantIDKey, result.ParticipantID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitSuccessMessage, result)
}
