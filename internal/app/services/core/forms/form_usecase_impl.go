package forms

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/app/services/core/screening"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/dto/requests"
	"adhd-intake-service/internal/pkg/dto/responses"
	"context"

	"go.uber.org/zap"
)

type formUsecase struct {
	Translator contracts.Translator
	Log        *zap.Logger
}

func NewFormUsecase(translator contracts.Translator, logger *zap.Logger) contracts.FormUsecase {
	return &formUsecase{
		Translator: translator,
		Log:        logger,
	}
}

func (uc *formUsecase) GetForm(ctx context.Context, request *requests.GetForm) (*responses.Form, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("formUsecase.GetForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, string(request.Language)),
	)

	form := BuildForm(ctx, uc.Translator, request.Language, request.Responder, request.PatientType)

	uc.Log.Info("formUsecase.GetForm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("section_count", len(form.Sections)),
	)
	return form, nil
}

func (uc *formUsecase) ScoreASRS(ctx context.Context, request *requests.ScoreASRS) (*responses.ASRSScore, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	score := screening.ScoreASRSPointer(request.Answers)
	if score == nil {
		uc.Log.Info("formUsecase.ScoreASRS incomplete answers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &responses.ASRSScore{Complete: false, Message: constvars.ScoreASRSIncompleteMessage}, nil
	}

	uc.Log.Info("formUsecase.ScoreASRS succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingASRSScoreKey, *score),
	)
	return &responses.ASRSScore{Score: score, Complete: true}, nil
}
