package routers

import (
	"adhd-intake-service/internal/app/config"
	"adhd-intake-service/internal/app/delivery/http/controllers"
	"adhd-intake-service/internal/app/delivery/http/middlewares"
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/dto/requests"
	"adhd-intake-service/internal/pkg/dto/responses"
	"adhd-intake-service/internal/pkg/exceptions"
	"adhd-intake-service/internal/pkg/utils"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockFormUsecase struct {
	mock.Mock
}

func (m *MockFormUsecase) GetForm(ctx context.Context, request *requests.GetForm) (*responses.Form, error) {
	args := m.Called(ctx, request)
	form, _ := args.Get(0).(*responses.Form)
	return form, args.Error(1)
}

func (m *MockFormUsecase) ScoreASRS(ctx context.Context, request *requests.ScoreASRS) (*responses.ASRSScore, error) {
	args := m.Called(ctx, request)
	score, _ := args.Get(0).(*responses.ASRSScore)
	return score, args.Error(1)
}

type MockIntakeSessionUsecase struct {
	mock.Mock
}

func (m *MockIntakeSessionUsecase) StartSession(ctx context.Context, request *requests.StartSession) (*responses.StartSession, error) {
	args := m.Called(ctx, request)
	started, _ := args.Get(0).(*responses.StartSession)
	return started, args.Error(1)
}

func (m *MockIntakeSessionUsecase) GetSession(ctx context.Context, sessionID string) (*responses.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*responses.Session)
	return session, args.Error(1)
}

func (m *MockIntakeSessionUsecase) SaveDraft(ctx context.Context, request *requests.SaveDraft) (*responses.Session, error) {
	args := m.Called(ctx, request)
	session, _ := args.Get(0).(*responses.Session)
	return session, args.Error(1)
}

func (m *MockIntakeSessionUsecase) SetSuicidality(ctx context.Context, request *requests.SetSuicidality) (*responses.SafetyCheck, error) {
	args := m.Called(ctx, request)
	check, _ := args.Get(0).(*responses.SafetyCheck)
	return check, args.Error(1)
}

func (m *MockIntakeSessionUsecase) Submit(ctx context.Context, sessionID string) (*responses.Submission, error) {
	args := m.Called(ctx, sessionID)
	submission, _ := args.Get(0).(*responses.Submission)
	return submission, args.Error(1)
}

const testSecret = "test-secret"

func newTestRouter(formUsecase *MockFormUsecase, sessionUsecase *MockIntakeSessionUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "/api",
			Version:                    "v1",
			CorsAllowedOrigins:         "*",
			MaxRequests:                1000,
			MaxTimeRequestsPerSeconds:  1,
			RequestBodyLimitInMegabyte: 1,
		},
		JWT: config.AppJWT{Secret: testSecret, ExpTimeInHour: 1},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewFormController(logger, formUsecase),
		controllers.NewIntakeSessionController(logger, sessionUsecase),
	)
	return router
}

func sessionToken(t *testing.T, sessionID string) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(sessionID, testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestFormRoutes(t *testing.T) {
	formUsecase := new(MockFormUsecase)
	router := newTestRouter(formUsecase, new(MockIntakeSessionUsecase))

	t.Run("Get Form Parses Language And Responder", func(t *testing.T) {
		formUsecase.On("GetForm", mock.Anything, mock.MatchedBy(func(request *requests.GetForm) bool {
			return request.Language == models.LanguageFrench && request.Responder == models.ResponderParent
		})).Return(&responses.Form{Language: "fr"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/form?lang=fr&responder=parent", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		formUsecase.AssertExpectations(t)
	})

	t.Run("Get Form Passes Patient Type", func(t *testing.T) {
		formUsecase.On("GetForm", mock.Anything, mock.MatchedBy(func(request *requests.GetForm) bool {
			return request.Responder == models.ResponderTeacher && request.PatientType == models.PatientTypeAdult
		})).Return(&responses.Form{Language: "en"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/form?responder=teacher&patient_type=adult", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		formUsecase.AssertExpectations(t)
	})

	t.Run("Get Form Rejects Unknown Patient Type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/form?patient_type=elder", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Get Form Rejects Unknown Responder", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/form?responder=stranger", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Score Rejects Unknown Answer Key", func(t *testing.T) {
		body := []byte(`{"answers":["never","always","","","",""]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/score/asrs", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		formUsecase.AssertNotCalled(t, "ScoreASRS", mock.Anything, mock.Anything)
	})

	t.Run("Score Returns Usecase Result", func(t *testing.T) {
		score := 12
		formUsecase.On("ScoreASRS", mock.Anything, mock.AnythingOfType("*requests.ScoreASRS")).
			Return(&responses.ASRSScore{Score: &score, Complete: true}, nil).Once()

		body := []byte(`{"answers":["sometimes","sometimes","sometimes","sometimes","sometimes","sometimes"]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/score/asrs", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		data, _ := decodeBody(t, rr)["data"].(map[string]interface{})
		assert.Equal(t, float64(12), data["score"])
	})
}

func TestIntakeSessionRoutes(t *testing.T) {
	sessionUsecase := new(MockIntakeSessionUsecase)
	router := newTestRouter(new(MockFormUsecase), sessionUsecase)

	t.Run("Start Session", func(t *testing.T) {
		sessionUsecase.On("StartSession", mock.Anything, mock.AnythingOfType("*requests.StartSession")).
			Return(&responses.StartSession{SessionID: "abc", Token: "tkn"}, nil).Once()

		body := []byte(`{"language":"ar","responder":"self"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		sessionUsecase.AssertExpectations(t)
	})

	t.Run("Start Session Validates Body", func(t *testing.T) {
		body := []byte(`{"language":"de","responder":"self"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Session Routes Need Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/abc", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		sessionUsecase.AssertNotCalled(t, "GetSession", mock.Anything, "abc")
	})

	t.Run("Get Session With Token", func(t *testing.T) {
		sessionUsecase.On("GetSession", mock.Anything, "abc").
			Return(&responses.Session{SessionID: "abc", State: models.SessionStateEditing}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/abc", nil)
		req.Header.Set(constvars.HeaderAuthorization, sessionToken(t, "abc"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Save Draft Carries Session ID", func(t *testing.T) {
		sessionUsecase.On("SaveDraft", mock.Anything, mock.MatchedBy(func(request *requests.SaveDraft) bool {
			return request.SessionID == "abc" && request.Bundle.Name == "Sam"
		})).Return(&responses.Session{SessionID: "abc"}, nil).Once()

		body := []byte(`{"bundle":{"name":"Sam","symptoms":[],"asrs":[]}}`)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/abc/draft", bytes.NewBuffer(body))
		req.Header.Set(constvars.HeaderAuthorization, sessionToken(t, "abc"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		sessionUsecase.AssertExpectations(t)
	})

	t.Run("Safety Halt Is Forbidden", func(t *testing.T) {
		sessionUsecase.On("SetSuicidality", mock.Anything, mock.AnythingOfType("*requests.SetSuicidality")).
			Return(nil, exceptions.ErrSafetyHalt("active-plan")).Once()

		body := []byte(`{"suicidality":"active_plan"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/abc/suicidality", bytes.NewBuffer(body))
		req.Header.Set(constvars.HeaderAuthorization, sessionToken(t, "abc"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, constvars.ErrClientSafetyHalt, decodeBody(t, rr)["message"])
	})

	t.Run("Missing Fields Are Listed", func(t *testing.T) {
		sessionUsecase.On("Submit", mock.Anything, "abc").
			Return(nil, exceptions.ErrMissingRequiredFields([]string{"name", "consent"})).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/abc/submit", nil)
		req.Header.Set(constvars.HeaderAuthorization, sessionToken(t, "abc"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		details, _ := decodeBody(t, rr)["details"].(map[string]interface{})
		assert.Equal(t, []interface{}{"name", "consent"}, details["missing"])
	})

	t.Run("Deadline Maps To Gateway Timeout", func(t *testing.T) {
		sessionUsecase.On("Submit", mock.Anything, "slow").Return(nil, context.DeadlineExceeded).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/slow/submit", nil)
		req.Header.Set(constvars.HeaderAuthorization, sessionToken(t, "slow"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(new(MockFormUsecase), new(MockIntakeSessionUsecase))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
