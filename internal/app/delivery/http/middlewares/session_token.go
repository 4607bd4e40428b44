package middlewares

import (
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/exceptions"
	"adhd-intake-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RequireSessionToken admits a request only when its bearer token was issued
// for the session named in the URL.
func (m *Middlewares) RequireSessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		tokenSessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Warn("Middlewares.RequireSessionToken invalid token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionID := chi.URLParam(r, constvars.URLParamSessionID)
		if sessionID != tokenSessionID {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenSessionMismatch(nil, sessionID))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
