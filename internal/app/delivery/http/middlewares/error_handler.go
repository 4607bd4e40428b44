package middlewares

import (
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/exceptions"
	"adhd-intake-service/internal/pkg/utils"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Error("Middlewares.ErrorHandler recovered panic",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Error(err),
					zap.Stack("stack"),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
