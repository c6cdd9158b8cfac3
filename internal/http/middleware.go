package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	headerAPIKey    = "Api-Key"
	headerRequestID = "X-Request-Id"
)

type ctxKey int

const requestIDKey ctxKey = iota

// RequestIDFromContext 取出 WithRequestLog 写入的请求 ID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// WithRequestLog 给每个请求分配 X-Request-Id 并记录访问日志
func WithRequestLog(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, req.WithContext(context.WithValue(req.Context(), requestIDKey, id)))

		logger.Debug("http request",
			zap.String("request_id", id),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// requireAPIKey Api-Key header 必须命中配置中的任一 key
func requireAPIKey(validKeys []string, logger *zap.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		keysInHeader := req.Header.Values(headerAPIKey)
		for _, k := range keysInHeader {
			for _, vk := range validKeys {
				if k != "" && k == vk {
					next(w, req)
					return
				}
			}
		}
		logger.Warn("A valid API key missing",
			zap.String("request_id", RequestIDFromContext(req.Context())),
			zap.String("path", req.URL.Path),
		)
		writeJSON(w, http.StatusUnauthorized, Fail("a valid API key is missing"))
	}
}
