package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// statusRecorder captures the status code a handler wrote, since
// http.ResponseWriter doesn't expose it after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// withLogging wraps next with the request-received/response-sent
// log pair the original server's logging_handler/logging_send emit,
// stamping each request with a correlation id.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		s.log.WithFields(map[string]any{
			"request_id": requestID,
			"ip":         r.RemoteAddr,
			"uri":        r.RequestURI,
			"method":     r.Method,
		}).Info("request received")

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(sr, r)

		s.log.WithFields(map[string]any{
			"request_id":       requestID,
			"response_time_ms": time.Since(start).Milliseconds(),
			"code":             sr.status,
			"content_type":     sr.Header().Get("Content-Type"),
		}).Info("response sent")
	}
}
