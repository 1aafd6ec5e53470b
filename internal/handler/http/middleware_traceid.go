package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Clients may pass their own id through this header to correlate retries
// across requests; absent that, a fresh uuid is issued per request.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags each request with a trace id, binds it to the
// request-scoped logger, and echoes it back in the response headers.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
