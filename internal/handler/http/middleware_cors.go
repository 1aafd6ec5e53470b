package http

import "net/http"

// withCORS permits cross-origin access to the whole API. The policy is
// deliberately wide open — any origin, the methods the router serves, and
// the headers clients actually send — because browser frontends on other
// hosts are the primary consumers.
//
// Preflight OPTIONS requests are answered here with 204 and never reach the
// router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
