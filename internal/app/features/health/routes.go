// internal/app/features/health/routes.go
package health

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the liveness endpoint, mounted under
// /health. It sits outside the learner-session group so load balancers can
// poll it without acquiring a cookie.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
