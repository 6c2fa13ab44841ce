// internal/app/features/play/routes.go
package play

import "github.com/go-chi/chi/v5"

// Routes returns the player subrouter, mounted under /lessons.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{lessonID}/view", h.View)
	r.Post("/{lessonID}/events", h.Events)
	return r
}
