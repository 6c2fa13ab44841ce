// internal/app/features/catalog/routes.go
package catalog

import "github.com/go-chi/chi/v5"

// Routes returns the catalog subrouter, mounted under /catalog.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/courses", h.Courses)
	r.Get("/courses/{courseID}/modules", h.Modules)
	r.Get("/lessons/{lessonID}/neighbors", h.Neighbors)
	return r
}
