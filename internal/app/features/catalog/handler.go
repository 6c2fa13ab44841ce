// internal/app/features/catalog/handler.go
//
// The catalog feature lists courses, modules and lessons with their lock
// state, and resolves prev/next navigation between lessons of a course.
package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/lessonhub/internal/app/store/lessons"
	"github.com/dalemusser/lessonhub/internal/app/system/apierr"
)

// Handler holds the catalog feature dependencies.
type Handler struct {
	Logger  *zap.Logger
	Catalog *lessons.Catalog

	// Clock is swappable for availability tests.
	Clock func() time.Time
}

// NewHandler constructs a catalog Handler.
func NewHandler(catalog *lessons.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Logger:  logger,
		Catalog: catalog,
		Clock:   time.Now,
	}
}

// Courses handles GET /courses: every course with its modules and the lock
// state of each lesson.
func (h *Handler) Courses(w http.ResponseWriter, _ *http.Request) {
	now := h.Clock()

	out := make([]courseView, len(h.Catalog.Courses))
	for i := range h.Catalog.Courses {
		out[i] = h.courseView(&h.Catalog.Courses[i], now)
	}
	writeJSON(w, http.StatusOK, coursesResponse{Courses: out})
}

// Modules handles GET /courses/{courseID}/modules.
func (h *Handler) Modules(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	for i := range h.Catalog.Courses {
		course := &h.Catalog.Courses[i]
		if course.ID != courseID {
			continue
		}
		cv := h.courseView(course, h.Clock())
		writeJSON(w, http.StatusOK, modulesResponse{CourseID: course.ID, Modules: cv.Modules})
		return
	}
	apierr.NotFound(w, "course not found")
}

// Neighbors handles GET /lessons/{lessonID}/neighbors: the previous and
// next lessons within the course, with lock state, for prev/next buttons.
func (h *Handler) Neighbors(w http.ResponseWriter, r *http.Request) {
	lessonID := chi.URLParam(r, "lessonID")

	if h.Catalog.FindCourse(lessonID) == nil {
		apierr.NotFound(w, "lesson not in catalog")
		return
	}

	now := h.Clock()
	prev, next := h.Catalog.Neighbors(lessonID)
	writeJSON(w, http.StatusOK, neighborsResponse{
		LessonID: lessonID,
		Prev:     h.lessonView(prev, now),
		Next:     h.lessonView(next, now),
	})
}

func (h *Handler) courseView(course *lessons.Course, now time.Time) courseView {
	cv := courseView{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Free:        course.Free,
		Modules:     make([]moduleView, len(course.Modules)),
	}
	for i, mod := range course.Modules {
		mv := moduleView{ID: mod.ID, Title: mod.Title, Lessons: make([]lessonView, len(mod.Lessons))}
		for j := range mod.Lessons {
			mv.Lessons[j] = *h.lessonView(&mod.Lessons[j], now)
		}
		cv.Modules[i] = mv
	}
	return cv
}

func (h *Handler) lessonView(ls *lessons.LessonSummary, now time.Time) *lessonView {
	if ls == nil {
		return nil
	}

	av := h.Catalog.Availability(ls.ID, now)
	lv := &lessonView{
		ID:       ls.ID,
		Title:    ls.Title,
		Unlocked: av.Unlocked,
		Lock:     av.Message,
	}
	if ls.ReleaseAt != nil {
		lv.ReleaseAt = ls.ReleaseAt.Format(time.RFC3339)
	}
	return lv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
