// internal/app/features/play/view.go
package play

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/lessonhub/internal/app/store/lessons"
	"github.com/dalemusser/lessonhub/internal/app/store/progress"
	"github.com/dalemusser/lessonhub/internal/app/system/apierr"
	"github.com/dalemusser/lessonhub/internal/app/system/session"
	"github.com/dalemusser/lessonhub/internal/app/system/timeouts"
	"github.com/dalemusser/lessonhub/internal/domain/lesson"
	"github.com/dalemusser/lessonhub/internal/domain/player"
)

// View handles GET /lessons/{lessonID}/view: the learner's fully resolved
// view of the lesson, including progress and gamification status.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := session.LearnerID(r)
	if !ok {
		apierr.Write(w, http.StatusUnauthorized, "no learner session")
		return
	}
	lessonID := chi.URLParam(r, "lessonID")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Logger, "render lesson view")
	defer cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	doc, set, ok := h.loadLesson(ctx, w, lessonID)
	if !ok {
		return
	}

	tree, err := h.render(ctx, doc, h.state(learnerID, lessonID), learnerID, lessonID, set)
	if err != nil {
		apierr.Internal(w, h.Logger, "render lesson view", err)
		return
	}

	writeJSON(w, http.StatusOK, viewResponse{LessonID: lessonID, View: tree})
}

// loadLesson resolves lock state, fetches and normalizes the document, and
// writes the error response itself when any step fails.
func (h *Handler) loadLesson(ctx context.Context, w http.ResponseWriter, lessonID string) (*lesson.Document, progress.Settings, bool) {
	if av := h.Catalog.Availability(lessonID, h.Clock()); av.Known && !av.Unlocked {
		apierr.Forbidden(w, av.Message)
		return nil, progress.Settings{}, false
	}

	raw, err := h.Lessons.Get(ctx, lessonID)
	if errors.Is(err, lessons.ErrNotFound) {
		apierr.NotFound(w, "lesson not found")
		return nil, progress.Settings{}, false
	}
	if err != nil {
		apierr.Internal(w, h.Logger, "fetch lesson", err)
		return nil, progress.Settings{}, false
	}

	doc, err := lesson.Normalize(raw)
	if err != nil {
		var se *lesson.SchemaError
		if errors.As(err, &se) {
			h.Logger.Warn("lesson failed schema normalization",
				zap.String("lesson_id", lessonID),
				zap.String("reason", se.Reason))
			apierr.Unprocessable(w, "lesson document is malformed", se.Reason)
			return nil, progress.Settings{}, false
		}
		apierr.Internal(w, h.Logger, "normalize lesson", err)
		return nil, progress.Settings{}, false
	}

	set := progress.Settings{
		PointsPerSection: doc.PointsPerSection,
		TotalSections:    doc.TotalSections,
		BadgeThresholds:  doc.Thresholds(),
	}
	return doc, set, true
}

// render assembles the progress view and runs the domain renderer.
func (h *Handler) render(ctx context.Context, doc *lesson.Document, st *player.State, learnerID, lessonID string, set progress.Settings) (player.ViewTree, error) {
	completed, err := h.Progress.Completed(ctx, learnerID, lessonID, set)
	if err != nil {
		return player.ViewTree{}, err
	}
	snap, badges, err := h.Progress.Snapshot(ctx, learnerID, lessonID, set)
	if err != nil {
		return player.ViewTree{}, err
	}

	prog := player.Progress{Completed: completed, Snapshot: snap, Badges: badges}
	return player.Render(doc, st, prog), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
