// internal/app/features/play/events.go
package play

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/lessonhub/internal/app/store/progress"
	"github.com/dalemusser/lessonhub/internal/app/system/apierr"
	"github.com/dalemusser/lessonhub/internal/app/system/session"
	"github.com/dalemusser/lessonhub/internal/app/system/timeouts"
	"github.com/dalemusser/lessonhub/internal/domain/player"
)

// Events handles POST /lessons/{lessonID}/events: applies one interaction
// event and returns the effects plus the re-rendered view, so the client
// never has to guess what changed.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := session.LearnerID(r)
	if !ok {
		apierr.Write(w, http.StatusUnauthorized, "no learner session")
		return
	}
	lessonID := chi.URLParam(r, "lessonID")

	var ev player.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		apierr.BadRequest(w, "invalid event body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Logger, "apply lesson event")
	defer cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	doc, set, ok := h.loadLesson(ctx, w, lessonID)
	if !ok {
		return
	}
	st := h.state(learnerID, lessonID)

	writer := &progressWriter{store: h.Progress, learnerID: learnerID, lessonID: lessonID, set: set}
	effects, err := player.HandleEvent(ctx, doc, st, writer, ev)
	if err != nil {
		if errors.Is(err, player.ErrUnknownEvent) || errors.Is(err, player.ErrUnknownTarget) {
			apierr.BadRequest(w, err.Error())
			return
		}
		apierr.Internal(w, h.Logger, "apply lesson event", err)
		return
	}

	tree, err := h.render(ctx, doc, st, learnerID, lessonID, set)
	if err != nil {
		apierr.Internal(w, h.Logger, "render after event", err)
		return
	}

	writeJSON(w, http.StatusOK, eventResponse{
		LessonID: lessonID,
		Effects:  effects,
		View:     tree,
	})
}

// progressWriter binds the store to one learner+lesson so the domain event
// machine only sees item IDs.
type progressWriter struct {
	store     *progress.Store
	learnerID string
	lessonID  string
	set       progress.Settings
}

func (p *progressWriter) MarkCompleted(ctx context.Context, itemID string) error {
	_, err := p.store.MarkCompleted(ctx, p.learnerID, p.lessonID, itemID, p.set)
	return err
}
