// internal/app/features/play/handler.go
//
// The play feature is the lesson player API: it renders a learner's view of
// a lesson and applies interaction events. All lesson semantics live in
// internal/domain; this package does lookup, locking, session state and
// JSON plumbing.
package play

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dalemusser/lessonhub/internal/app/store/lessons"
	"github.com/dalemusser/lessonhub/internal/app/store/progress"
	"github.com/dalemusser/lessonhub/internal/domain/player"
)

// Handler holds the play feature dependencies.
type Handler struct {
	Logger   *zap.Logger
	Lessons  lessons.Provider
	Catalog  *lessons.Catalog
	Progress *progress.Store

	// Clock is swappable for availability tests.
	Clock func() time.Time

	mu     sync.Mutex
	states map[stateKey]*player.State
}

type stateKey struct {
	learnerID string
	lessonID  string
}

// NewHandler constructs a play Handler.
func NewHandler(provider lessons.Provider, catalog *lessons.Catalog, prog *progress.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Logger:   logger,
		Lessons:  provider,
		Catalog:  catalog,
		Progress: prog,
		Clock:    time.Now,
		states:   map[stateKey]*player.State{},
	}
}

// state returns the session state for a learner+lesson pair, creating it on
// first use. Callers hold it only for the duration of one request; the
// handler mutex serializes event application per process, which is enough
// for the one-interactive-session-per-learner model.
func (h *Handler) state(learnerID, lessonID string) *player.State {
	key := stateKey{learnerID, lessonID}
	st, ok := h.states[key]
	if !ok {
		st = player.NewState()
		h.states[key] = st
	}
	return st
}
