// Package session assigns every browser an anonymous learner identity via a
// signed cookie. There is no login: the identity exists only to namespace
// progress per browser profile, so two people on the same machine account
// do not share completion state.
package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	sessionName  = "lessonhub-session"
	learnerIDKey = "learner_id"
)

type ctxKey string

const learnerCtxKey ctxKey = "learner"

// Manager wraps the cookie store.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager builds a Manager from the configured session key. An empty key
// gets a random one, which invalidates learner identities on restart; fine
// for development, set LESSONHUB_SESSION_KEY in production. A nil key would
// make the cookie store silently drop every save, minting a new learner per
// request, so entropy exhaustion fails startup instead.
func NewManager(sessionKey string, secure bool) (*Manager, error) {
	key := []byte(sessionKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errors.New("session: no entropy for a random session key")
		}
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}, nil
}

// LearnerID returns the learner identity injected by WithLearner.
func LearnerID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(learnerCtxKey).(string)
	return id, ok && id != ""
}

// WithLearner ensures the request carries a learner identity: existing
// cookies are read, first-time visitors get a fresh UUID and the cookie is
// set on the way out.
func (m *Manager) WithLearner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.store.Get(r, sessionName)

		id, _ := sess.Values[learnerIDKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[learnerIDKey] = id
			_ = sess.Save(r, w)
		}

		ctx := context.WithValue(r.Context(), learnerCtxKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithTestLearner injects a fixed learner identity for handler tests,
// bypassing cookies entirely.
func WithTestLearner(r *http.Request, learnerID string) *http.Request {
	ctx := context.WithValue(r.Context(), learnerCtxKey, learnerID)
	return r.WithContext(ctx)
}
