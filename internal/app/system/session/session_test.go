package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewManagerEmptyKeyGetsRandomOne(t *testing.T) {
	m, err := NewManager("", false)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if m == nil {
		t.Fatal("expected a manager")
	}
}

func TestWithLearnerMintsAndKeepsIdentity(t *testing.T) {
	m, err := NewManager("test-signing-key-0123456789", false)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	var got string
	h := m.WithLearner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := LearnerID(r)
		if !ok {
			t.Fatal("no learner identity in context")
		}
		got = id
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	first := got
	if first == "" {
		t.Fatal("expected a minted learner id")
	}
	if rec.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected the session cookie to be set")
	}

	// The same cookie yields the same learner on the next request.
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got != first {
		t.Errorf("learner id changed across requests: %q then %q", first, got)
	}
}
