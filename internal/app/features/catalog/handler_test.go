package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dalemusser/lessonhub/internal/app/features/catalog"
	"github.com/dalemusser/lessonhub/internal/app/store/lessons"
)

func newTestHandler(t *testing.T) *catalog.Handler {
	t.Helper()

	cat, err := lessons.LoadCatalog()
	require.NoError(t, err)

	h := catalog.NewHandler(cat, zap.NewNop())
	h.Clock = func() time.Time {
		return time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	}
	return h
}

func get(t *testing.T, h *catalog.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	catalog.Routes(h).ServeHTTP(rec, req)
	return rec
}

func TestCourses(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/courses")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Courses []struct {
			ID      string `json:"id"`
			Free    bool   `json:"free"`
			Modules []struct {
				Lessons []struct {
					ID       string `json:"id"`
					Unlocked bool   `json:"unlocked"`
					Lock     string `json:"lock"`
				} `json:"lessons"`
			} `json:"modules"`
		} `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Courses, 2)

	mini := body.Courses[0]
	assert.Equal(t, "minicurso-cnv", mini.ID)
	assert.True(t, mini.Free)

	first := mini.Modules[0].Lessons[0]
	assert.True(t, first.Unlocked)

	second := mini.Modules[0].Lessons[1]
	assert.False(t, second.Unlocked)
	assert.Equal(t, "Dia 03/12 20hs", second.Lock)

	formation := body.Courses[1]
	assert.False(t, formation.Free)
	for _, mod := range formation.Modules {
		for _, ls := range mod.Lessons {
			assert.False(t, ls.Unlocked)
			assert.NotEmpty(t, ls.Lock)
		}
	}
}

func TestModules(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/courses/minicurso-cnv/modules")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		CourseID string `json:"courseId"`
		Modules  []struct {
			ID string `json:"id"`
		} `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "minicurso-cnv", body.CourseID)
	require.Len(t, body.Modules, 2)
	assert.Equal(t, "modulo-1", body.Modules[0].ID)

	rec = get(t, h, "/courses/nao-existe/modules")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNeighbors(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/lessons/cnv-02/neighbors")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Prev *struct {
			ID       string `json:"id"`
			Unlocked bool   `json:"unlocked"`
		} `json:"prev"`
		Next *struct {
			ID       string `json:"id"`
			Unlocked bool   `json:"unlocked"`
		} `json:"next"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Prev)
	assert.Equal(t, "cnv-01", body.Prev.ID)
	assert.True(t, body.Prev.Unlocked)
	require.NotNil(t, body.Next)
	assert.Equal(t, "perfis-01", body.Next.ID)

	rec = get(t, h, "/lessons/cnv-01/neighbors")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Prev)
	require.NotNil(t, body.Next)

	rec = get(t, h, "/lessons/fantasma/neighbors")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
