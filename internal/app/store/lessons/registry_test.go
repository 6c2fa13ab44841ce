package lessons

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalemusser/lessonhub/internal/domain/lesson"
)

func TestLoadEmbedded(t *testing.T) {
	reg, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, []string{"cnv-01", "cnv-02", "perfis-01"}, reg.IDs())

	_, err = reg.Get(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Every shipped document must normalize, whatever its vintage.
func TestEmbeddedDocumentsNormalize(t *testing.T) {
	reg, err := LoadEmbedded()
	require.NoError(t, err)

	for _, id := range reg.IDs() {
		t.Run(id, func(t *testing.T) {
			raw, err := reg.Get(context.Background(), id)
			require.NoError(t, err)

			doc, err := lesson.Normalize(raw)
			require.NoError(t, err)
			assert.NotEmpty(t, doc.Sections)
			assert.Greater(t, doc.TotalSections, 0)
			assert.NotEmpty(t, lesson.Flatten(doc))
		})
	}
}

func TestRegisterOverrides(t *testing.T) {
	reg, err := LoadEmbedded()
	require.NoError(t, err)

	reg.Register("cnv-01", []byte(`{"sections": []}`))
	raw, err := reg.Get(context.Background(), "cnv-01")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections": []}`, string(raw))
}

func TestCatalog(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)
	require.Len(t, cat.Courses, 2)

	course := cat.FindCourse("cnv-02")
	require.NotNil(t, course)
	assert.Equal(t, "minicurso-cnv", course.ID)
	assert.True(t, course.Free)

	prev, next := cat.Neighbors("cnv-02")
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "cnv-01", prev.ID)
	assert.Equal(t, "perfis-01", next.ID, "neighbors cross module boundaries")

	prev, next = cat.Neighbors("cnv-01")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "cnv-02", next.ID)

	prev, next = cat.Neighbors("fantasma")
	assert.Nil(t, prev)
	assert.Nil(t, next)

	pos, ok := cat.Position("cnv-01")
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = cat.Position("perfis-01")
	require.True(t, ok)
	assert.Equal(t, 2, pos)
}

func TestAvailability(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	// First lesson of a free course is always open.
	av := cat.Availability("cnv-01", now)
	assert.True(t, av.Known)
	assert.True(t, av.Unlocked)

	// Future release date: locked with the release message.
	av = cat.Availability("cnv-02", now)
	assert.True(t, av.Known)
	assert.False(t, av.Unlocked)
	assert.Equal(t, "Dia 03/12 20hs", av.Message)

	// Past release date: open.
	av = cat.Availability("perfis-01", now)
	assert.True(t, av.Known)
	assert.True(t, av.Unlocked)

	// Paid course: locked regardless of dates.
	av = cat.Availability("formacao-01", now)
	assert.True(t, av.Known)
	assert.False(t, av.Unlocked)
	assert.NotEmpty(t, av.Message)

	// Unknown lesson.
	av = cat.Availability("fantasma", now)
	assert.False(t, av.Known)
}
