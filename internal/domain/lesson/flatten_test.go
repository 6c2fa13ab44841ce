package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flattenFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := Normalize([]byte(`{"sections": [
		{"id": "intro-sec", "type": "intro", "paragraphs": ["oi"]},
		{"id": "media", "type": "multimedia", "items": [
			{"id": "audio-1", "mediaType": "audio"},
			{"id": "video-1", "mediaType": "video"}
		]},
		{"id": "conteudo", "type": "tabs", "tabs": [
			{"id": "tab-a", "label": "A", "content": [
				{"id": "a1", "type": "card"},
				{"id": "a2", "type": "card"},
				{"id": "a3", "type": "mystery_card"}
			]},
			{"id": "tab-b", "label": "B", "content": [
				{"id": "b1", "type": "trait_card"}
			]}
		]},
		{"id": "pratica", "type": "exercise", "content": {"id": "ex-1", "title": "Pratique"}},
		{"id": "quiz", "type": "quiz", "questions": []}
	]}`))
	require.NoError(t, err)
	return doc
}

func TestFlattenOrder(t *testing.T) {
	doc := flattenFixture(t)

	want := []FlatItem{
		{ID: "audio-1", Container: IntroContainer},
		{ID: "video-1", Container: IntroContainer},
		{ID: "a1", Container: "tab-a"},
		{ID: "a2", Container: "tab-a"},
		{ID: "b1", Container: "tab-b"},
		{ID: "ex-1", Container: "pratica"},
	}
	assert.Equal(t, want, Flatten(doc))

	// Stable across calls for an unchanged document.
	assert.Equal(t, Flatten(doc), Flatten(doc))
}

func TestNext(t *testing.T) {
	doc := flattenFixture(t)

	next, ok := Next(doc, "video-1")
	require.True(t, ok)
	assert.Equal(t, FlatItem{ID: "a1", Container: "tab-a"}, next)

	next, ok = Next(doc, "a2")
	require.True(t, ok)
	assert.Equal(t, FlatItem{ID: "b1", Container: "tab-b"}, next)

	_, ok = Next(doc, "ex-1")
	assert.False(t, ok, "terminal item has no next")

	_, ok = Next(doc, "nao-existe")
	assert.False(t, ok, "unknown id has no next")
}

func TestIsLastInContainer(t *testing.T) {
	doc := flattenFixture(t)

	assert.False(t, IsLastInContainer(doc, "audio-1"))
	assert.True(t, IsLastInContainer(doc, "video-1"))
	assert.False(t, IsLastInContainer(doc, "a1"))
	assert.True(t, IsLastInContainer(doc, "a2"))
	assert.True(t, IsLastInContainer(doc, "b1"))
	assert.True(t, IsLastInContainer(doc, "ex-1"))
	assert.True(t, IsLastInContainer(doc, "fantasma"))
}

func TestTabOf(t *testing.T) {
	doc := flattenFixture(t)

	assert.Equal(t, "tab-a", TabOf(doc, "a2"))
	assert.Equal(t, "tab-b", TabOf(doc, "b1"))
	assert.Equal(t, "", TabOf(doc, "audio-1"))
	assert.Equal(t, "", TabOf(doc, "ex-1"))
}
