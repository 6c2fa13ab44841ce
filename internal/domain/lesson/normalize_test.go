package lesson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentShapeDoc = `{
  "metadata": {
    "title": "Comunicação não violenta",
    "subtitle": "Módulo 1",
    "totalSections": 3,
    "gamification": {
      "pointsPerSection": 50,
      "badges": {
        "iniciante": {"label": "Iniciante", "icon": "star", "color": "yellow", "threshold": 2}
      }
    }
  },
  "header": {"progressLabel": "Seu progresso", "certificateTitle": "Certificado", "certificateText": "Parabéns!"},
  "sections": [
    {"id": "intro", "type": "intro", "title": "Boas-vindas", "paragraphs": ["Olá, **aluno**."]},
    {"id": "nav", "type": "navigation", "items": [{"label": "Áudios", "icon": "headphones", "target": "media", "tab": ""}]},
    {"id": "media", "type": "multimedia", "items": [
      {"id": "audio-1", "mediaType": "audio", "title": "Episódio 1", "url": "https://example.test/a1", "buttonText": "Concluir"},
      {"id": "video-1", "mediaType": "video", "title": "Aula 1", "url": "https://example.test/v1", "buttonText": "Concluir"}
    ]},
    {"id": "conteudo", "type": "tabs", "tabs": [
      {"id": "tab-a", "label": "Conceitos", "content": [
        {"id": "card-a1", "type": "card", "title": "Observação", "text": "Observe sem julgar."},
        {"id": "card-a2", "type": "highlight_card", "title": "Chave", "text": "Sentimentos importam."}
      ]},
      {"id": "tab-b", "label": "Perfis", "content": [
        {"id": "card-b1", "type": "trait_card", "name": "O Crítico", "archetype": "juiz", "color": "red"}
      ]}
    ]},
    {"id": "pratica", "type": "exercise", "content": {"id": "exercicio-1", "title": "Pratique", "instructions": ["Descreva uma situação."], "placeholder": "Escreva aqui", "buttonText": "Concluir exercício"}},
    {"id": "quiz", "type": "quiz", "questions": [
      {"id": 1, "question": "O que vem primeiro?", "options": ["Observação", "Julgamento"], "correctAnswer": "Observação"}
    ]},
    {"id": "footer", "type": "footer", "copyright": "© 2024"}
  ]
}`

const legacyShapeDoc = `{
  "sections": [
    {"id": "texto", "type": "text_block", "text": "Bem-vindo ao curso."},
    {"id": "nav", "type": "navigation_grid", "items": [{"label": "Início", "target": "texto"}]},
    {"id": "media", "type": "multimedia", "items": [
      {"id": "audio-1", "type": "audio", "title": "Episódio", "url": "https://example.test/a"}
    ]},
    {"id": "conteudo", "type": "tabs", "tabs": [
      {"id": "tab-1", "label": "Cartas", "content": [
        {"id": "hb-1", "type": "highlight_box", "title": "Destaque", "style": "danger"},
        {"id": "pc-1", "type": "profile_card", "name": "Perfil", "color": "warning"}
      ]}
    ]},
    {"id": "fim", "type": "simple_footer", "copyright": "© 2023"}
  ]
}`

func TestNormalizeCurrentShape(t *testing.T) {
	doc, err := Normalize([]byte(currentShapeDoc))
	require.NoError(t, err)

	require.NotNil(t, doc.Metadata)
	assert.Equal(t, "Comunicação não violenta", doc.Metadata.Title)
	assert.Equal(t, 3, doc.TotalSections)
	assert.Equal(t, 50, doc.PointsPerSection)
	require.Contains(t, doc.Badges, "iniciante")
	assert.Equal(t, 2, doc.Badges["iniciante"].Threshold)

	require.NotNil(t, doc.Header)
	assert.Equal(t, "Seu progresso", doc.Header.ProgressLabel)

	require.Len(t, doc.Sections, 8)
	assert.Equal(t, SectionIntro, doc.Sections[0].Type)
	assert.Equal(t, []string{"Olá, **aluno**."}, doc.Sections[0].Paragraphs)

	media := doc.FindSection(SectionMultimedia)
	require.NotNil(t, media)
	require.Len(t, media.Media, 2)
	assert.Equal(t, MediaAudio, media.Media[0].Kind)
	assert.Equal(t, MediaVideo, media.Media[1].Kind)

	tabs := doc.FindSection(SectionTabs)
	require.NotNil(t, tabs)
	require.Len(t, tabs.Tabs, 2)
	assert.Equal(t, CardHighlight, tabs.Tabs[0].Content[1].Type)
	assert.Equal(t, CardTrait, tabs.Tabs[1].Content[0].Type)

	ex := doc.FindSection(SectionExercise)
	require.NotNil(t, ex)
	require.NotNil(t, ex.Exercise)
	assert.Equal(t, "exercicio-1", ex.Exercise.ID)

	quiz := doc.FindSection(SectionQuiz)
	require.NotNil(t, quiz)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Observação", quiz.Questions[0].CorrectAnswer)
}

func TestNormalizeLegacyShape(t *testing.T) {
	doc, err := Normalize([]byte(legacyShapeDoc))
	require.NoError(t, err)

	// No metadata: defaults kick in, and the progress denominator comes
	// from the completable-item count, not the section count.
	assert.Nil(t, doc.Metadata)
	assert.Nil(t, doc.Header)
	assert.Equal(t, defaultPointsPerSection, doc.PointsPerSection)
	assert.Equal(t, 3, doc.TotalSections) // audio-1, hb-1, pc-1

	assert.Equal(t, SectionIntro, doc.Sections[0].Type)
	assert.Equal(t, []string{"Bem-vindo ao curso."}, doc.Sections[0].Paragraphs)
	assert.Equal(t, SectionNavigation, doc.Sections[1].Type)
	assert.Equal(t, SectionFooter, doc.Sections[4].Type)

	media := doc.FindSection(SectionMultimedia)
	require.NotNil(t, media)
	assert.Equal(t, MediaAudio, media.Media[0].Kind)

	tabs := doc.FindSection(SectionTabs)
	require.NotNil(t, tabs)
	cards := tabs.Tabs[0].Content
	assert.Equal(t, CardHighlight, cards[0].Type)
	assert.Equal(t, "highlight_box", cards[0].RawType)
	assert.Equal(t, CardTrait, cards[1].Type)
	assert.Equal(t, "yellow", cards[1].Color)
}

func TestNormalizeSingleCardContent(t *testing.T) {
	doc, err := Normalize([]byte(`{"sections": [
		{"id": "exp", "type": "expandable_section", "content": {"id": "c1", "type": "card", "title": "Sozinho"}}
	]}`))
	require.NoError(t, err)

	exp := doc.FindSection(SectionExpandable)
	require.NotNil(t, exp)
	require.Len(t, exp.Cards, 1)
	assert.Equal(t, "c1", exp.Cards[0].ID)
}

func TestNormalizeUnknownTypesSurvive(t *testing.T) {
	doc, err := Normalize([]byte(`{"sections": [
		{"id": "weird", "type": "carousel_3d", "title": "Novo"},
		{"id": "conteudo", "type": "tabs", "tabs": [
			{"id": "t1", "label": "T", "content": [{"id": "x1", "type": "hologram_card"}]}
		]}
	]}`))
	require.NoError(t, err)

	assert.Equal(t, SectionUnknown, doc.Sections[0].Type)
	assert.Equal(t, "carousel_3d", doc.Sections[0].RawType)

	card := doc.Sections[1].Tabs[0].Content[0]
	assert.Equal(t, CardUnknown, card.Type)

	// Unknown cards are not completable, so the fallback denominator
	// excludes them.
	assert.Equal(t, 0, doc.TotalSections)
}

func TestNormalizeSchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{"sections": [`},
		{"sections missing", `{"metadata": {}}`},
		{"sections not array", `{"sections": {"id": "x"}}`},
		{"section missing id", `{"sections": [{"type": "intro"}]}`},
		{"duplicate ids", `{"sections": [
			{"id": "media", "type": "multimedia", "items": [{"id": "dup", "mediaType": "audio"}]},
			{"id": "conteudo", "type": "tabs", "tabs": [{"id": "t1", "label": "T", "content": [{"id": "dup", "type": "card"}]}]}
		]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize([]byte(tc.raw))
			require.Error(t, err)
			var se *SchemaError
			assert.True(t, errors.As(err, &se), "want *SchemaError, got %T", err)
		})
	}
}

func TestNormalizeBadPointsPerSectionIgnored(t *testing.T) {
	doc, err := Normalize([]byte(`{
		"metadata": {"gamification": {"pointsPerSection": 0}},
		"sections": []
	}`))
	require.NoError(t, err)
	assert.Equal(t, defaultPointsPerSection, doc.PointsPerSection)
}
