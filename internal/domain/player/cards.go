// internal/domain/player/cards.go
package player

import (
	"github.com/dalemusser/lessonhub/internal/domain/lesson"
)

// cardDecorator finishes the variant-specific part of a card view. The
// shared fields, completion state and next affordance are resolved before
// dispatch.
type cardDecorator func(c lesson.Card, cv *CardView)

var cardDecorators = map[lesson.CardType]cardDecorator{
	lesson.CardBasic:     decorateBasic,
	lesson.CardHighlight: decorateHighlight,
	lesson.CardTrait:     decorateTrait,
	lesson.CardAlert:     decorateAlert,
	lesson.CardExercise:  decorateBasic,
	lesson.CardQuiz:      decorateBasic,
}

func buildCards(doc *lesson.Document, cards []lesson.Card, prog Progress) []CardView {
	if len(cards) == 0 {
		return nil
	}
	out := make([]CardView, len(cards))
	for i, c := range cards {
		out[i] = buildCard(doc, c, prog)
	}
	return out
}

func buildCard(doc *lesson.Document, c lesson.Card, prog Progress) CardView {
	cv := CardView{
		ID:         c.ID,
		Type:       string(c.Type),
		Title:      c.Title,
		Subtitle:   c.Subtitle,
		ButtonText: c.ButtonText,
		Style:      c.Style,
	}

	decorate, ok := cardDecorators[c.Type]
	if !ok {
		cv.Type = string(lesson.CardUnknown)
		cv.Placeholder = true
		cv.RawType = c.RawType
		return cv
	}
	decorate(c, &cv)

	cv.Completed = prog.Completed[c.ID]
	cv.ShowNext = cv.Completed && !lesson.IsLastInContainer(doc, c.ID)
	return cv
}

func decorateBasic(c lesson.Card, cv *CardView) {
	cv.Text = richText(c.Text)
}

func decorateHighlight(c lesson.Card, cv *CardView) {
	cv.Text = richText(c.Text)
	cv.Icon = c.Icon
	cv.Color = c.Color
}

func decorateTrait(c lesson.Card, cv *CardView) {
	cv.Name = c.Name
	cv.Archetype = c.Archetype
	cv.Icon = c.Icon
	cv.Color = c.Color
	cv.Body = richText(c.Body)
	cv.Pain = richText(c.Pain)
	cv.Power = richText(c.Power)
	cv.Story = richText(c.Story)
	cv.Deal = richText(c.Deal)
}

func decorateAlert(c lesson.Card, cv *CardView) {
	cv.Text = richText(c.Text)
	cv.Icon = c.Icon
	cv.Color = c.Color
	cv.List = richTextAll(c.List)
	cv.HighlightBox = richText(c.HighlightBox)
}
