// internal/domain/player/events.go
package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/lessonhub/internal/domain/lesson"
)

// Event is one interaction from the hosting UI.
type Event struct {
	Type       string `json:"type"`
	TargetID   string `json:"targetId,omitempty"`
	Tab        string `json:"tab,omitempty"`
	QuestionID int    `json:"questionId,omitempty"`
	Option     string `json:"option,omitempty"`
}

// Event types.
const (
	EventComplete       = "complete"
	EventSwitchTab      = "switch_tab"
	EventToggleExercise = "toggle_exercise"
	EventToggleSection  = "toggle_section"
	EventSelectAnswer   = "select_answer"
	EventSubmitQuiz     = "submit_quiz"
	EventGoToNext       = "go_to_next"
	EventNavigate       = "navigate"
)

// ErrUnknownEvent is returned for event types no handler recognizes.
var ErrUnknownEvent = errors.New("unknown event type")

// ErrUnknownTarget is returned when a completion event names an id that is
// not a completable item of the document. Only flatten-order items may enter
// the completed map; it is the progress denominator.
var ErrUnknownTarget = errors.New("unknown completion target")

// ProgressWriter is the slice of the progress store an event needs: the
// caller binds learner, lesson and gamification settings before handing it
// in, so the state machine stays free of storage concerns.
type ProgressWriter interface {
	MarkCompleted(ctx context.Context, itemID string) error
}

// HandleEvent applies one event to the session state. Persistence happens
// inside (write-through on completion); the returned effects tell the UI
// what else to do. Navigation that cannot advance is a silent no-op.
func HandleEvent(ctx context.Context, doc *lesson.Document, st *State, pw ProgressWriter, ev Event) (Effects, error) {
	switch ev.Type {
	case EventComplete:
		if !completable(doc, ev.TargetID) {
			return Effects{}, fmt.Errorf("%w: %q", ErrUnknownTarget, ev.TargetID)
		}
		if err := pw.MarkCompleted(ctx, ev.TargetID); err != nil {
			return Effects{}, err
		}
		return Effects{Saved: true}, nil

	case EventSwitchTab:
		st.ActiveTabID = ev.Tab
		return Effects{}, nil

	case EventToggleExercise:
		if st.ExpandedCardID == ev.TargetID {
			st.ExpandedCardID = ""
		} else {
			st.ExpandedCardID = ev.TargetID
		}
		return Effects{}, nil

	case EventToggleSection:
		st.ExpandedSectionIDs[ev.TargetID] = !st.ExpandedSectionIDs[ev.TargetID]
		return Effects{}, nil

	case EventSelectAnswer:
		st.QuizAnswers[ev.QuestionID] = ev.Option
		return Effects{}, nil

	case EventSubmitQuiz:
		return submitQuiz(doc, st), nil

	case EventGoToNext:
		return goToNext(doc, st, ev.TargetID), nil

	case EventNavigate:
		return jumpTo(st, ev.TargetID, ev.Tab), nil

	default:
		return Effects{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// completable reports whether id names an item of the flatten order, the
// same set the progress denominator counts.
func completable(doc *lesson.Document, id string) bool {
	for _, item := range lesson.Flatten(doc) {
		if item.ID == id {
			return true
		}
	}
	return false
}

// submitQuiz scores the current selections against the quiz section. The
// whole score is recomputed on every submit, so a resubmission after
// changing answers needs no reset step.
func submitQuiz(doc *lesson.Document, st *State) Effects {
	quiz := doc.FindSection(lesson.SectionQuiz)
	if quiz == nil {
		return Effects{}
	}

	score := 0
	for _, q := range quiz.Questions {
		if st.QuizAnswers[q.ID] == q.CorrectAnswer {
			score++
		}
	}

	st.QuizResult = fmt.Sprintf("Você acertou %d de %d questões!", score, len(quiz.Questions))
	return Effects{QuizResult: st.QuizResult}
}

// goToNext advances focus to the item after currentID in the flatten order.
// Same container: immediate focus. Different tab: switch the active tab now
// and park the focus target for the next render, so the target exists when
// the UI addresses it. Off the end: silent no-op that points at the quiz
// when the document has one.
func goToNext(doc *lesson.Document, st *State, currentID string) Effects {
	next, ok := lesson.Next(doc, currentID)
	if !ok {
		quiz := doc.FindSection(lesson.SectionQuiz)
		if quiz == nil {
			return Effects{}
		}
		return Effects{SectionComplete: true, FocusTarget: quiz.ID}
	}

	return jumpTo(st, next.ID, lesson.TabOf(doc, next.ID))
}

// jumpTo focuses a target, switching the active tab first when the target
// lives in a tab other than the current one.
func jumpTo(st *State, targetID, tabID string) Effects {
	if tabID != "" && tabID != st.ActiveTabID {
		st.ActiveTabID = tabID
		st.PendingFocusID = targetID
		return Effects{DeferredFocus: true}
	}
	return Effects{FocusTarget: targetID}
}
