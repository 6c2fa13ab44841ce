// internal/domain/player/state.go
//
// Package player turns a normalized lesson document plus a learner's
// progress into a renderable view tree, and applies interaction events to
// the per-session state machine. Quiz answers, exercise disclosure and the
// pending focus target live here and are deliberately ephemeral.
package player

// State is the per-learner, per-lesson interaction state. It is held in
// memory for the session and never persisted; losing it costs at most an
// unsubmitted quiz selection.
type State struct {
	// ActiveTabID is meaningful while a tabs section is rendered. Empty
	// means "first tab in document order".
	ActiveTabID string

	// ExpandedCardID is the single-open disclosure used by the exercise
	// card. At most one such card is open at a time.
	ExpandedCardID string

	// ExpandedSectionIDs tracks expandable sections, which are multi-open
	// and independent of the exercise disclosure.
	ExpandedSectionIDs map[string]bool

	// QuizAnswers maps question ID to the selected option.
	QuizAnswers map[int]string

	// QuizResult is the message from the last submit, empty before one.
	QuizResult string

	// PendingFocusID defers a scroll target across a tab switch: the jump
	// sets it, the next render consumes it once the new tab's content is
	// addressable. No timer involved.
	PendingFocusID string
}

// NewState returns an empty interaction state.
func NewState() *State {
	return &State{
		ExpandedSectionIDs: map[string]bool{},
		QuizAnswers:        map[int]string{},
	}
}
