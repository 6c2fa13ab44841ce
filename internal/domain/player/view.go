// internal/domain/player/view.go
package player

import "github.com/dalemusser/lessonhub/internal/domain/gamify"

// Progress is the slice of the progress store the renderer needs: which
// items are done, the derived snapshot and the earned badge keys.
type Progress struct {
	Completed map[string]bool
	Snapshot  gamify.Snapshot
	Badges    []string
}

// ViewTree is the fully resolved render of one lesson for one learner.
type ViewTree struct {
	Dashboard *DashboardView `json:"dashboard,omitempty"`
	Sections  []SectionView  `json:"sections"`

	// FocusID is the element the UI should scroll into view and briefly
	// highlight on this render, if any.
	FocusID string `json:"focusId,omitempty"`
}

// DashboardView is the progress header. It is only present when the
// document declares metadata; no copy is invented for documents without it.
type DashboardView struct {
	Title           string      `json:"title"`
	Subtitle        string      `json:"subtitle,omitempty"`
	ProgressLabel   string      `json:"progressLabel,omitempty"`
	CompletedCount  int         `json:"completedCount"`
	TotalSections   int         `json:"totalSections"`
	Points          int         `json:"points"`
	ProgressPercent int         `json:"progressPercent"`
	Badges          []BadgeView `json:"badges,omitempty"`
}

// BadgeView is one badge with its earned state resolved.
type BadgeView struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Icon      string `json:"icon,omitempty"`
	Color     string `json:"color,omitempty"`
	Threshold int    `json:"threshold"`
	Earned    bool   `json:"earned"`
}

// SectionView is the rendered form of one section. Exactly one payload
// field is populated according to Type; Placeholder sections carry only
// RawType so the UI can say what it could not render.
type SectionView struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`

	Paragraphs []string        `json:"paragraphs,omitempty"`
	NavItems   []NavItemView   `json:"navItems,omitempty"`
	Media      []MediaItemView `json:"media,omitempty"`
	Tabs       *TabsView       `json:"tabs,omitempty"`
	Cards      []CardView      `json:"cards,omitempty"`
	Expanded   bool            `json:"expanded,omitempty"`
	Exercise   *ExerciseView   `json:"exercise,omitempty"`
	Quiz       *QuizView       `json:"quiz,omitempty"`
	Links      []string        `json:"links,omitempty"`
	Copyright  string          `json:"copyright,omitempty"`

	Placeholder bool   `json:"placeholder,omitempty"`
	RawType     string `json:"rawType,omitempty"`
}

// NavItemView is one jump command in the navigation grid.
type NavItemView struct {
	Label  string `json:"label"`
	Icon   string `json:"icon,omitempty"`
	Target string `json:"target"`
	Tab    string `json:"tab,omitempty"`
}

// MediaItemView is one audio or video activity with its completion state.
type MediaItemView struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Title      string `json:"title,omitempty"`
	Subtitle   string `json:"subtitle,omitempty"`
	URL        string `json:"url"`
	ButtonText string `json:"buttonText,omitempty"`
	Completed  bool   `json:"completed"`
	ShowNext   bool   `json:"showNext"`
}

// TabsView renders a tab group with exactly one active pane.
type TabsView struct {
	ActiveTabID string    `json:"activeTabId"`
	Tabs        []TabView `json:"tabs"`
}

// TabView is one tab header; Content is only populated for the active tab.
type TabView struct {
	ID      string     `json:"id"`
	Label   string     `json:"label"`
	Active  bool       `json:"active"`
	Content []CardView `json:"content,omitempty"`
}

// CardView is the rendered form of one card. Completed cards have their
// completion button disabled; ShowNext offers the "go to next" action and
// is suppressed on the last completable item of the container.
type CardView struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Title      string `json:"title,omitempty"`
	Subtitle   string `json:"subtitle,omitempty"`
	Text       string `json:"text,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
	Style      string `json:"style,omitempty"`

	Name      string `json:"name,omitempty"`
	Archetype string `json:"archetype,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Color     string `json:"color,omitempty"`
	Body      string `json:"body,omitempty"`
	Pain      string `json:"pain,omitempty"`
	Power     string `json:"power,omitempty"`
	Story     string `json:"story,omitempty"`
	Deal      string `json:"deal,omitempty"`

	List         []string `json:"list,omitempty"`
	HighlightBox string   `json:"highlightBox,omitempty"`

	Completed bool `json:"completed"`
	ShowNext  bool `json:"showNext"`

	Placeholder bool   `json:"placeholder,omitempty"`
	RawType     string `json:"rawType,omitempty"`
}

// ExerciseView is the practical-exercise card with its disclosure state.
// The free-text input stays client-side and never round-trips.
type ExerciseView struct {
	ID           string   `json:"id"`
	Title        string   `json:"title,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	Placeholder  string   `json:"placeholder,omitempty"`
	ButtonText   string   `json:"buttonText,omitempty"`
	Expanded     bool     `json:"expanded"`
	Completed    bool     `json:"completed"`
}

// QuizView renders the quiz with the session's current selections. Correct
// answers never leave the server.
type QuizView struct {
	Questions []QuizQuestionView `json:"questions"`
	Result    string             `json:"result,omitempty"`
}

// QuizQuestionView is one question with the learner's selection, if any.
type QuizQuestionView struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Selected string   `json:"selected,omitempty"`
}

// Effects reports what applying an event did beyond mutating state.
type Effects struct {
	// Saved is true when the event caused a progress write-through.
	Saved bool `json:"saved"`

	// FocusTarget is an element to scroll to and highlight now.
	FocusTarget string `json:"focusTarget,omitempty"`

	// DeferredFocus signals that the focus target was parked in the state
	// instead, to be consumed by the next render after a tab switch.
	DeferredFocus bool `json:"deferredFocus,omitempty"`

	// SectionComplete is set when go-to-next ran off the end of the
	// flatten order and the UI should celebrate and point at the quiz.
	SectionComplete bool `json:"sectionComplete,omitempty"`

	// QuizResult carries the scoring message after a submit.
	QuizResult string `json:"quizResult,omitempty"`
}
