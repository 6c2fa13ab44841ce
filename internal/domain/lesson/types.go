// internal/domain/lesson/types.go
package lesson

// SectionType discriminates the top-level blocks of a lesson document.
type SectionType string

const (
	SectionIntro      SectionType = "intro"
	SectionNavigation SectionType = "navigation"
	SectionMultimedia SectionType = "multimedia"
	SectionTabs       SectionType = "tabs"
	SectionExpandable SectionType = "expandable_section"
	SectionExercise   SectionType = "exercise"
	SectionQuiz       SectionType = "quiz"
	SectionFooter     SectionType = "footer"

	// SectionUnknown is assigned to section types no renderer knows about.
	// The section is kept (and rendered as an inert placeholder) so one bad
	// block never fails the whole document.
	SectionUnknown SectionType = "unknown"
)

// CardType discriminates renderable, independently completable units nested
// inside tabs and expandable sections.
type CardType string

const (
	CardBasic     CardType = "card"
	CardHighlight CardType = "highlight_card"
	CardTrait     CardType = "trait_card"
	CardAlert     CardType = "alert_card"
	CardExercise  CardType = "exercise_card"
	CardQuiz      CardType = "quiz_card"
	CardUnknown   CardType = "unknown"
)

// MediaKind discriminates multimedia items.
type MediaKind string

const (
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
)

// Document is the canonical in-memory form of a lesson, produced by
// Normalize from any of the historical JSON shapes.
//
// Metadata and Header are optional display copy; when the source document
// omits them the dashboard is simply not rendered. TotalSections,
// PointsPerSection and Badges are always populated (with fallbacks applied)
// because progress tracking needs them regardless of display copy.
type Document struct {
	Metadata *Metadata
	Header   *Header
	Sections []Section

	TotalSections    int
	PointsPerSection int
	Badges           map[string]BadgeSpec
}

// Metadata is optional display copy for the lesson dashboard.
type Metadata struct {
	Title    string
	Subtitle string
}

// BadgeSpec describes one earnable badge.
type BadgeSpec struct {
	Label     string
	Icon      string
	Color     string
	Threshold int
}

// Header is the optional progress label and certificate blurb.
type Header struct {
	ProgressLabel    string
	CertificateTitle string
	CertificateText  string
}

// Section is a tagged union over SectionType. Exactly one variant payload is
// meaningful for a given Type; the rest stay zero.
type Section struct {
	ID       string
	Type     SectionType
	Title    string
	Subtitle string

	// RawType preserves the source discriminant for unknown sections so the
	// placeholder can say what it could not render.
	RawType string

	Paragraphs []string        // intro
	NavItems   []NavItem       // navigation
	Media      []MultimediaItem // multimedia
	Tabs       []Tab           // tabs
	Cards      []Card          // expandable_section
	Exercise   *Exercise       // exercise
	Questions  []QuizQuestion  // quiz
	Links      []string        // footer
	Copyright  string          // footer
}

// NavItem is a jump command in a navigation grid.
type NavItem struct {
	Label  string
	Icon   string
	Target string
	Tab    string
}

// MultimediaItem is one audio or video activity. ID is its completion key.
type MultimediaItem struct {
	ID         string
	Kind       MediaKind
	Title      string
	Subtitle   string
	URL        string
	ButtonText string
}

// Tab is one pane of a tabs section.
type Tab struct {
	ID      string
	Label   string
	Content []Card
}

// Card is a tagged union over CardType. ID is the completion key for every
// completable variant.
type Card struct {
	ID   string
	Type CardType

	// RawType preserves the source discriminant for unknown cards.
	RawType string

	Title      string
	Subtitle   string
	Text       string
	ButtonText string
	Style      string

	// Trait card fields.
	Name      string
	Archetype string
	Icon      string
	Color     string
	Body      string
	Pain      string
	Power     string
	Story     string
	Deal      string

	// Alert card fields.
	List         []string
	HighlightBox string
}

// Exercise is the single practical-exercise card of an exercise section.
// The free-text scratch input tied to it is ephemeral and never persisted.
type Exercise struct {
	ID           string
	Title        string
	Instructions []string
	Placeholder  string
	ButtonText   string
}

// QuizQuestion is one question of a quiz section. Answers are matched
// exactly against CorrectAnswer.
type QuizQuestion struct {
	ID            int
	Question      string
	Options       []string
	CorrectAnswer string
}

// Thresholds extracts the badge threshold table keyed by badge key.
func (d *Document) Thresholds() map[string]int {
	t := make(map[string]int, len(d.Badges))
	for key, spec := range d.Badges {
		t[key] = spec.Threshold
	}
	return t
}

// FindSection returns the first section of the given type, or nil.
func (d *Document) FindSection(t SectionType) *Section {
	for i := range d.Sections {
		if d.Sections[i].Type == t {
			return &d.Sections[i]
		}
	}
	return nil
}
