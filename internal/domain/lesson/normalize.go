// internal/domain/lesson/normalize.go
package lesson

import (
	"encoding/json"
	"fmt"
	"strings"
)

const defaultPointsPerSection = 10

// Raw decode targets. These stay permissive on purpose: the historical
// document shapes disagree on field names and on whether payloads are
// objects or arrays, and the normalizer absorbs all of that here so the
// canonical model never has to.

type rawDocument struct {
	Metadata *rawMetadata      `json:"metadata"`
	Header   *rawHeader        `json:"header"`
	Sections []json.RawMessage `json:"sections"`
}

type rawMetadata struct {
	Title         string           `json:"title"`
	Subtitle      string           `json:"subtitle"`
	TotalSections int              `json:"totalSections"`
	Gamification  *rawGamification `json:"gamification"`
}

type rawGamification struct {
	PointsPerSection int                 `json:"pointsPerSection"`
	Badges           map[string]rawBadge `json:"badges"`
}

type rawBadge struct {
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Threshold int    `json:"threshold"`
}

type rawHeader struct {
	ProgressLabel    string `json:"progressLabel"`
	CertificateTitle string `json:"certificateTitle"`
	CertificateText  string `json:"certificateText"`
}

type rawSection struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`

	Paragraphs []string        `json:"paragraphs"`
	Text       string          `json:"text"`
	Items      json.RawMessage `json:"items"`
	Tabs       []rawTab        `json:"tabs"`
	Content    json.RawMessage `json:"content"`
	Questions  []rawQuestion   `json:"questions"`
	Links      []string        `json:"links"`
	Copyright  string          `json:"copyright"`
}

type rawTab struct {
	ID      string          `json:"id"`
	Label   string          `json:"label"`
	Content json.RawMessage `json:"content"`
}

type rawNavItem struct {
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Target string `json:"target"`
	Tab    string `json:"tab"`
}

type rawMediaItem struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	MediaType  string `json:"mediaType"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	URL        string `json:"url"`
	ButtonText string `json:"buttonText"`
}

type rawCard struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Text       string `json:"text"`
	ButtonText string `json:"buttonText"`
	Style      string `json:"style"`

	Name      string `json:"name"`
	Archetype string `json:"archetype"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Body      string `json:"body"`
	Pain      string `json:"pain"`
	Power     string `json:"power"`
	Story     string `json:"story"`
	Deal      string `json:"deal"`

	List         []string `json:"list"`
	HighlightBox string   `json:"highlightBox"`

	// Exercise-card fields.
	Instructions []string `json:"instructions"`
	Placeholder  string   `json:"placeholder"`
}

type rawQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// sectionTypeSynonyms folds the older discriminant names onto the canonical
// ones. Unlisted values pass through and, if still unrecognized, become
// SectionUnknown.
var sectionTypeSynonyms = map[string]SectionType{
	"intro":              SectionIntro,
	"text_block":         SectionIntro,
	"navigation":         SectionNavigation,
	"navigation_grid":    SectionNavigation,
	"multimedia":         SectionMultimedia,
	"tabs":               SectionTabs,
	"expandable_section": SectionExpandable,
	"exercise":           SectionExercise,
	"quiz":               SectionQuiz,
	"footer":             SectionFooter,
	"simple_footer":      SectionFooter,
}

var cardTypeSynonyms = map[string]CardType{
	"card":           CardBasic,
	"highlight_card": CardHighlight,
	"highlight_box":  CardHighlight,
	"trait_card":     CardTrait,
	"profile_card":   CardTrait,
	"alert_card":     CardAlert,
	"exercise_card":  CardExercise,
	"quiz_card":      CardQuiz,
}

// colorSynonyms maps the first-generation semantic style hints onto the
// literal color tokens the later documents use.
var colorSynonyms = map[string]string{
	"danger":  "red",
	"warning": "yellow",
	"info":    "blue",
	"success": "green",
}

// Normalize turns a raw lesson document in any of the historical JSON shapes
// into the canonical model. It never fails on unknown section or card types;
// it does fail, with a *SchemaError, on documents whose sections array is
// structurally unusable or whose completion keys collide.
func Normalize(raw []byte) (*Document, error) {
	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var rd rawDocument
	if err := json.Unmarshal(raw, &rd); err != nil {
		return nil, &SchemaError{Reason: "decode document", Cause: err}
	}

	doc := &Document{
		PointsPerSection: defaultPointsPerSection,
		Badges:           map[string]BadgeSpec{},
	}

	if rd.Metadata != nil {
		doc.Metadata = &Metadata{Title: rd.Metadata.Title, Subtitle: rd.Metadata.Subtitle}
		doc.TotalSections = rd.Metadata.TotalSections
		if g := rd.Metadata.Gamification; g != nil {
			if g.PointsPerSection > 0 {
				doc.PointsPerSection = g.PointsPerSection
			}
			for key, b := range g.Badges {
				doc.Badges[key] = BadgeSpec{
					Label:     b.Label,
					Icon:      b.Icon,
					Color:     normalizeColor(b.Color),
					Threshold: b.Threshold,
				}
			}
		}
	}
	if rd.Header != nil {
		doc.Header = &Header{
			ProgressLabel:    rd.Header.ProgressLabel,
			CertificateTitle: rd.Header.CertificateTitle,
			CertificateText:  rd.Header.CertificateText,
		}
	}

	doc.Sections = make([]Section, 0, len(rd.Sections))
	for i, rawSec := range rd.Sections {
		sec, err := normalizeSection(rawSec)
		if err != nil {
			return nil, &SchemaError{Reason: fmt.Sprintf("sections[%d]", i), Cause: err}
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if err := checkDuplicateIDs(doc); err != nil {
		return nil, err
	}

	// Without declared metadata the denominator for progress percentages is
	// the number of completable items the document actually contains.
	if doc.TotalSections <= 0 {
		doc.TotalSections = len(Flatten(doc))
	}

	return doc, nil
}

func normalizeSection(raw json.RawMessage) (Section, error) {
	var rs rawSection
	if err := json.Unmarshal(raw, &rs); err != nil {
		return Section{}, err
	}

	sec := Section{
		ID:       rs.ID,
		Title:    rs.Title,
		Subtitle: rs.Subtitle,
		RawType:  rs.Type,
	}

	t, ok := sectionTypeSynonyms[rs.Type]
	if !ok {
		sec.Type = SectionUnknown
		return sec, nil
	}
	sec.Type = t

	switch t {
	case SectionIntro:
		sec.Paragraphs = rs.Paragraphs
		if len(sec.Paragraphs) == 0 && rs.Text != "" {
			sec.Paragraphs = []string{rs.Text}
		}

	case SectionNavigation:
		var items []rawNavItem
		if len(rs.Items) > 0 {
			if err := json.Unmarshal(rs.Items, &items); err != nil {
				return Section{}, fmt.Errorf("navigation items: %w", err)
			}
		}
		sec.NavItems = make([]NavItem, len(items))
		for i, it := range items {
			sec.NavItems[i] = NavItem{Label: it.Label, Icon: it.Icon, Target: it.Target, Tab: it.Tab}
		}

	case SectionMultimedia:
		var items []rawMediaItem
		if len(rs.Items) > 0 {
			if err := json.Unmarshal(rs.Items, &items); err != nil {
				return Section{}, fmt.Errorf("multimedia items: %w", err)
			}
		}
		sec.Media = make([]MultimediaItem, len(items))
		for i, it := range items {
			sec.Media[i] = MultimediaItem{
				ID:         it.ID,
				Kind:       mediaKind(it),
				Title:      it.Title,
				Subtitle:   it.Subtitle,
				URL:        it.URL,
				ButtonText: it.ButtonText,
			}
		}

	case SectionTabs:
		sec.Tabs = make([]Tab, len(rs.Tabs))
		for i, rt := range rs.Tabs {
			cards, err := normalizeCards(rt.Content)
			if err != nil {
				return Section{}, fmt.Errorf("tab %q content: %w", rt.ID, err)
			}
			sec.Tabs[i] = Tab{ID: rt.ID, Label: rt.Label, Content: cards}
		}

	case SectionExpandable:
		cards, err := normalizeCards(rs.Content)
		if err != nil {
			return Section{}, fmt.Errorf("expandable content: %w", err)
		}
		sec.Cards = cards

	case SectionExercise:
		ex, err := normalizeExercise(rs.Content)
		if err != nil {
			return Section{}, fmt.Errorf("exercise content: %w", err)
		}
		sec.Exercise = ex

	case SectionQuiz:
		sec.Questions = make([]QuizQuestion, len(rs.Questions))
		for i, q := range rs.Questions {
			sec.Questions[i] = QuizQuestion{
				ID:            q.ID,
				Question:      q.Question,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
			}
		}

	case SectionFooter:
		sec.Links = rs.Links
		sec.Copyright = rs.Copyright
	}

	return sec, nil
}

// normalizeCards accepts both historical content encodings: an array of
// cards or a single bare card object. nil input yields no cards.
func normalizeCards(raw json.RawMessage) ([]Card, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var rcs []rawCard
	if err := json.Unmarshal(raw, &rcs); err != nil {
		var single rawCard
		if err2 := json.Unmarshal(raw, &single); err2 != nil {
			return nil, err
		}
		rcs = []rawCard{single}
	}

	cards := make([]Card, len(rcs))
	for i, rc := range rcs {
		cards[i] = normalizeCard(rc)
	}
	return cards, nil
}

func normalizeCard(rc rawCard) Card {
	c := Card{
		ID:         rc.ID,
		RawType:    rc.Type,
		Title:      rc.Title,
		Subtitle:   rc.Subtitle,
		Text:       rc.Text,
		ButtonText: rc.ButtonText,
		Style:      rc.Style,

		Name:      rc.Name,
		Archetype: rc.Archetype,
		Icon:      rc.Icon,
		Color:     normalizeColor(rc.Color),
		Body:      rc.Body,
		Pain:      rc.Pain,
		Power:     rc.Power,
		Story:     rc.Story,
		Deal:      rc.Deal,

		List:         rc.List,
		HighlightBox: rc.HighlightBox,
	}

	t, ok := cardTypeSynonyms[rc.Type]
	if !ok {
		c.Type = CardUnknown
		return c
	}
	c.Type = t
	return c
}

func normalizeExercise(raw json.RawMessage) (*Exercise, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rc rawCard
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, err
	}
	return &Exercise{
		ID:           rc.ID,
		Title:        rc.Title,
		Instructions: rc.Instructions,
		Placeholder:  rc.Placeholder,
		ButtonText:   rc.ButtonText,
	}, nil
}

// mediaKind resolves the audio/video discriminant, which moved between the
// type and mediaType fields across document generations. Anything that is
// not recognizably audio is treated as video.
func mediaKind(it rawMediaItem) MediaKind {
	d := it.MediaType
	if d == "" {
		d = it.Type
	}
	if strings.EqualFold(d, string(MediaAudio)) {
		return MediaAudio
	}
	return MediaVideo
}

func normalizeColor(c string) string {
	if mapped, ok := colorSynonyms[strings.ToLower(c)]; ok {
		return mapped
	}
	return c
}

// checkDuplicateIDs enforces completion-key uniqueness across every
// completable item in the document. Section IDs are included because
// navigation targets address them.
func checkDuplicateIDs(doc *Document) error {
	seen := map[string]bool{}
	note := func(id string) error {
		if id == "" {
			return nil
		}
		if seen[id] {
			return &SchemaError{Reason: fmt.Sprintf("duplicate id %q", id)}
		}
		seen[id] = true
		return nil
	}

	for i := range doc.Sections {
		sec := &doc.Sections[i]
		if err := note(sec.ID); err != nil {
			return err
		}
		for _, m := range sec.Media {
			if err := note(m.ID); err != nil {
				return err
			}
		}
		for _, tab := range sec.Tabs {
			for _, c := range tab.Content {
				if err := note(c.ID); err != nil {
					return err
				}
			}
		}
		for _, c := range sec.Cards {
			if err := note(c.ID); err != nil {
				return err
			}
		}
		if sec.Exercise != nil {
			if err := note(sec.Exercise.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
