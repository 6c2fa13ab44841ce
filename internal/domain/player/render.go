// internal/domain/player/render.go
package player

import (
	"github.com/dalemusser/lessonhub/internal/domain/lesson"
)

// sectionBuilder renders one section variant. Unregistered section types
// fall through to the placeholder builder, which is the single point where
// "unknown renders inert" is decided.
type sectionBuilder func(doc *lesson.Document, sec *lesson.Section, st *State, prog Progress) SectionView

var sectionBuilders = map[lesson.SectionType]sectionBuilder{
	lesson.SectionIntro:      buildIntro,
	lesson.SectionNavigation: buildNavigation,
	lesson.SectionMultimedia: buildMultimedia,
	lesson.SectionTabs:       buildTabs,
	lesson.SectionExpandable: buildExpandable,
	lesson.SectionExercise:   buildExercise,
	lesson.SectionQuiz:       buildQuiz,
	lesson.SectionFooter:     buildFooter,
}

// Render resolves the document against the session state and progress into
// a view tree. It consumes the pending focus target: a jump that switched
// tabs parks its scroll target in the state, and this render, which now
// includes the new tab's content, surfaces and clears it.
func Render(doc *lesson.Document, st *State, prog Progress) ViewTree {
	tree := ViewTree{
		Dashboard: buildDashboard(doc, prog),
		Sections:  make([]SectionView, 0, len(doc.Sections)),
	}

	for i := range doc.Sections {
		sec := &doc.Sections[i]
		build, ok := sectionBuilders[sec.Type]
		if !ok {
			tree.Sections = append(tree.Sections, buildPlaceholder(sec))
			continue
		}
		tree.Sections = append(tree.Sections, build(doc, sec, st, prog))
	}

	tree.FocusID = st.PendingFocusID
	st.PendingFocusID = ""
	return tree
}

func buildDashboard(doc *lesson.Document, prog Progress) *DashboardView {
	if doc.Metadata == nil {
		return nil
	}

	dv := &DashboardView{
		Title:           doc.Metadata.Title,
		Subtitle:        doc.Metadata.Subtitle,
		CompletedCount:  prog.Snapshot.CompletedCount,
		TotalSections:   doc.TotalSections,
		Points:          prog.Snapshot.Points,
		ProgressPercent: prog.Snapshot.ProgressPercent,
	}
	if doc.Header != nil {
		dv.ProgressLabel = doc.Header.ProgressLabel
	}

	earned := make(map[string]bool, len(prog.Badges))
	for _, key := range prog.Badges {
		earned[key] = true
	}
	for key, spec := range doc.Badges {
		dv.Badges = append(dv.Badges, BadgeView{
			Key:       key,
			Label:     spec.Label,
			Icon:      spec.Icon,
			Color:     spec.Color,
			Threshold: spec.Threshold,
			Earned:    earned[key],
		})
	}
	sortBadges(dv.Badges)
	return dv
}

// sortBadges orders by threshold, then key, so the dashboard is stable
// across renders despite map iteration.
func sortBadges(badges []BadgeView) {
	for i := 1; i < len(badges); i++ {
		for j := i; j > 0; j-- {
			a, b := badges[j-1], badges[j]
			if a.Threshold < b.Threshold || (a.Threshold == b.Threshold && a.Key <= b.Key) {
				break
			}
			badges[j-1], badges[j] = b, a
		}
	}
}

func sectionHead(sec *lesson.Section) SectionView {
	return SectionView{
		ID:       sec.ID,
		Type:     string(sec.Type),
		Title:    sec.Title,
		Subtitle: sec.Subtitle,
	}
}

func buildIntro(_ *lesson.Document, sec *lesson.Section, _ *State, _ Progress) SectionView {
	sv := sectionHead(sec)
	sv.Paragraphs = richTextAll(sec.Paragraphs)
	return sv
}

func buildNavigation(_ *lesson.Document, sec *lesson.Section, _ *State, _ Progress) SectionView {
	sv := sectionHead(sec)
	sv.NavItems = make([]NavItemView, len(sec.NavItems))
	for i, it := range sec.NavItems {
		sv.NavItems[i] = NavItemView{Label: it.Label, Icon: it.Icon, Target: it.Target, Tab: it.Tab}
	}
	return sv
}

func buildMultimedia(doc *lesson.Document, sec *lesson.Section, _ *State, prog Progress) SectionView {
	sv := sectionHead(sec)
	sv.Media = make([]MediaItemView, len(sec.Media))
	for i, m := range sec.Media {
		completed := prog.Completed[m.ID]
		sv.Media[i] = MediaItemView{
			ID:         m.ID,
			Kind:       string(m.Kind),
			Title:      m.Title,
			Subtitle:   m.Subtitle,
			URL:        m.URL,
			ButtonText: m.ButtonText,
			Completed:  completed,
			ShowNext:   completed && !lesson.IsLastInContainer(doc, m.ID),
		}
	}
	return sv
}

func buildTabs(doc *lesson.Document, sec *lesson.Section, st *State, prog Progress) SectionView {
	sv := sectionHead(sec)
	if len(sec.Tabs) == 0 {
		sv.Tabs = &TabsView{}
		return sv
	}

	active := st.ActiveTabID
	if !tabExists(sec, active) {
		active = sec.Tabs[0].ID
	}

	tv := &TabsView{ActiveTabID: active, Tabs: make([]TabView, len(sec.Tabs))}
	for i, tab := range sec.Tabs {
		view := TabView{ID: tab.ID, Label: tab.Label, Active: tab.ID == active}
		if view.Active {
			view.Content = buildCards(doc, tab.Content, prog)
		}
		tv.Tabs[i] = view
	}
	sv.Tabs = tv
	return sv
}

func tabExists(sec *lesson.Section, id string) bool {
	if id == "" {
		return false
	}
	for _, tab := range sec.Tabs {
		if tab.ID == id {
			return true
		}
	}
	return false
}

func buildExpandable(doc *lesson.Document, sec *lesson.Section, st *State, prog Progress) SectionView {
	sv := sectionHead(sec)
	sv.Expanded = st.ExpandedSectionIDs[sec.ID]
	sv.Cards = buildCards(doc, sec.Cards, prog)
	return sv
}

func buildExercise(_ *lesson.Document, sec *lesson.Section, st *State, prog Progress) SectionView {
	sv := sectionHead(sec)
	if sec.Exercise == nil {
		return sv
	}
	ex := sec.Exercise
	sv.Exercise = &ExerciseView{
		ID:           ex.ID,
		Title:        ex.Title,
		Instructions: ex.Instructions,
		Placeholder:  ex.Placeholder,
		ButtonText:   ex.ButtonText,
		Expanded:     st.ExpandedCardID == ex.ID,
		Completed:    prog.Completed[ex.ID],
	}
	return sv
}

func buildQuiz(_ *lesson.Document, sec *lesson.Section, st *State, _ Progress) SectionView {
	sv := sectionHead(sec)
	qv := &QuizView{
		Questions: make([]QuizQuestionView, len(sec.Questions)),
		Result:    st.QuizResult,
	}
	for i, q := range sec.Questions {
		qv.Questions[i] = QuizQuestionView{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
			Selected: st.QuizAnswers[q.ID],
		}
	}
	sv.Quiz = qv
	return sv
}

func buildFooter(_ *lesson.Document, sec *lesson.Section, _ *State, _ Progress) SectionView {
	sv := sectionHead(sec)
	sv.Links = sec.Links
	sv.Copyright = sec.Copyright
	return sv
}

func buildPlaceholder(sec *lesson.Section) SectionView {
	sv := sectionHead(sec)
	sv.Type = string(lesson.SectionUnknown)
	sv.Placeholder = true
	sv.RawType = sec.RawType
	return sv
}
