// internal/domain/lesson/flatten.go
package lesson

// IntroContainer is the synthetic container ID assigned to multimedia items
// in the flatten order. Tab containers use the tab's own ID.
const IntroContainer = "intro"

// FlatItem is one completable item in the canonical traversal order.
type FlatItem struct {
	ID        string
	Container string
}

// Flatten walks the document in declaration order and returns every
// completable item: multimedia items first (under the synthetic intro
// container), then each tab's completable cards tab by tab, then the
// exercise card. The result is the single source of truth for "what comes
// next" and for last-in-container checks, so it must be deterministic and
// stable for an unchanged document.
func Flatten(doc *Document) []FlatItem {
	var items []FlatItem
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		switch sec.Type {
		case SectionMultimedia:
			for _, m := range sec.Media {
				if m.ID != "" {
					items = append(items, FlatItem{ID: m.ID, Container: IntroContainer})
				}
			}
		case SectionTabs:
			for _, tab := range sec.Tabs {
				for _, c := range tab.Content {
					if completableCard(c) {
						items = append(items, FlatItem{ID: c.ID, Container: tab.ID})
					}
				}
			}
		case SectionExpandable:
			for _, c := range sec.Cards {
				if completableCard(c) {
					items = append(items, FlatItem{ID: c.ID, Container: sec.ID})
				}
			}
		case SectionExercise:
			if sec.Exercise != nil && sec.Exercise.ID != "" {
				items = append(items, FlatItem{ID: sec.Exercise.ID, Container: sec.ID})
			}
		}
	}
	return items
}

// completableCard reports whether a card participates in completion
// tracking. Unknown cards render as placeholders and are never completable.
func completableCard(c Card) bool {
	return c.ID != "" && c.Type != CardUnknown
}

// Next returns the flat item after currentID. ok is false when currentID is
// the last item or does not appear in the flatten order at all.
func Next(doc *Document, currentID string) (FlatItem, bool) {
	items := Flatten(doc)
	for i, it := range items {
		if it.ID == currentID {
			if i+1 < len(items) {
				return items[i+1], true
			}
			return FlatItem{}, false
		}
	}
	return FlatItem{}, false
}

// IsLastInContainer reports whether id is the final completable item of its
// container in the flatten order. Items not in the order report true so the
// renderer never offers a "next" affordance it cannot honor.
func IsLastInContainer(doc *Document, id string) bool {
	items := Flatten(doc)
	for i, it := range items {
		if it.ID != id {
			continue
		}
		for _, later := range items[i+1:] {
			if later.Container == it.Container {
				return false
			}
		}
		return true
	}
	return true
}

// TabOf returns the ID of the tab containing id, or "" when id does not live
// inside a tabs section. Used when a cross-container jump must switch the
// active tab before the target can be focused.
func TabOf(doc *Document, id string) string {
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		if sec.Type != SectionTabs {
			continue
		}
		for _, tab := range sec.Tabs {
			for _, c := range tab.Content {
				if c.ID == id {
					return tab.ID
				}
			}
		}
	}
	return ""
}
