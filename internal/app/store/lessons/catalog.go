// internal/app/store/lessons/catalog.go
package lessons

import (
	"encoding/json"
	"fmt"
	"time"
)

// Catalog is the course structure: which lessons exist, how they group into
// modules and courses, and when each lesson releases.
type Catalog struct {
	Courses []Course `json:"courses"`
}

// Course is one offering. Free courses are playable; paid ones only show in
// the catalog as locked.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Free        bool     `json:"free"`
	Modules     []Module `json:"modules"`
}

// Module groups lessons inside a course.
type Module struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Lessons []LessonSummary `json:"lessons"`
}

// LessonSummary is the catalog entry for one lesson. A nil ReleaseAt means
// available immediately.
type LessonSummary struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	ReleaseAt *time.Time `json:"releaseAt,omitempty"`
}

// LoadCatalog parses the embedded catalog file.
func LoadCatalog() (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/catalog.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &cat, nil
}

// FindCourse returns the course containing the lesson, or nil.
func (c *Catalog) FindCourse(lessonID string) *Course {
	for i := range c.Courses {
		course := &c.Courses[i]
		for _, mod := range course.Modules {
			for _, ls := range mod.Lessons {
				if ls.ID == lessonID {
					return course
				}
			}
		}
	}
	return nil
}

// Neighbors returns the lessons immediately before and after lessonID in
// its course's module order. Either may be nil at the edges, and both are
// nil when the lesson is not in the catalog.
func (c *Catalog) Neighbors(lessonID string) (prev, next *LessonSummary) {
	course := c.FindCourse(lessonID)
	if course == nil {
		return nil, nil
	}

	var flat []LessonSummary
	for _, mod := range course.Modules {
		flat = append(flat, mod.Lessons...)
	}
	for i := range flat {
		if flat[i].ID != lessonID {
			continue
		}
		if i > 0 {
			prev = &flat[i-1]
		}
		if i+1 < len(flat) {
			next = &flat[i+1]
		}
		return prev, next
	}
	return nil, nil
}

// Position returns the index of the lesson within its course (flattened
// across modules) and whether the lesson was found. Index 0 is the first
// lesson, which releases immediately regardless of date.
func (c *Catalog) Position(lessonID string) (int, bool) {
	course := c.FindCourse(lessonID)
	if course == nil {
		return 0, false
	}

	i := 0
	for _, mod := range course.Modules {
		for _, ls := range mod.Lessons {
			if ls.ID == lessonID {
				return i, true
			}
			i++
		}
	}
	return 0, false
}

// Availability is the lock decision for one lesson.
type Availability struct {
	// Known is false when the lesson is not in the catalog at all.
	Known    bool
	Unlocked bool
	// Message explains a lock in learner-facing copy.
	Message string
}

// Availability resolves whether a lesson is playable right now. Lessons in
// paid courses stay locked (there is no purchase flow; the paywall is just
// this flag). In free courses the first lesson is always open and the rest
// unlock at their release date.
func (c *Catalog) Availability(lessonID string, now time.Time) Availability {
	course := c.FindCourse(lessonID)
	if course == nil {
		return Availability{}
	}

	if !course.Free {
		return Availability{
			Known:   true,
			Message: "Disponível apenas para alunos da formação.",
		}
	}

	pos, _ := c.Position(lessonID)
	if pos == 0 {
		return Availability{Known: true, Unlocked: true}
	}

	ls := c.Summary(lessonID)
	if ls.ReleaseAt == nil || !ls.ReleaseAt.After(now) {
		return Availability{Known: true, Unlocked: true}
	}

	rel := *ls.ReleaseAt
	return Availability{
		Known:   true,
		Message: fmt.Sprintf("Dia %02d/%02d %dhs", rel.Day(), int(rel.Month()), rel.Hour()),
	}
}

// Summary returns the catalog entry for the lesson, or nil.
func (c *Catalog) Summary(lessonID string) *LessonSummary {
	for i := range c.Courses {
		for j := range c.Courses[i].Modules {
			mod := &c.Courses[i].Modules[j]
			for k := range mod.Lessons {
				if mod.Lessons[k].ID == lessonID {
					return &mod.Lessons[k]
				}
			}
		}
	}
	return nil
}
