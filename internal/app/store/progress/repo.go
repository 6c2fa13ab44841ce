// internal/app/store/progress/repo.go
//
// Package progress persists per-learner lesson progress: the completed-item
// map, the earned badge set and the advisory point total. Two Repository
// implementations exist (Mongo for deployments, a file tree for single-node
// setups and tests); Store layers the domain rules on top of either.
package progress

import (
	"context"
	"time"
)

// Record is one learner's progress in one lesson. Points is advisory: it is
// recomputed from Completed on load so a torn write can never leave the
// scalar out of step with the map.
type Record struct {
	LearnerID string          `bson:"learner_id" json:"learnerId"`
	LessonID  string          `bson:"lesson_id" json:"lessonId"`
	Completed map[string]bool `bson:"completed" json:"completed"`
	Badges    []string        `bson:"badges" json:"badges"`
	Points    int             `bson:"points" json:"points"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updatedAt"`
}

// CompletedCount counts the items marked true.
func (r Record) CompletedCount() int {
	n := 0
	for _, done := range r.Completed {
		if done {
			n++
		}
	}
	return n
}

// Repository is the persistence boundary. Load returns a zero-valued record
// (with Completed allocated) when nothing is stored or the stored data no
// longer decodes; missing or corrupt progress is a fresh start. Backend
// failures are errors, never a fresh start, so an outage cannot lead to the
// stored history being overwritten. Save upserts the whole record in one
// write so the three logical values cannot tear.
type Repository interface {
	Load(ctx context.Context, learnerID, lessonID string) (Record, error)
	Save(ctx context.Context, rec Record) error
}

func emptyRecord(learnerID, lessonID string) Record {
	return Record{
		LearnerID: learnerID,
		LessonID:  lessonID,
		Completed: map[string]bool{},
	}
}
