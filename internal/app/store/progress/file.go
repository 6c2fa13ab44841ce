// internal/app/store/progress/file.go
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileRepository keeps one JSON file per learner+lesson pair under a root
// directory. It serves single-node deployments and tests; writes go through
// a temp file and rename so a crash mid-write leaves either the old record
// or the new one, never a torn file.
type FileRepository struct {
	root string
}

// NewFile creates the root directory if needed.
func NewFile(root string) (*FileRepository, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("progress root: %w", err)
	}
	return &FileRepository{root: root}, nil
}

func (r *FileRepository) path(learnerID, lessonID string) string {
	return filepath.Join(r.root, learnerID+"__"+lessonID+".json")
}

// Load reads the record for a learner+lesson pair. A missing file or
// unparseable content yields an empty record; any other read failure (a
// permission problem, say) propagates rather than posing as a fresh start.
func (r *FileRepository) Load(_ context.Context, learnerID, lessonID string) (Record, error) {
	data, err := os.ReadFile(r.path(learnerID, lessonID))
	if errors.Is(err, os.ErrNotExist) {
		return emptyRecord(learnerID, lessonID), nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("read progress: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return emptyRecord(learnerID, lessonID), nil
	}
	if rec.Completed == nil {
		rec.Completed = map[string]bool{}
	}
	rec.LearnerID = learnerID
	rec.LessonID = lessonID
	return rec, nil
}

// Save writes the record atomically via rename.
func (r *FileRepository) Save(_ context.Context, rec Record) error {
	rec.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	final := r.path(rec.LearnerID, rec.LessonID)
	tmp, err := os.CreateTemp(r.root, ".progress-*")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close progress: %w", err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename progress: %w", err)
	}
	return nil
}
