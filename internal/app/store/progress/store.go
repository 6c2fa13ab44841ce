// internal/app/store/progress/store.go
package progress

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dalemusser/lessonhub/internal/domain/gamify"
)

// Settings is the per-lesson gamification configuration the store needs to
// derive points, percentages and badges. It comes from the normalized
// lesson document.
type Settings struct {
	PointsPerSection int
	TotalSections    int
	BadgeThresholds  map[string]int
}

// Store applies the progress rules on top of a Repository: completion is
// monotonic and idempotent, badges only accrue, and every mutation is
// flushed write-through. Records are cached per learner+lesson; points are
// recomputed from the completed map on first load rather than trusted from
// storage.
type Store struct {
	repo   Repository
	logger *zap.Logger

	mu    sync.Mutex
	cache map[cacheKey]*Record
}

type cacheKey struct {
	learnerID string
	lessonID  string
}

// New creates a Store over the given repository.
func New(repo Repository, logger *zap.Logger) *Store {
	return &Store{
		repo:   repo,
		logger: logger,
		cache:  map[cacheKey]*Record{},
	}
}

func (s *Store) record(ctx context.Context, learnerID, lessonID string, set Settings) (*Record, error) {
	key := cacheKey{learnerID, lessonID}
	if rec, ok := s.cache[key]; ok {
		return rec, nil
	}

	rec, err := s.repo.Load(ctx, learnerID, lessonID)
	if err != nil {
		return nil, err
	}
	rec.Points = rec.CompletedCount() * set.PointsPerSection

	s.cache[key] = &rec
	return &rec, nil
}

// IsCompleted reports whether the item has been completed by the learner.
func (s *Store) IsCompleted(ctx context.Context, learnerID, lessonID, itemID string, set Settings) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.record(ctx, learnerID, lessonID, set)
	if err != nil {
		return false, err
	}
	return rec.Completed[itemID], nil
}

// MarkCompleted sets the item completed. Completion cannot be revoked, and
// re-marking a completed item changes nothing and writes nothing. On a real
// transition the badge set is re-evaluated and the whole record is flushed;
// a flush failure is logged but does not roll back the in-memory state,
// since losing a write is recoverable and blocking the learner is not.
func (s *Store) MarkCompleted(ctx context.Context, learnerID, lessonID, itemID string, set Settings) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.record(ctx, learnerID, lessonID, set)
	if err != nil {
		return Record{}, err
	}
	if rec.Completed[itemID] {
		return *rec, nil
	}

	rec.Completed[itemID] = true
	count := rec.CompletedCount()
	rec.Points = count * set.PointsPerSection
	rec.Badges = gamify.Evaluate(count, set.BadgeThresholds, rec.Badges)

	if err := s.repo.Save(ctx, *rec); err != nil {
		s.logger.Warn("progress flush failed",
			zap.String("learner_id", learnerID),
			zap.String("lesson_id", lessonID),
			zap.Error(err))
	}
	return *rec, nil
}

// Completed returns a copy of the learner's completed-item map.
func (s *Store) Completed(ctx context.Context, learnerID, lessonID string, set Settings) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.record(ctx, learnerID, lessonID, set)
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(rec.Completed))
	for id, done := range rec.Completed {
		out[id] = done
	}
	return out, nil
}

// Snapshot returns the derived progress view for the dashboard.
func (s *Store) Snapshot(ctx context.Context, learnerID, lessonID string, set Settings) (gamify.Snapshot, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.record(ctx, learnerID, lessonID, set)
	if err != nil {
		return gamify.Snapshot{}, nil, err
	}

	snap := gamify.Derive(rec.CompletedCount(), set.PointsPerSection, set.TotalSections)
	badges := make([]string, len(rec.Badges))
	copy(badges, rec.Badges)
	return snap, badges, nil
}
