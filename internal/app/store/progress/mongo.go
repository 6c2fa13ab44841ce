// internal/app/store/progress/mongo.go
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores one progress document per learner+lesson pair.
type MongoRepository struct {
	c *mongo.Collection
}

// NewMongo creates a MongoRepository on the progress collection.
func NewMongo(db *mongo.Database) *MongoRepository {
	return &MongoRepository{c: db.Collection("progress")}
}

// EnsureIndexes creates the unique learner+lesson index the upsert relies on.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "learner_id", Value: 1}, {Key: "lesson_id", Value: 1}},
			Options: options.Index().SetName("idx_progress_learner_lesson").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "updated_at", Value: -1}},
			Options: options.Index().SetName("idx_progress_updated"),
		},
	}
	_, err := r.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Load fetches the record for a learner+lesson pair. No stored document, or
// one that no longer decodes as a Record, yields an empty record. Query and
// transport failures propagate: an unreachable server must never read as a
// fresh start, or the next write-through would clobber the stored history.
func (r *MongoRepository) Load(ctx context.Context, learnerID, lessonID string) (Record, error) {
	filter := bson.M{"learner_id": learnerID, "lesson_id": lessonID}

	res := r.c.FindOne(ctx, filter)
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return emptyRecord(learnerID, lessonID), nil
		}
		return Record{}, fmt.Errorf("load progress: %w", err)
	}

	var rec Record
	if err := res.Decode(&rec); err != nil {
		return emptyRecord(learnerID, lessonID), nil
	}
	if rec.Completed == nil {
		rec.Completed = map[string]bool{}
	}
	return rec, nil
}

// Save upserts the whole record in a single write.
func (r *MongoRepository) Save(ctx context.Context, rec Record) error {
	rec.UpdatedAt = time.Now().UTC()

	filter := bson.M{"learner_id": rec.LearnerID, "lesson_id": rec.LessonID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.c.ReplaceOne(ctx, filter, rec, opts)
	return err
}
