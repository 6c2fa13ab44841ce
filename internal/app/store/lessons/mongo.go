// internal/app/store/lessons/mongo.go
package lessons

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// document is the persisted wrapper for one raw lesson body.
type document struct {
	LessonID  string    `bson:"lesson_id"`
	Body      []byte    `bson:"body"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store serves lesson documents from Mongo.
type Store struct {
	c *mongo.Collection
}

// New creates a Store on the lessons collection.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("lessons")}
}

// EnsureIndexes creates the unique lesson ID index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "lesson_id", Value: 1}},
			Options: options.Index().SetName("idx_lessons_id").SetUnique(true),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Seed upserts every registry document that is not already stored. Existing
// documents are left alone so content edits made in the database survive
// restarts.
func (s *Store) Seed(ctx context.Context, reg *Registry) error {
	for _, id := range reg.IDs() {
		raw, err := reg.Get(ctx, id)
		if err != nil {
			return err
		}

		filter := bson.M{"lesson_id": id}
		update := bson.M{"$setOnInsert": document{
			LessonID:  id,
			Body:      raw,
			UpdatedAt: time.Now().UTC(),
		}}
		opts := options.Update().SetUpsert(true)
		if _, err := s.c.UpdateOne(ctx, filter, update, opts); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the raw document for a lesson ID.
func (s *Store) Get(ctx context.Context, lessonID string) ([]byte, error) {
	var doc document
	err := s.c.FindOne(ctx, bson.M{"lesson_id": lessonID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Body, nil
}
