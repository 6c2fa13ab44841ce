// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/lessonhub/internal/app/store/lessons"
	"github.com/dalemusser/lessonhub/internal/app/store/progress"
)

// DBDeps holds the backends the app runs on. The Mongo fields are nil when
// the file backend is configured; everything downstream goes through the
// interfaces, so handlers never care which backend is live.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Lessons  lessons.Provider
	Registry *lessons.Registry
	Catalog  *lessons.Catalog
	Progress progress.Repository
}
