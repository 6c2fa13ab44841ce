// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/dalemusser/lessonhub/internal/app/store/lessons"
	"github.com/dalemusser/lessonhub/internal/app/store/progress"
)

// ConnectDB builds the backend dependency set: the embedded lesson registry
// and catalog always, plus a Mongo connection when that backend is
// configured. With the file backend the service has no external
// dependencies at all.
func ConnectDB(ctx context.Context, _ *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	registry, err := lessons.LoadEmbedded()
	if err != nil {
		return DBDeps{}, fmt.Errorf("load embedded lessons: %w", err)
	}
	catalog, err := lessons.LoadCatalog()
	if err != nil {
		return DBDeps{}, fmt.Errorf("load catalog: %w", err)
	}

	deps := DBDeps{
		Registry: registry,
		Catalog:  catalog,
		Lessons:  registry,
	}

	if appCfg.ProgressBackend == "file" {
		repo, err := progress.NewFile(appCfg.ProgressFileRoot)
		if err != nil {
			return DBDeps{}, err
		}
		deps.Progress = repo
		logger.Info("using file progress backend", zap.String("root", appCfg.ProgressFileRoot))
		return deps, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	deps.MongoClient = client
	deps.MongoDatabase = db
	deps.Progress = progress.NewMongo(db)
	deps.Lessons = lessons.New(db)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))
	return deps, nil
}

// EnsureSchema creates indexes and seeds the lesson collection from the
// embedded documents. A no-op with the file backend.
func EnsureSchema(ctx context.Context, _ *config.CoreConfig, _ AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	lessonStore := lessons.New(deps.MongoDatabase)
	if err := lessonStore.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("lesson indexes: %w", err)
	}
	if err := lessonStore.Seed(ctx, deps.Registry); err != nil {
		return fmt.Errorf("seed lessons: %w", err)
	}

	progressRepo := progress.NewMongo(deps.MongoDatabase)
	if err := progressRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("progress indexes: %w", err)
	}

	logger.Info("schema ensured", zap.Int("embedded_lessons", len(deps.Registry.IDs())))
	return nil
}
