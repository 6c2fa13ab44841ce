// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/lessonhub/internal/domain/lesson"
)

// Startup runs one-time initialization after backends are connected but
// before the HTTP handler is built. LessonHub verifies here that every
// embedded lesson still normalizes, so a bad content edit fails deployment
// instead of a learner's first request.
func Startup(ctx context.Context, _ *config.CoreConfig, _ AppConfig, deps DBDeps, logger *zap.Logger) error {
	for _, id := range deps.Registry.IDs() {
		raw, err := deps.Registry.Get(ctx, id)
		if err != nil {
			return err
		}
		if _, err := lesson.Normalize(raw); err != nil {
			logger.Error("embedded lesson failed normalization",
				zap.String("lesson_id", id), zap.Error(err))
			return err
		}
	}
	logger.Info("lesson content verified", zap.Int("lessons", len(deps.Registry.IDs())))
	return nil
}
