// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	catalogfeature "github.com/dalemusser/lessonhub/internal/app/features/catalog"
	healthfeature "github.com/dalemusser/lessonhub/internal/app/features/health"
	playfeature "github.com/dalemusser/lessonhub/internal/app/features/play"
	"github.com/dalemusser/lessonhub/internal/app/store/progress"
	"github.com/dalemusser/lessonhub/internal/app/system/session"
)

// BuildHandler constructs the root HTTP handler. WAFFLE calls this after
// config, DB connections, schema setup and Startup have completed.
//
// LessonHub mounts the JSON API (player, catalog, health) behind the
// learner-session middleware and serves the SPA bundle as static assets.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := session.NewManager(appCfg.SessionKey, secure)
	if err != nil {
		return nil, err
	}

	progressStore := progress.New(deps.Progress, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// The SPA bundle, with pre-compressed file support (gzip/brotli).
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Every API route carries a learner identity.
	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.WithLearner)

		playHandler := playfeature.NewHandler(deps.Lessons, deps.Catalog, progressStore, logger)
		r.Mount("/lessons", playfeature.Routes(playHandler))

		catalogHandler := catalogfeature.NewHandler(deps.Catalog, logger)
		r.Mount("/catalog", catalogfeature.Routes(catalogHandler))
	})

	return r, nil
}
