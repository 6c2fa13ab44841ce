// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for LessonHub. They are
// loaded through WAFFLE's config system, so each can come from a config
// file (progress_backend), an environment variable
// (LESSONHUB_PROGRESS_BACKEND), or a flag (--progress_backend).
var appConfigKeys = []config.AppKey{
	{Name: "progress_backend", Default: "mongo", Desc: "Progress persistence backend: 'mongo' or 'file'"},
	{Name: "progress_file_root", Default: "./data/progress", Desc: "Directory for the file progress backend"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "lessonhub", Desc: "MongoDB database name"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Learner cookie signing key (must be strong in production)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL of the player"},
}

// LoadConfig loads WAFFLE core config and app-specific config. It runs
// early in startup so both layers have configuration before any backends
// or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LESSONHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		ProgressBackend:  appValues.String("progress_backend"),
		ProgressFileRoot: appValues.String("progress_file_root"),
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		SessionKey:       appValues.String("session_key"),
		BaseURL:          appValues.String("base_url"),
	}
	return coreCfg, appCfg, nil
}

// ValidateConfig enforces app-level config invariants before any
// connection attempt, so misconfiguration fails fast with a clear message.
func ValidateConfig(_ *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.ProgressBackend {
	case "mongo":
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	case "file":
		if appCfg.ProgressFileRoot == "" {
			return fmt.Errorf("progress_file_root is required with the file backend")
		}
	default:
		return fmt.Errorf("unknown progress_backend %q (want 'mongo' or 'file')", appCfg.ProgressBackend)
	}
	return nil
}
