// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// CORS); AppConfig is everything specific to LessonHub. Values come from
// environment variables (LESSONHUB_*), config files, or flags, loaded in
// LoadConfig.
type AppConfig struct {
	// Progress persistence backend: "mongo" or "file".
	ProgressBackend string
	// ProgressFileRoot is the directory for the file backend.
	ProgressFileRoot string

	// MongoDB connection configuration (used when ProgressBackend is "mongo").
	MongoURI      string
	MongoDatabase string

	// SessionKey signs the anonymous learner cookie.
	SessionKey string

	// BaseURL is the public URL the SPA is served from.
	BaseURL string
}
