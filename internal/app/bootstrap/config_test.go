package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func TestValidateConfig_FileBackend(t *testing.T) {
	cfg := AppConfig{ProgressBackend: "file", ProgressFileRoot: "./data/progress"}
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig failed: %v", err)
	}
}

func TestValidateConfig_FileBackendNeedsRoot(t *testing.T) {
	cfg := AppConfig{ProgressBackend: "file"}
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty progress_file_root")
	}
}

func TestValidateConfig_UnknownBackend(t *testing.T) {
	cfg := AppConfig{ProgressBackend: "cassandra"}
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
