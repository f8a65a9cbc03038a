package testsupport

import (
	"path/filepath"
	"testing"

	"stemsync/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test
// and zeroed simulation delays so workflows complete immediately.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ExportDir = filepath.Join(base, "exports")
	cfg.Paths.APIBind = "127.0.0.1:0"
	cfg.Studio.SeparationDelaySeconds = 0
	cfg.Studio.PaymentDelaySeconds = 0
	cfg.Studio.ExportDelaySeconds = 0

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithStartingCredits overrides the seeded ledger balance on the test config.
func WithStartingCredits(credits int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Studio.StartingCredits = credits
	}
}

// WithoutAPI disables the HTTP surface on the test config.
func WithoutAPI() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.APIBind = ""
	}
}
