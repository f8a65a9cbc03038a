package main

import (
	"path/filepath"
	"testing"

	"stemsync/internal/config"
)

func TestBuildSocketPath(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = "/var/log/stemsync"
	if got := buildSocketPath(&cfg); got != filepath.Join("/var/log/stemsync", "stemsync.sock") {
		t.Fatalf("unexpected socket path %q", got)
	}
	if got := buildSocketPath(nil); got != "stemsync.sock" {
		t.Fatalf("unexpected fallback socket path %q", got)
	}
}
