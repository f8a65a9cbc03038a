package main

import (
	"path/filepath"

	"stemsync/internal/config"
)

func buildSocketPath(cfg *config.Config) string {
	if cfg == nil {
		return filepath.Join("", "stemsync.sock")
	}
	return filepath.Join(cfg.Paths.LogDir, "stemsync.sock")
}
