// Package config loads, normalizes, and validates Stemsync configuration.
//
// Configuration lives in a TOML file (default ~/.config/stemsync/config.toml)
// and is decoded over repository defaults, so a missing file yields a fully
// usable configuration. Paths are expanded to absolute form during
// normalization and validation rejects values the studio cannot run with.
package config
