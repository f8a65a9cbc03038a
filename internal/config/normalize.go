package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeStudio()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = defaultExportDir
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.APIBind) == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	if env, ok := os.LookupEnv("STEMSYNC_BASE_URL"); ok && strings.TrimSpace(env) != "" {
		c.Paths.BaseURL = env
	}
	c.Paths.BaseURL = strings.TrimRight(strings.TrimSpace(c.Paths.BaseURL), "/")
	if c.Paths.BaseURL == "" {
		c.Paths.BaseURL = defaultBaseURL
	}
	return nil
}

func (c *Config) normalizeStudio() {
	if c.Studio.StartingCredits < 0 {
		c.Studio.StartingCredits = 0
	}
	if c.Studio.SeparationCost == 0 {
		c.Studio.SeparationCost = defaultSeparationCost
	}
	if c.Studio.SeparationDelaySeconds == 0 {
		c.Studio.SeparationDelaySeconds = defaultSeparationDelaySeconds
	}
	if c.Studio.PaymentDelaySeconds == 0 {
		c.Studio.PaymentDelaySeconds = defaultPaymentDelaySeconds
	}
	if c.Studio.ExportDelaySeconds == 0 {
		c.Studio.ExportDelaySeconds = defaultExportDelaySeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
