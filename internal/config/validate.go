package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateStudio(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.APIBind) == "" {
		return errors.New("paths.api_bind must be set")
	}
	parsed, err := url.Parse(c.Paths.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("paths.base_url must be an absolute URL, got %q", c.Paths.BaseURL)
	}
	return nil
}

func (c *Config) validateStudio() error {
	if c.Studio.SeparationCost < 1 {
		return errors.New("studio.separation_cost must be at least 1")
	}
	if c.Studio.SeparationDelaySeconds < 0 {
		return errors.New("studio.separation_delay_seconds must not be negative")
	}
	if c.Studio.PaymentDelaySeconds < 0 {
		return errors.New("studio.payment_delay_seconds must not be negative")
	}
	if c.Studio.ExportDelaySeconds < 0 {
		return errors.New("studio.export_delay_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
