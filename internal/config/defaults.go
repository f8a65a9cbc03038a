package config

const (
	defaultLogDir                 = "~/.local/share/stemsync/logs"
	defaultExportDir              = "~/.local/share/stemsync/exports"
	defaultAPIBind                = "127.0.0.1:7496"
	defaultBaseURL                = "http://localhost:7496"
	defaultStartingCredits        = 3
	defaultSeparationCost         = 1
	defaultSeparationDelaySeconds = 3
	defaultPaymentDelaySeconds    = 2
	defaultExportDelaySeconds     = 3
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
			APIBind:   defaultAPIBind,
			BaseURL:   defaultBaseURL,
		},
		Studio: Studio{
			StartingCredits:        defaultStartingCredits,
			SeparationCost:         defaultSeparationCost,
			SeparationDelaySeconds: defaultSeparationDelaySeconds,
			PaymentDelaySeconds:    defaultPaymentDelaySeconds,
			ExportDelaySeconds:     defaultExportDelaySeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
