package config

const (
	defaultDataDir      = "~/.local/share/matcompat"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultOutputFormat = "table"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}
