package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:                   "127.0.0.1",
			Port:                   5001,
			AllowedOrigins:         []string{"http://localhost:5173"},
			MaxRequestSize:         1 << 20,
			ShutdownTimeoutSeconds: 10,
		},
		Database: DatabaseConfig{
			Path: "./feedback.db",
		},
		Grouping: GroupingConfig{
			URL:            "http://127.0.0.1:8000/",
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
