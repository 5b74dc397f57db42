package config

import "log/slog"

// Config do cliente de terminal. Sem timeout de requisição: falhas de
// transporte são o único sinal, como no cliente original.
type CLIConfig struct {
	APIBase  string
	LogLevel slog.Level
}

func LoadCLIConfig() *CLIConfig {
	return &CLIConfig{
		APIBase:  getenvAny("http://localhost:8080", "API_BASE", "LICITAFACIL_API"),
		LogLevel: parseLevel(getenv("LOG_LEVEL", "warn")),
	}
}
