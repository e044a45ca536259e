package logger

import "go.uber.org/zap"

// New builds the service logger: production encoding when env is
// "production", developer-friendly console output otherwise.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
