// Package logger builds the zap logger shared by the CLI and the game.
package logger

import "go.uber.org/zap"

// New returns a console-friendly zap logger. debug lowers the level
// and switches to the development encoder.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
