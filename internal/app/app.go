package app

import (
	"io"
	"log/slog"

	"github.com/vk/cubecount/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. The loader reads the bag file, if one is configured.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
}
