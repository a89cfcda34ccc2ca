package observability

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger derives the process logger from the configured global,
// tags it with the application name, and reinstalls it.
func InitLogger(app string) zerolog.Logger {
	logger := log.With().Str("app", app).Logger()
	log.Logger = logger
	return logger
}
