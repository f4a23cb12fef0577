package tableaux

import (
	"github.com/rs/zerolog"

	"github.com/alethic/tableaux/internal/infrastructure/logger"
)

// SetLogLevel installs level ("debug", "info", "warn", "error") as the
// package's global zerolog level. Tableaux built after this call log
// rule applications and lifecycle transitions at the new level.
func SetLogLevel(level string) {
	logger.Setup(level)
}

// DisableLogging silences the engine's structured logging entirely.
func DisableLogging() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}
