package utils

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
)

// ConfigureLogger sets the default fiber logger output and level.
// Debug lines are only emitted outside production.
func ConfigureLogger(production bool) {
	log.SetOutput(os.Stdout)
	if production {
		log.SetLevel(log.LevelInfo)
		return
	}
	log.SetLevel(log.LevelDebug)
}
