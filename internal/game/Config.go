package game

import (
	"os"
	"time"
)

const (
	GridColCount = 24
	GridRowCount = 18

	TickInterval = 120 * time.Millisecond

	InitialSnakeLength = 3

	// foodPlacementAttempts bounds the random-draw phase before food
	// placement falls back to a full-grid scan.
	foodPlacementAttempts = 500
)

// EnvOr returns the environment variable named by key, or fallback when
// the variable is not set.
func EnvOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
