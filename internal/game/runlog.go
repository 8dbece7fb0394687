package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunLog records statistics for one game, from the first line of the
// monologue to escape or capture.
type RunLog struct {
	ID          uuid.UUID `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Player      string    `json:"player,omitempty"`
	Outcome     string    `json:"outcome"`
	Seed        int64     `json:"seed"`
	MazeWidth   int       `json:"maze_width"`
	MazeHeight  int       `json:"maze_height"`
	Commands    int       `json:"commands"`
	Moves       int       `json:"moves"`
	Blocked     int       `json:"blocked"`
	Invalid     int       `json:"invalid"`
	DurationSec float64   `json:"duration_sec"`
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Errors are logged but never end the game.
func saveRunLog(rl RunLog, logger *slog.Logger) {
	dir, err := runLogDir()
	if err != nil {
		logger.Warn("run log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		logger.Warn("run log: write failed", "error", err)
	}
}

// runLogDir follows the XDG base directory layout:
// $XDG_DATA_HOME/maze-friend, defaulting to ~/.local/share/maze-friend.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "maze-friend"), nil
}
