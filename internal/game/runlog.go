package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// SessionLog records statistics gathered during one session. It holds no
// inventory state; nothing in it is read back.
type SessionLog struct {
	Player    string    `json:"player,omitempty"`
	Started   time.Time `json:"started"`
	Ended     time.Time `json:"ended"`
	GridSize  string    `json:"grid"`
	Moves     int       `json:"moves"`
	Grabs     int       `json:"grabs"`
	Drops     int       `json:"drops"`
	Rotations int       `json:"rotations"`
	Blocked   int       `json:"blocked_drops"`
	Excluded  []string  `json:"excluded,omitempty"`
}

// saveSessionLog appends the session as a single JSON line to sessions.jsonl.
// Errors are logged but never end the session.
func saveSessionLog(sl SessionLog, logger *slog.Logger) {
	dir, err := sessionLogDir()
	if err != nil {
		logger.Warn("session log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("session log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "sessions.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("session log: cannot open file", "error", err)
		return
	}
	defer f.Close()

	data, err := json.Marshal(sl)
	if err != nil {
		logger.Warn("session log: cannot marshal JSON", "error", err)
		return
	}
	f.Write(append(data, '\n')) //nolint:errcheck
}

// sessionLogDir returns the directory where session logs are stored:
// $XDG_DATA_HOME/grid-inventory, defaulting to ~/.local/share/grid-inventory.
func sessionLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "grid-inventory"), nil
}
