package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// session bundles what every game front end needs.
type session struct {
	cfg           config.TetrisConfig
	store         *storage.Store
	highScorePath string
	logger        *log.Logger
	logFile       *os.File
}

// openSession loads config, opens the log file and the run history.
// A database that cannot be opened only disables history.
func openSession() (*session, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}
	s.logger, s.logFile = newLogger(flagLogPath)

	if flagHighScore != "" {
		path, err := storage.ExpandPath(flagHighScore)
		if err != nil {
			return nil, fmt.Errorf("high score path: %w", err)
		}
		s.highScorePath = path
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		s.logger.Warn("run history disabled", "err", err)
	} else {
		s.store = store
	}
	return s, nil
}

func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// newLogger writes to path, or discards everything when path is empty or
// cannot be opened.
func newLogger(path string) (*log.Logger, *os.File) {
	var (
		w    io.Writer = io.Discard
		file *os.File
	)
	if path != "" {
		if expanded, err := storage.ExpandPath(path); err == nil {
			if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err == nil {
				if f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
					w, file = f, f
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, file
}
