package storage

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Recorder persists the outcome of finished games for a frontend.
// Failures are logged and otherwise ignored so play is never interrupted.
type Recorder struct {
	store     *Store
	scorePath string
	logger    *log.Logger
}

// NewRecorder returns a recorder. store may be nil and scorePath empty, in
// which case the corresponding output is skipped.
func NewRecorder(store *Store, scorePath string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, scorePath: scorePath, logger: logger}
}

// Store returns the run history store, which may be nil.
func (r *Recorder) Store() *Store {
	return r.store
}

// LoadHighScore reads the persisted best score.
func (r *Recorder) LoadHighScore() int {
	if r.scorePath == "" {
		return 0
	}
	return LoadHighScore(r.scorePath)
}

// RunFinished adds a run with a positive score to the history.
// It returns the new run id, or "" if nothing was stored.
func (r *Recorder) RunFinished(res RunResult) string {
	r.logger.Info("game over", "score", res.Score, "lines", res.Lines, "level", res.Level,
		"duration", res.Duration.Round(time.Second))
	if r.store == nil || res.Score <= 0 {
		return ""
	}
	runID, err := r.store.SaveRun(res)
	if err != nil {
		r.logger.Warn("could not record run", "error", err)
		return ""
	}
	r.logger.Debug("run recorded", "run_id", runID)
	return runID
}

// NewHighScore writes score to the high score file.
func (r *Recorder) NewHighScore(score int) {
	r.logger.Info("new high score", "score", score)
	if r.scorePath == "" {
		return
	}
	if err := SaveHighScore(r.scorePath, score); err != nil {
		r.logger.Warn("could not save high score", "path", r.scorePath, "error", err)
	}
}
