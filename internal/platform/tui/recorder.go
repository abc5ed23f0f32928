package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fishfeast/internal/games/fishfeast"
	"github.com/vovakirdan/fishfeast/internal/storage"
)

// runRecorder persists the outcome of each run exactly once.
// Persistence is best-effort: failures are logged and play continues.
type runRecorder struct {
	store  *storage.Store
	key    string
	player string
	logger *log.Logger

	started time.Time
	saved   bool
}

// loadBest returns the stored best score, or 0 when absent or unreadable.
func (r *runRecorder) loadBest() int {
	if r.store == nil {
		return 0
	}
	best, err := r.store.LoadBest(r.key)
	if err != nil {
		r.logger.Warn("could not load best score", "key", r.key, "err", err)
		return 0
	}
	return best
}

// begin marks the start of a new run.
func (r *runRecorder) begin() {
	r.started = time.Now()
	r.saved = false
	r.logger.Info("run started", "player", r.player)
}

// finish records a finished run. Calls after the first are ignored until
// the next begin.
func (r *runRecorder) finish(st fishfeast.State) {
	if r.saved || !st.GameOver() {
		return
	}
	r.saved = true

	r.logger.Info("run ended",
		"player", r.player,
		"score", st.Score,
		"best", st.Best,
		"wave", st.Wave,
		"duration", time.Duration(st.ElapsedMS)*time.Millisecond,
	)

	if r.store == nil {
		return
	}
	if err := r.store.SaveBest(r.key, st.Best); err != nil {
		r.logger.Warn("could not save best score", "err", err)
	}
	id, err := r.store.SaveRun(storage.Run{
		Player:     r.player,
		Score:      st.Score,
		Wave:       st.Wave,
		DurationMS: int64(st.ElapsedMS),
	})
	if err != nil {
		r.logger.Warn("could not save run", "err", err)
		return
	}
	r.logger.Debug("run saved", "id", id, "wall", time.Since(r.started).Round(time.Second))
}
