package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
)

// AutoSaver writes the latest document snapshot to the store on a fixed
// interval. A save-mutex guarantees at most one in-flight save: ticks that
// land while a save is still running are dropped, not queued, so two saves
// can never race each other in this process. Unsaved documents (no record
// id) are never auto-saved; callers only start Run once an id exists.
type AutoSaver struct {
	repo     Repo
	interval time.Duration
	mu       sync.Mutex
}

// DefaultInterval matches the editor's save cadence.
const DefaultInterval = 5 * time.Second

func NewAutoSaver(repo Repo, interval time.Duration) *AutoSaver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &AutoSaver{repo: repo, interval: interval}
}

// Run ticks until ctx is cancelled, calling snapshot for the current
// document state on each tick. Save failures are logged and do not stop the
// loop; the next tick retries with a fresh snapshot.
func (a *AutoSaver) Run(ctx context.Context, id uuid.UUID, snapshot func() *model.ResumeDocument) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !a.mu.TryLock() {
				slog.Debug("auto-save skipped, previous save still in flight", "resume_id", id)
				continue
			}
			go func(doc *model.ResumeDocument) {
				defer a.mu.Unlock()
				if _, err := a.repo.Update(ctx, id, doc, ""); err != nil {
					slog.Warn("auto-save failed", "resume_id", id, "error", err)
				}
			}(snapshot())
		}
	}
}

// SaveNow performs one immediate save under the same save-mutex, blocking
// until it completes. Used for explicit save actions.
func (a *AutoSaver) SaveNow(ctx context.Context, id uuid.UUID, doc *model.ResumeDocument) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, err := a.repo.Update(ctx, id, doc, "")
	return err
}
