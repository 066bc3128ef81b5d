package snapshot

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Writer performs best-effort write-through for a single named snapshot.
// Saves run off the caller's goroutine with their own timeout; the caller's
// in-memory state is already correct by the time Write is invoked, so a
// failed save is logged and dropped rather than propagated.
type Writer struct {
	store   Store
	name    string
	timeout time.Duration
	log     *zap.Logger

	wg      sync.WaitGroup
	version atomic.Uint64

	mu    sync.Mutex // serializes saves
	saved uint64
}

func NewWriter(store Store, name string, timeout time.Duration, log *zap.Logger) *Writer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Writer{
		store:   store,
		name:    name,
		timeout: timeout,
		log:     log,
	}
}

// Write schedules data to be saved. Writes are versioned so that a slow
// earlier save can never overwrite a later snapshot.
func (w *Writer) Write(data []byte) {
	v := w.version.Add(1)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.save(v, data)
	}()
}

func (w *Writer) save(v uint64, data []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if v <= w.saved {
		// A newer snapshot already made it out.
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.store.Save(ctx, w.name, data); err != nil {
		w.log.Warn("snapshot save failed",
			zap.String("name", w.name),
			zap.Error(err))
		return
	}
	w.saved = v
}

// Flush blocks until every scheduled write has completed or failed.
// Used on shutdown and in tests.
func (w *Writer) Flush() {
	w.wg.Wait()
}
