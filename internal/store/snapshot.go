package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/masterbook/internal/metrics"
	"github.com/mmynk/masterbook/internal/storage"
)

// snapshotWriter writes a whole collection under one key after every mutation.
// A nil *snapshotWriter is valid and does nothing, which is how volatile
// stores opt out of persistence.
type snapshotWriter struct {
	kv      storage.KV
	key     string
	logger  *slog.Logger
	metrics metrics.Recorder
	timeout time.Duration

	// seq is guarded by the owning store's mutex.
	seq uint64

	mu      sync.Mutex
	written uint64
	wg      sync.WaitGroup
}

func newSnapshotWriter(kv storage.KV, key string, o options) *snapshotWriter {
	if kv == nil {
		return nil
	}
	return &snapshotWriter{
		kv:      kv,
		key:     key,
		logger:  o.logger.With("key", key),
		metrics: o.metrics,
		timeout: o.writeTimeout,
	}
}

// load decodes the stored snapshot into dst. It returns false when nothing
// usable was stored; the reason is logged and never returned.
func (w *snapshotWriter) load(ctx context.Context, dst any) bool {
	if w == nil {
		return false
	}

	raw, ok, err := w.kv.Get(ctx, w.key)
	if err != nil {
		w.logger.Warn("Snapshot load failed, starting empty", "error", err)
		w.metrics.RecordLoad(w.key, metrics.LoadFailed)
		return false
	}
	if !ok || raw == "" {
		w.metrics.RecordLoad(w.key, metrics.LoadEmpty)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		w.logger.Warn("Snapshot is malformed, starting empty", "error", err, "bytes", len(raw))
		w.metrics.RecordLoad(w.key, metrics.LoadCorrupt)
		return false
	}

	w.metrics.RecordLoad(w.key, metrics.LoadOK)
	return true
}

// save serializes v and writes it in the background.
// Callers must hold the owning store's lock so that seq follows mutation order.
func (w *snapshotWriter) save(v any) {
	if w == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		w.logger.Error("Snapshot encode failed", "error", err)
		return
	}

	w.seq++
	seq := w.seq
	w.wg.Add(1)
	go w.write(seq, data)
}

func (w *snapshotWriter) write(seq uint64, data []byte) {
	defer w.wg.Done()

	w.mu.Lock()
	defer w.mu.Unlock()

	// A newer snapshot already landed; writing this one would roll it back.
	if seq <= w.written {
		w.logger.Debug("Skipping superseded snapshot", "seq", seq, "written", w.written)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	start := time.Now()
	err := w.kv.Set(ctx, w.key, string(data))
	w.metrics.RecordWrite(w.key, err, time.Since(start))
	if err != nil {
		w.logger.Warn("Snapshot write failed", "error", err, "seq", seq)
		return
	}
	w.written = seq
}

// flush blocks until every scheduled write has finished.
func (w *snapshotWriter) flush() {
	if w == nil {
		return
	}
	w.wg.Wait()
}
