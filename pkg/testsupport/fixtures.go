// Package testsupport provides fixture and logging helpers shared by the
// package-level tests.
package testsupport

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/goliatone/go-docnorm/pkg/component"
)

// LoadDoc reads a JSON fixture into a documentation record. Testing helpers
// fail fast to keep contract tests concise.
func LoadDoc(t *testing.T, path string) *component.Doc {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return DecodeDoc(t, data)
}

// DecodeDoc unmarshals a JSON payload into a documentation record.
func DecodeDoc(t *testing.T, data []byte) *component.Doc {
	t.Helper()

	var doc component.Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &doc
}

// WarnRecorder captures warning records so tests can assert on emitted
// warnings without parsing formatted output.
type WarnRecorder struct {
	mu      sync.Mutex
	records []slog.Record
}

// NewWarnLogger returns a logger whose records are captured by the recorder.
func NewWarnLogger() (*slog.Logger, *WarnRecorder) {
	rec := &WarnRecorder{}
	return slog.New(rec), rec
}

// Messages returns the captured record messages in emission order.
func (r *WarnRecorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record.Message)
	}
	return out
}

// Attrs returns the attributes of the i-th captured record as a map.
func (r *WarnRecorder) Attrs(i int) map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i < 0 || i >= len(r.records) {
		return nil
	}
	attrs := map[string]string{}
	r.records[i].Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	return attrs
}

// Len reports how many records were captured.
func (r *WarnRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Enabled implements slog.Handler.
func (r *WarnRecorder) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (r *WarnRecorder) Handle(_ context.Context, record slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record.Clone())
	return nil
}

// WithAttrs implements slog.Handler; attribute scoping is not needed here.
func (r *WarnRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }

// WithGroup implements slog.Handler; grouping is not needed here.
func (r *WarnRecorder) WithGroup(string) slog.Handler { return r }
