// Package checklog appends one JSON line per completed check to an audit
// log. The log is strictly advisory: every failure path returns an error
// for the caller to log and ignore, and the engine never reads it back.
package checklog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leapstack-labs/scafflint/pkg/lint"
)

// Entry is one persisted check record.
type Entry struct {
	ID           string    `json:"id"`
	Time         time.Time `json:"time"`
	File         string    `json:"file"`
	RelPath      string    `json:"rel_path"`
	Phase        string    `json:"phase"`
	Category     string    `json:"category"`
	RuleCount    int       `json:"rule_count"`
	ErrorCount   int       `json:"error_count"`
	MessageCount int       `json:"message_count"`
	DurationMS   float64   `json:"duration_ms"`
}

// Log appends entries to a JSONL file. Safe for concurrent use.
type Log struct {
	mu   sync.Mutex
	path string
}

// Open returns a log writing to path. The file and its directory are
// created lazily on first append.
func Open(path string) *Log {
	return &Log{path: path}
}

// Record implements lint.Recorder.
func (l *Log) Record(rec lint.CheckRecord) error {
	entry := Entry{
		ID:           uuid.NewString(),
		Time:         time.Now().UTC(),
		File:         rec.FilePath,
		RelPath:      rec.RelPath,
		Phase:        rec.Phase.String(),
		Category:     rec.Category.String(),
		RuleCount:    rec.RuleCount,
		ErrorCount:   rec.ErrorCount,
		MessageCount: rec.MessageCount,
		DurationMS:   float64(rec.Duration.Microseconds()) / 1000.0,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode check entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open check log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append check log: %w", err)
	}
	return nil
}
