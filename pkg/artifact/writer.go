// Package artifact writes the per-run output directory: the preflight
// plan, the execution trace, router metrics, and the meta report. All
// writes within a run are append-only and serialized, so the trace is
// globally ordered by the run's clock.
package artifact

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/version"
)

// Trace event names, one per execution_trace.ndjson line.
const (
	EventRunStarted          = "run_started"
	EventPlanEmitted         = "plan_emitted"
	EventStepStarted         = "step_started"
	EventRouteDecision       = "route_decision"
	EventStepCompleted       = "step_completed"
	EventStepFailed          = "step_failed"
	EventRetryScheduled      = "retry_scheduled"
	EventTerminatorTriggered = "terminator_triggered"
	EventRunCompleted        = "run_completed"
	EventRunFailed           = "run_failed"
	EventRunTerminated       = "run_terminated"
)

// Artifact file names within a run directory.
const (
	FilePlan          = "preflight_plan.json"
	FileTrace         = "execution_trace.ndjson"
	FileRouterMetrics = "router_metrics.json"
	FileMetaReport    = "meta_report.md"
)

// allowedFiles guards the read side against path traversal.
var allowedFiles = map[string]struct{}{
	FilePlan:          {},
	FileTrace:         {},
	FileRouterMetrics: {},
	FileMetaReport:    {},
}

// Event is one trace record. Seq and ElapsedMs are filled by the writer;
// field order fixes the marshaled key order, which keeps artifacts
// byte-identical under fixed inputs.
type Event struct {
	Seq        int64   `json:"seq"`
	ElapsedMs  int64   `json:"elapsed_ms"`
	Event      string  `json:"event"`
	StepID     int     `json:"step_id,omitempty"`
	Role       string  `json:"role,omitempty"`
	Attempt    int     `json:"attempt,omitempty"`
	FromCache  bool    `json:"from_cache,omitempty"`
	Tokens     int     `json:"tokens,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	Error      string  `json:"error,omitempty"`
	Detail     string  `json:"detail,omitempty"`
}

// Manager creates and reads run directories under the artifact root.
type Manager struct {
	baseDir string
	clk     clock.Clock
}

// NewManager creates a manager rooted at baseDir.
func NewManager(baseDir string, clk clock.Clock) *Manager {
	return &Manager{baseDir: baseDir, clk: clk}
}

// RunDir returns the directory path for a run.
func (m *Manager) RunDir(runID string) string {
	return filepath.Join(m.baseDir, "runs", runID)
}

// ForRun creates the run directory and returns its writer.
func (m *Manager) ForRun(runID string) (*Writer, error) {
	dir := m.RunDir(runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create run directory: %w", err)
	}
	return &Writer{dir: dir, clk: m.clk, started: m.clk.Now()}, nil
}

// Open returns a reader over one named artifact of a run. Only the four
// known artifact names are served.
func (m *Manager) Open(runID, name string) (io.ReadCloser, error) {
	if _, ok := allowedFiles[name]; !ok {
		return nil, fmt.Errorf("unknown artifact %q", name)
	}
	return os.Open(filepath.Join(m.RunDir(runID), name))
}

// Writer emits one run's artifacts. Safe for concurrent use; every write
// goes through the writer lock so trace lines never interleave.
type Writer struct {
	dir     string
	clk     clock.Clock
	started time.Time

	mu     sync.Mutex
	trace  *os.File
	seq    int64
	closed bool
}

// WritePlan writes preflight_plan.json once, before execution begins.
func (w *Writer) WritePlan(plan any) error {
	return w.writeJSON(FilePlan, plan)
}

// WriteRouterMetrics writes router_metrics.json at finalization.
func (w *Writer) WriteRouterMetrics(v any) error {
	return w.writeJSON(FileRouterMetrics, v)
}

func (w *Writer) writeJSON(name string, v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	encoded = append(encoded, '\n')
	if err := os.WriteFile(filepath.Join(w.dir, name), encoded, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Append writes one trace event. The writer assigns the sequence number
// and elapsed time; a closed trace rejects further events.
func (w *Writer) Append(event Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("trace for %s is closed", filepath.Base(w.dir))
	}
	if w.trace == nil {
		f, err := os.OpenFile(filepath.Join(w.dir, FileTrace),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		w.trace = f
	}

	w.seq++
	event.Seq = w.seq
	event.ElapsedMs = w.clk.Now().Sub(w.started).Milliseconds()

	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode trace event: %w", err)
	}
	line = append(line, '\n')
	if _, err := w.trace.Write(line); err != nil {
		return fmt.Errorf("append trace event: %w", err)
	}
	return nil
}

// WriteMetaReport writes meta_report.md with the provenance footer.
func (w *Writer) WriteMetaReport(body, runID, correlationID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	report := body + "\n\n---\n" + provenanceFooter(runID, correlationID)
	if err := os.WriteFile(filepath.Join(w.dir, FileMetaReport), []byte(report), 0o644); err != nil {
		return fmt.Errorf("write meta report: %w", err)
	}
	return nil
}

func provenanceFooter(runID, correlationID string) string {
	return fmt.Sprintf("Run-ID: %s\nCorrelation-ID: %s\nAgent: %s\nProvenance: orchestrated\n",
		runID, correlationID, version.Full())
}

// Close flushes and closes the trace. Further Append calls fail.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	if w.trace == nil {
		return nil
	}
	err := w.trace.Close()
	w.trace = nil
	return err
}
