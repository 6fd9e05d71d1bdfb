package artifact

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/pkg/clock"
)

func newManager(t *testing.T) (*Manager, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	return NewManager(t.TempDir(), clk), clk
}

func TestWriter_PlanAndTrace(t *testing.T) {
	m, clk := newManager(t)
	w, err := m.ForRun("run-1")
	require.NoError(t, err)

	require.NoError(t, w.WritePlan(map[string]any{"strategy": "decomposed"}))

	require.NoError(t, w.Append(Event{Event: EventRunStarted}))
	clk.Advance(50 * time.Millisecond)
	require.NoError(t, w.Append(Event{Event: EventStepStarted, StepID: 1, Role: "analyst"}))
	clk.Advance(100 * time.Millisecond)
	require.NoError(t, w.Append(Event{Event: EventStepCompleted, StepID: 1, Tokens: 120}))
	require.NoError(t, w.Close())

	f, err := m.Open("run-1", FileTrace)
	require.NoError(t, err)
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ev Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}
	require.Len(t, events, 3)

	// Sequence and elapsed time are monotone.
	assert.Equal(t, int64(1), events[0].Seq)
	assert.Equal(t, int64(3), events[2].Seq)
	assert.Equal(t, int64(0), events[0].ElapsedMs)
	assert.Equal(t, int64(50), events[1].ElapsedMs)
	assert.Equal(t, int64(150), events[2].ElapsedMs)
	assert.Equal(t, "analyst", events[1].Role)
}

func TestWriter_ByteIdenticalUnderFixedInputs(t *testing.T) {
	render := func(t *testing.T) []byte {
		m, clk := newManager(t)
		w, err := m.ForRun("run-det")
		require.NoError(t, err)
		require.NoError(t, w.Append(Event{Event: EventRunStarted}))
		clk.Advance(25 * time.Millisecond)
		require.NoError(t, w.Append(Event{Event: EventRunCompleted, Tokens: 42}))
		require.NoError(t, w.Close())

		f, err := m.Open("run-det", FileTrace)
		require.NoError(t, err)
		defer f.Close()
		raw, err := io.ReadAll(f)
		require.NoError(t, err)
		return raw
	}

	assert.Equal(t, render(t), render(t))
}

func TestWriter_ClosedTraceRejectsAppends(t *testing.T) {
	m, _ := newManager(t)
	w, err := m.ForRun("run-2")
	require.NoError(t, err)
	require.NoError(t, w.Append(Event{Event: EventRunStarted}))
	require.NoError(t, w.Close())

	assert.Error(t, w.Append(Event{Event: EventRunCompleted}))
}

func TestWriter_MetaReportCarriesProvenance(t *testing.T) {
	m, _ := newManager(t)
	w, err := m.ForRun("run-3")
	require.NoError(t, err)
	require.NoError(t, w.WriteMetaReport("# Run summary\n\nAll good.", "run-3", "corr-9"))

	raw, err := os.ReadFile(filepath.Join(m.RunDir("run-3"), FileMetaReport))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Run-ID: run-3")
	assert.Contains(t, string(raw), "Correlation-ID: corr-9")
	assert.Contains(t, string(raw), "Agent: orchid/")
}

func TestManager_OpenRejectsUnknownNames(t *testing.T) {
	m, _ := newManager(t)
	_, err := m.Open("run-4", "../../etc/passwd")
	assert.Error(t, err)
}
