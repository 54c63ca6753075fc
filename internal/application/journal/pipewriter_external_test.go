package journal_test

import (
	"testing"

	appjournal "github.com/kodflow/start/internal/application/journal"
	domainjournal "github.com/kodflow/start/internal/domain/journal"
	"github.com/kodflow/start/internal/domain/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingJournal records every Log call, implementing domainjournal.Journal.
type recordingJournal struct {
	entries []domainjournal.Entry
}

func (r *recordingJournal) Log(e domainjournal.Entry) {
	r.entries = append(r.entries, e)
}

func (r *recordingJournal) GetLogs(string, int) ([]domainjournal.Entry, error) { return nil, nil }

func (r *recordingJournal) Clear(string) error { return nil }

func TestPipeWriter_splits_complete_lines(t *testing.T) {
	t.Parallel()

	j := &recordingJournal{}
	w := appjournal.NewPipeWriter(j, "nginx", 42, logging.LevelInfo)

	n, err := w.Write([]byte("line one\nline two\npart"))
	require.NoError(t, err)
	assert.Equal(t, len("line one\nline two\npart"), n)

	require.Len(t, j.entries, 2)
	assert.Equal(t, "line one", j.entries[0].Message)
	assert.Equal(t, "line two", j.entries[1].Message)
	assert.Equal(t, "nginx", j.entries[0].Service)
	assert.Equal(t, 42, j.entries[0].PID)
	assert.Equal(t, logging.LevelInfo, j.entries[0].Priority)
}

func TestPipeWriter_Flush_emits_trailing_partial_line(t *testing.T) {
	t.Parallel()

	j := &recordingJournal{}
	w := appjournal.NewPipeWriter(j, "nginx", 1, logging.LevelError)

	_, _ = w.Write([]byte("trailing, no newline"))
	require.Empty(t, j.entries)

	w.Flush()
	require.Len(t, j.entries, 1)
	assert.Equal(t, "trailing, no newline", j.entries[0].Message)

	// A second flush with nothing buffered must be a no-op.
	w.Flush()
	assert.Len(t, j.entries, 1)
}

func TestPipeWriter_Close_flushes(t *testing.T) {
	t.Parallel()

	j := &recordingJournal{}
	w := appjournal.NewPipeWriter(j, "nginx", 1, logging.LevelInfo)
	_, _ = w.Write([]byte("unfinished"))

	err := w.Close()
	require.NoError(t, err)
	require.Len(t, j.entries, 1)
	assert.Equal(t, "unfinished", j.entries[0].Message)
}
