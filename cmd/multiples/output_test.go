package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResultsFileAndEchoMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	results := []Result{
		{End: 10, Numbers: []uint32{2, 3, 4, 6, 8, 9, 10}},
		{End: 20, Numbers: []uint32{5, 7, 10, 14, 15, 20}},
	}

	var console bytes.Buffer
	require.NoError(t, WriteResults(path, &console, results))

	want := "10:2 3 4 6 8 9 10\n20:5 7 10 14 15 20\n"
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
	assert.Equal(t, want, console.String())
}

func TestWriteResultsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	var console bytes.Buffer
	require.NoError(t, WriteResults(path, &console, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Zero(t, console.Len())
}

func TestWriteResultsCreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")
	err := WriteResults(path, io.Discard, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output file")
}

// failWriter fails after n successful writes.
type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errors.New("console gone")
	}
	w.n--
	return len(p), nil
}

func TestWriteAllReportsPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	results := []Result{
		{End: 5, Numbers: []uint32{5}},
		{End: 10, Numbers: []uint32{2, 4}},
	}

	w, err := NewResultWriter(path, &failWriter{n: 1})
	require.NoError(t, err)
	defer w.Close()

	err = w.WriteAll(results)
	require.Error(t, err)
	require.True(t, IsWriteError(err))
	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, 2, we.Position)
}

func TestPrintSummary(t *testing.T) {
	theme = PlainTheme
	defer func() { theme = DefaultTheme }()

	var buf bytes.Buffer
	results := []Result{{End: 10, Numbers: []uint32{2, 4, 6, 8, 10}}}
	PrintSummary(&buf, results, 1500*time.Microsecond)
	assert.Contains(t, buf.String(), "1 results")
	assert.Contains(t, buf.String(), "5 qualifying numbers")
}

func TestBuildReport(t *testing.T) {
	cfg := &Config{InputPath: "in.txt", OutputPath: "out.txt", RunID: "deadbeef"}
	results := []Result{{End: 10, Numbers: []uint32{2, 3, 4, 6, 8, 9, 10}}}
	md := BuildReport(cfg, ByEnd, results, 2*time.Millisecond)

	assert.Contains(t, md, "deadbeef")
	assert.Contains(t, md, "| 10 | 7 | 70.0% |")
	assert.Contains(t, md, "1 results, 7 qualifying numbers")
}

func TestBuildReportZeroEnd(t *testing.T) {
	cfg := &Config{RunID: "deadbeef"}
	md := BuildReport(cfg, ByEnd, []Result{{End: 0}}, time.Millisecond)
	assert.Contains(t, md, "| 0 | 0 | 0.0% |")
}

func TestRenderReportProducesOutput(t *testing.T) {
	var buf bytes.Buffer
	RenderReport(&buf, "# Run report\n\nhello\n")
	assert.NotZero(t, buf.Len())
}
