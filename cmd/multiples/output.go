package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Theme defines the color scheme for console output
type Theme struct {
	Bound   lipgloss.Style
	Count   lipgloss.Style
	Summary lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultTheme is the default color scheme
var DefaultTheme = Theme{
	Bound:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Count:   lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Summary: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// PlainTheme renders everything unstyled
var PlainTheme = Theme{
	Bound:   lipgloss.NewStyle(),
	Count:   lipgloss.NewStyle(),
	Summary: lipgloss.NewStyle(),
	Dim:     lipgloss.NewStyle(),
}

// Current theme (can be changed at runtime)
var theme = DefaultTheme

// ResultWriter renders results once and fans each line out to two sinks:
// the durable output file and the transient console echo.
type ResultWriter struct {
	path    string
	file    *os.File
	buf     *bufio.Writer
	console io.Writer
}

// NewResultWriter creates (or truncates) the output file. Callers construct
// the writer only after reading and computing succeeded, so a failed run
// never leaves an output file behind.
func NewResultWriter(path string, console io.Writer) (*ResultWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", path, err)
	}
	return &ResultWriter{path: path, file: f, buf: bufio.NewWriter(f), console: console}, nil
}

// WriteAll renders every result and writes each line to both sinks.
// Error positions are 1-based, matching the input line convention.
func (w *ResultWriter) WriteAll(results []Result) error {
	for i, r := range results {
		line := r.String()
		if _, err := fmt.Fprintln(w.console, line); err != nil {
			return &WriteError{Position: i + 1, Err: fmt.Errorf("echoing to console: %w", err)}
		}
		if _, err := fmt.Fprintln(w.buf, line); err != nil {
			return &WriteError{Position: i + 1, Err: err}
		}
	}
	return nil
}

// Flush forces buffered lines down to the file.
func (w *ResultWriter) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flushing output file %s: %w", w.path, err)
	}
	return nil
}

// Close closes the underlying file.
func (w *ResultWriter) Close() error {
	return w.file.Close()
}

// WriteResults writes all results to the output file at path, echoes every
// line to console, and flushes before returning.
func WriteResults(path string, console io.Writer, results []Result) error {
	w, err := NewResultWriter(path, console)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.WriteAll(results); err != nil {
		return err
	}
	return w.Flush()
}

// PrintSummary prints the final summary line for verbose runs.
func PrintSummary(w io.Writer, results []Result, elapsed time.Duration) {
	total := 0
	for _, r := range results {
		total += len(r.Numbers)
	}
	fmt.Fprintf(w, "%s %s results with %s qualifying numbers in %s\n",
		theme.Summary.Render("Total:"),
		theme.Bound.Render(fmt.Sprintf("%d", len(results))),
		theme.Count.Render(fmt.Sprintf("%d", total)),
		theme.Dim.Render(elapsed.Round(time.Millisecond).String()))
}

// BuildReport builds the markdown run report: per-result counts and
// densities plus a totals line.
func BuildReport(cfg *Config, ord Ordering, results []Result, elapsed time.Duration) string {
	var sb strings.Builder
	sb.WriteString("# Run report\n\n")
	sb.WriteString(fmt.Sprintf("**Run:** `%s`  **Sort:** %s\n\n", cfg.RunID, ord.Name))
	sb.WriteString(fmt.Sprintf("**Input:** `%s`  **Output:** `%s`\n\n", cfg.InputPath, cfg.OutputPath))

	sb.WriteString("| End | Count | Density |\n")
	sb.WriteString("|----:|------:|--------:|\n")
	total := 0
	for _, r := range results {
		density := 0.0
		if r.End > 0 {
			density = float64(len(r.Numbers)) / float64(r.End) * 100
		}
		sb.WriteString(fmt.Sprintf("| %d | %d | %.1f%% |\n", r.End, len(r.Numbers), density))
		total += len(r.Numbers)
	}

	sb.WriteString(fmt.Sprintf("\n%d results, %d qualifying numbers, %s.\n",
		len(results), total, elapsed.Round(time.Millisecond)))
	return sb.String()
}

// RenderReport renders the markdown report to w through glamour. If the
// terminal renderer cannot be built the raw markdown is printed instead.
func RenderReport(w io.Writer, markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		out, rerr := r.Render(markdown)
		if rerr == nil {
			fmt.Fprint(w, out)
			return
		}
		err = rerr
	}
	logError("rendering report, falling back to raw markdown", zap.Error(err))
	fmt.Fprint(w, markdown)
}
