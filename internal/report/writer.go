// Package report renders aggregate query results as fixed-width, pipe-
// delimited plain-text files. The output is a terminal artifact for humans,
// not an interchange format.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hrsuite/hr-system/internal/core/ports"
)

const (
	colWidth = 20
	// colWidth + len(" | ") per column; the dash rule spans this.
	cellSpan = 23

	ruleWidth     = 80
	timestampPart = "20060102_150405"
	timestampLine = "2006-01-02 15:04:05"
)

// Filename derives the report file name from its kind and generation time.
func Filename(kind ports.ReportKind, now time.Time) string {
	return fmt.Sprintf("report_%s_%s.txt", kind, now.Format(timestampPart))
}

// Render produces the full file content: a header line of column names, a
// dash rule, one line per row, a trailing rule, and a generation timestamp.
// Every cell is truncated to 20 characters and right-padded to 20.
func Render(data *ports.ReportData, now time.Time) string {
	var b strings.Builder

	cells := make([]string, len(data.Columns))
	for i, col := range data.Columns {
		cells[i] = cell(col)
	}
	b.WriteString(strings.Join(cells, " | "))
	b.WriteByte('\n')

	b.WriteString(strings.Repeat("-", len(data.Columns)*cellSpan))
	b.WriteByte('\n')

	for _, row := range data.Rows {
		for i, col := range data.Columns {
			cells[i] = cell(row[col])
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat("=", ruleWidth))
	b.WriteByte('\n')
	b.WriteString("Generated: " + now.Format(timestampLine))
	b.WriteByte('\n')

	return b.String()
}

// Write renders data and writes it under dir, creating the directory when
// absent. On any I/O failure the partial file is removed and the error
// carries the underlying cause. Empty data never reaches this function; the
// service rejects it first.
func Write(dir string, kind ports.ReportKind, data *ports.ReportData, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	path := filepath.Join(dir, Filename(kind, now))
	if err := os.WriteFile(path, []byte(Render(data, now)), 0o644); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write report file: %w", err)
	}
	return path, nil
}

// cell truncates and right-pads by runes, not bytes: slicing a multi-byte
// character at the boundary would write invalid UTF-8 into the file, and
// byte-based padding would misalign columns holding accented names.
func cell(v string) string {
	r := []rune(v)
	if len(r) > colWidth {
		return string(r[:colWidth])
	}
	return v + strings.Repeat(" ", colWidth-len(r))
}
