package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/hr-system/internal/core/ports"
)

var testStamp = time.Date(2024, 3, 4, 15, 4, 5, 0, time.UTC)

func sampleData() *ports.ReportData {
	return &ports.ReportData{
		Columns: []string{"Department", "Employee", "Email", "Salary"},
		Rows: []map[string]string{
			{"Department": "Engineering", "Employee": "Alice Reyes", "Email": "alice@example.com", "Salary": "60000.00"},
			{"Department": "Engineering", "Employee": "Bruno Silva", "Email": "bruno@example.com", "Salary": "52000.00"},
			{"Department": "Sales", "Employee": "Carla Mendes", "Email": "carla@example.com", "Salary": "48000.00"},
		},
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "report_department_20240304_150405.txt", Filename(ports.ReportDepartment, testStamp))
	assert.Equal(t, "report_total_20240304_150405.txt", Filename(ports.ReportTotal, testStamp))
}

func TestRender_Layout(t *testing.T) {
	out := Render(sampleData(), testStamp)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// header + dash rule + 3 rows + "=" rule + timestamp
	require.Len(t, lines, 7)

	wantHeader := strings.Join([]string{
		fmt.Sprintf("%-20s", "Department"),
		fmt.Sprintf("%-20s", "Employee"),
		fmt.Sprintf("%-20s", "Email"),
		fmt.Sprintf("%-20s", "Salary"),
	}, " | ")
	assert.Equal(t, wantHeader, lines[0])
	assert.Equal(t, strings.Repeat("-", 4*23), lines[1])
	assert.Equal(t, strings.Repeat("=", 80), lines[5])
	assert.Equal(t, "Generated: 2024-03-04 15:04:05", lines[6])

	for _, row := range lines[2:5] {
		assert.Len(t, strings.Split(row, " | "), 4)
	}
	assert.True(t, strings.HasPrefix(lines[2], fmt.Sprintf("%-20s", "Engineering")+" | "+fmt.Sprintf("%-20s", "Alice Reyes")))
}

func TestRender_TruncatesLongCells(t *testing.T) {
	data := &ports.ReportData{
		Columns: []string{"Employee"},
		Rows: []map[string]string{
			{"Employee": "Maximiliano Fernandez de la Cruz"},
		},
	}
	out := Render(data, testStamp)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Maximiliano Fernande", lines[2])
	assert.Len(t, lines[2], 20)
}

func TestRender_TruncatesAccentedNamesByRunes(t *testing.T) {
	// The 20th character is multi-byte; slicing by bytes would cut it in
	// half and leave invalid UTF-8 in the file.
	data := &ports.ReportData{
		Columns: []string{"Employee"},
		Rows: []map[string]string{
			{"Employee": "0123456789012345678ñX"},
		},
	}
	out := Render(data, testStamp)
	lines := strings.Split(out, "\n")

	assert.True(t, utf8.ValidString(lines[2]))
	assert.Equal(t, "0123456789012345678ñ", lines[2])
	assert.Equal(t, 20, utf8.RuneCountInString(lines[2]))
}

func TestRender_PadsAccentedNamesByRunes(t *testing.T) {
	data := &ports.ReportData{
		Columns: []string{"Employee", "Role"},
		Rows:    []map[string]string{{"Employee": "José Muñoz", "Role": "manager"}},
	}
	out := Render(data, testStamp)
	lines := strings.Split(out, "\n")

	cells := strings.Split(lines[2], " | ")
	require.Len(t, cells, 2)
	// 10 characters of name + 10 spaces, regardless of byte length.
	assert.Equal(t, "José Muñoz"+strings.Repeat(" ", 10), cells[0])
	assert.Equal(t, 20, utf8.RuneCountInString(cells[0]))
}

func TestRender_PadsShortCells(t *testing.T) {
	data := &ports.ReportData{
		Columns: []string{"Name", "Salary"},
		Rows:    []map[string]string{{"Name": "Ana", "Salary": "1"}},
	}
	out := Render(data, testStamp)
	lines := strings.Split(out, "\n")

	assert.Equal(t, fmt.Sprintf("%-20s", "Ana")+" | "+fmt.Sprintf("%-20s", "1"), lines[2])
}

func TestWrite_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := Write(dir, ports.ReportDepartment, sampleData(), testStamp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_department_20240304_150405.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(sampleData(), testStamp), string(content))
}

func TestWrite_DirectoryFailure(t *testing.T) {
	// A file where the directory should be makes MkdirAll fail.
	base := t.TempDir()
	blocked := filepath.Join(base, "reports")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	_, err := Write(blocked, ports.ReportDepartment, sampleData(), testStamp)
	require.Error(t, err)
}
