package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-history-monitor/internal/util"
)

func TestMain(m *testing.M) {
	// Fix the timezone so bucket indices are deterministic.
	util.InitializeTimeProvider("UTC")
	os.Exit(m.Run())
}

func TestParseLinesSingleEntry(t *testing.T) {
	lines := []string{
		"- cmd: git status",
		"- when: 1700000000",
	}

	records, skipped := ParseLines(lines)

	assert.Equal(t, 0, skipped)
	require.Len(t, records, 1)

	record, ok := records["git"]
	require.True(t, ok, "record must be keyed by command name, not the full command text")
	assert.Equal(t, 1, record.Count)
	require.Len(t, record.Uses, 1)
	assert.Equal(t, []string{"status"}, record.Uses[0].Args)
	assert.Empty(t, record.Flags)

	// 1700000000 is 2023-11-14 22:13:20 UTC, a Tuesday.
	assert.Equal(t, 1, record.CalendarUsage["2023-11-14"])
	assert.Equal(t, 1, record.WeeklyUsage[2])
	assert.Equal(t, 1, record.HourlyUsage[22])
}

func TestParseLinesAccumulatesByName(t *testing.T) {
	lines := []string{
		"- cmd: git status",
		"- when: 1700000000",
		"- cmd: git commit -m msg",
		"- when: 1700003600",
		"- cmd: ls -la",
		"- when: 1700007200",
	}

	records, skipped := ParseLines(lines)

	assert.Equal(t, 0, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records["git"].Count)
	assert.Equal(t, 1, records["ls"].Count)
	assert.Equal(t, map[string]int{"-m": 1}, records["git"].Flags)
	assert.Equal(t, map[string]int{"-la": 1}, records["ls"].Flags)
}

func TestParseLinesMalformedEntries(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantRecords int
		wantSkipped int
	}{
		{
			name:        "dangling cmd line at end of input",
			lines:       []string{"- cmd: git status"},
			wantRecords: 0,
			wantSkipped: 1,
		},
		{
			name:        "cmd line followed by another cmd line",
			lines:       []string{"- cmd: git status", "- cmd: ls", "- when: 1700000000"},
			wantRecords: 1,
			wantSkipped: 1,
		},
		{
			name:        "non-numeric timestamp",
			lines:       []string{"- cmd: git status", "- when: soon"},
			wantRecords: 0,
			wantSkipped: 1,
		},
		{
			name:        "empty command payload",
			lines:       []string{"- cmd: ", "- when: 1700000000"},
			wantRecords: 0,
			wantSkipped: 1,
		},
		{
			name:        "unrelated lines are ignored, not errors",
			lines:       []string{"# comment", "- paths:", "- when: 1700000000"},
			wantRecords: 0,
			wantSkipped: 0,
		},
		{
			name:        "empty input",
			lines:       nil,
			wantRecords: 0,
			wantSkipped: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, skipped := ParseLines(tt.lines)
			assert.Len(t, records, tt.wantRecords)
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}

func TestParseLinesRecoversAfterMalformedEntry(t *testing.T) {
	lines := []string{
		"- cmd: broken",
		"- cmd: git status",
		"- when: 1700000000",
	}

	records, skipped := ParseLines(lines)

	assert.Equal(t, 1, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records["git"].Count)
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fish_history")
	content := "- cmd: git status\n- when: 1700000000  \n\n   \n- cmd: ls\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"- cmd: git status",
		"- when: 1700000000",
		"- cmd: ls",
	}, lines)
}

func TestReadLinesMissingFile(t *testing.T) {
	lines, err := ReadLines(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.Empty(t, lines)
}
