package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-history-monitor/internal/core/model"
)

func sampleRecords(t *testing.T) []*model.CommandRecord {
	t.Helper()

	git := model.NewCommandRecord("git")
	at, err := time.Parse(time.RFC3339, "2024-03-01T09:00:00Z")
	require.NoError(t, err)
	git.AddUse(at, []string{"commit", "-m", "msg"})
	git.AddUse(at.Add(24*time.Hour), []string{"push", "--force"})

	ls := model.NewCommandRecord("ls")
	ls.AddUse(at, []string{"-la"})

	return []*model.CommandRecord{git, ls}
}

func TestSummarize(t *testing.T) {
	summaries := Summarize(sampleRecords(t))

	require.Len(t, summaries, 2)
	assert.Equal(t, "git", summaries[0].Name)
	assert.Equal(t, 2, summaries[0].Count)
	assert.Equal(t, 2, summaries[0].ActiveDays)
	assert.Equal(t, map[string]int{"-m": 1, "--force": 1}, summaries[0].Flags)
	assert.Equal(t, "ls", summaries[1].Name)
}

func TestTopFlags(t *testing.T) {
	flags := map[string]int{"-v": 3, "--all": 3, "-f": 1}
	assert.Equal(t, []string{"--all", "-v", "-f"}, topFlags(flags))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(Summarize(sampleRecords(t))))

	var decoded []CommandSummary
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "git", decoded[0].Name)
	assert.Equal(t, 2, decoded[0].Count)
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(Summarize(sampleRecords(t))))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Command,Count,Last Used,Active Days,Flags", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "git,2,"))
	assert.Contains(t, lines[2], "-la=1")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(Summarize(sampleRecords(t))))

	output := buf.String()
	assert.Contains(t, output, "│ Command")
	assert.Contains(t, output, "│ git")
	assert.Contains(t, output, "│ ls")
	assert.True(t, strings.HasPrefix(output, "┌"))
}
