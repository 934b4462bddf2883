package history

import (
	"bufio"
	"os"
	"strings"

	"github.com/penwyp/go-history-monitor/internal/util"
)

// ReadLines reads the history file at the given path and returns its
// trimmed, non-empty lines. A missing file is treated as zero usage data
// rather than an error.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			util.LogWarnf("History file not found: %s", path)
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	util.LogDebugf("Read %d lines from %s", len(lines), path)
	return lines, nil
}
