package history

import (
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-history-monitor/internal/core/model"
	"github.com/penwyp/go-history-monitor/internal/util"
)

// Entry markers of the fish history format. A command line must be
// immediately followed by its timestamp line.
const (
	cmdMarker  = "- cmd: "
	whenMarker = "- when: "
)

// ParseLines converts raw history lines into a mapping from command name
// to its usage record. Entries whose timestamp line is missing or carries
// a non-numeric epoch are skipped and counted; lines not matching the
// command marker are ignored. The second return value is the number of
// skipped entries.
func ParseLines(lines []string) (map[string]*model.CommandRecord, int) {
	records := make(map[string]*model.CommandRecord)
	skipped := 0
	tp := util.GetTimeProvider()

	for i, line := range lines {
		payload, ok := strings.CutPrefix(line, cmdMarker)
		if !ok {
			continue
		}

		fields := strings.Fields(payload)
		if len(fields) == 0 {
			util.LogDebugf("Empty command entry at line %d", i+1)
			skipped++
			continue
		}

		if i+1 >= len(lines) {
			util.LogDebugf("Dangling command entry at line %d", i+1)
			skipped++
			continue
		}
		epochStr, ok := strings.CutPrefix(lines[i+1], whenMarker)
		if !ok {
			util.LogDebugf("Command entry at line %d has no timestamp line", i+1)
			skipped++
			continue
		}
		epoch, err := strconv.ParseInt(strings.TrimSpace(epochStr), 10, 64)
		if err != nil {
			util.LogDebugf("Invalid timestamp at line %d: %v", i+2, err)
			skipped++
			continue
		}

		name, args := fields[0], fields[1:]
		record, ok := records[name]
		if !ok {
			record = model.NewCommandRecord(name)
			records[name] = record
		}
		record.AddUse(tp.In(time.Unix(epoch, 0)), args)
	}

	return records, skipped
}
