package manager

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ScoreRecord is one completed run: when it ended, who played, what they
// scored.
type ScoreRecord struct {
	Timestamp  time.Time
	PlayerName string
	Score      int
}

// ScoreManager persists results to an append-only text log, one record per
// line: "YYYY-MM-DD HH:MM:SS;name;score". Records are never mutated or
// deleted.
type ScoreManager struct {
	path string
}

const recordTimeLayout = "2006-01-02 15:04:05"

func NewScoreManager(path string) *ScoreManager {
	return &ScoreManager{
		path: path,
	}
}

// Append writes one record to the log. Each write is a single line flushed
// on close, so no partial-write recovery is needed.
func (sm *ScoreManager) Append(record ScoreRecord) error {
	f, err := os.OpenFile(sm.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open score log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s;%s;%d\n",
		record.Timestamp.Format(recordTimeLayout),
		record.PlayerName,
		record.Score,
	)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append score record: %w", err)
	}
	return nil
}

// BestScore scans the whole log and returns the highest score seen.
// Malformed lines (wrong field count, non-integer score) are skipped; a
// missing file means no history and yields 0.
func (sm *ScoreManager) BestScore() int {
	f, err := os.Open(sm.path)
	if err != nil {
		return 0
	}
	defer f.Close()

	best := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Split(strings.TrimSpace(scanner.Text()), ";")
		if len(parts) < 3 {
			continue
		}
		score, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		if score > best {
			best = score
		}
	}
	return best
}
