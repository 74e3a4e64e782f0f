package manager_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"snake-classic/game/manager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempLog(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "results.txt")
}

func TestBestScoreMissingFile(t *testing.T) {
	sm := manager.NewScoreManager(tempLog(t))
	assert.Equal(t, 0, sm.BestScore())
}

func TestBestScorePicksMaximum(t *testing.T) {
	path := tempLog(t)
	lines := "2024-01-01 10:00:00;Alice;5\n2024-01-01 11:00:00;Bob;9\n"
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))

	sm := manager.NewScoreManager(path)
	assert.Equal(t, 9, sm.BestScore())
}

func TestBestScoreSkipsMalformedLines(t *testing.T) {
	path := tempLog(t)
	lines := strings.Join([]string{
		"2024-01-01 10:00:00;Alice;5",
		"not a record at all",
		"2024-01-01 10:30:00;TooFewFields",
		"2024-01-01 11:00:00;Carol;notanumber",
		"2024-01-01 12:00:00;Bob;7",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))

	sm := manager.NewScoreManager(path)
	assert.Equal(t, 7, sm.BestScore())
}

func TestAppendRoundTrip(t *testing.T) {
	sm := manager.NewScoreManager(tempLog(t))

	scores := []int{3, 12, 7}
	for _, score := range scores {
		err := sm.Append(manager.ScoreRecord{
			Timestamp:  time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC),
			PlayerName: "Alice",
			Score:      score,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 12, sm.BestScore())
}

func TestAppendLineFormat(t *testing.T) {
	path := tempLog(t)
	sm := manager.NewScoreManager(path)

	err := sm.Append(manager.ScoreRecord{
		Timestamp:  time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC),
		PlayerName: "Bob",
		Score:      42,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 15:04:05;Bob;42\n", string(data))
}

func TestAppendNeverRewrites(t *testing.T) {
	path := tempLog(t)
	sm := manager.NewScoreManager(path)

	for i := 1; i <= 3; i++ {
		err := sm.Append(manager.ScoreRecord{
			Timestamp:  time.Date(2024, 3, 1, 15, 0, i, 0, time.UTC),
			PlayerName: "Alice",
			Score:      i,
		})
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
}
