package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/northern-dash/internal/storage"
)

type fakeScores struct {
	runs []storage.Run
	err  error
}

func (s fakeScores) TopRuns(string, int) ([]storage.Run, error) {
	return s.runs, s.err
}

func (s fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	stats := &storage.GameStats{GameID: gameID, GamesCount: len(s.runs)}
	for _, r := range s.runs {
		stats.HighScore = max(stats.HighScore, r.Score)
		stats.TotalPresents += int64(r.Presents)
		stats.LastPlayed = r.CreatedAt
	}
	return stats, nil
}

func TestScoreboardRows(t *testing.T) {
	now := time.Now()
	store := fakeScores{runs: []storage.Run{
		{Score: 5200, Presents: 14, Difficulty: "hard", Verdict: "Sleigh Team Material!", CreatedAt: now},
		{Score: 800, Presents: 1, Difficulty: "easy", CreatedAt: now.Add(-time.Hour)},
	}}
	m := NewScoreboardModel(store, "dash", "Northern Lights Dash", 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "5,200" || rows[0][2] != "14" || rows[0][3] != "hard" {
		t.Errorf("first row = %v", rows[0])
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Northern Lights Dash", "2 runs", "best 5,200", "Sleigh Team Material!"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmptyAndErrors(t *testing.T) {
	tests := []struct {
		name  string
		store ScoreStore
		want  string
	}{
		{"no store", nil, "No runs recorded yet."},
		{"empty", fakeScores{}, "No runs recorded yet."},
		{"error", fakeScores{err: errors.New("locked")}, "Cannot read scores"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(tt.store, "dash", "Dash", 100, 30)
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("view missing %q", tt.want)
			}
		})
	}
}

func TestScoreboardKeys(t *testing.T) {
	m := NewScoreboardModel(nil, "dash", "Dash", 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
