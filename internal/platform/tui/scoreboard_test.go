package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func seedScores(t *testing.T, store *storage.Store) {
	t.Helper()
	for _, rec := range []storage.GameRecord{
		{Player: "alice", Score: 100},
		{Player: "bob", Score: 900},
		{Player: "alice", Score: 200},
	} {
		if _, err := store.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}
}

func TestScoreboardTopGames(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m, err := NewScoreboardModel(store, "", 10, 80, 24)
	if err != nil {
		t.Fatalf("NewScoreboardModel() failed: %v", err)
	}

	if len(m.games) != 3 || m.games[0].Player != "bob" {
		t.Errorf("Expected all games led by bob, got %+v", m.games)
	}
	view := m.View()
	if !strings.Contains(view, "2048 HIGH SCORES") {
		t.Errorf("View missing title:\n%s", view)
	}
	if !strings.Contains(view, "3 games") {
		t.Errorf("View missing stats summary:\n%s", view)
	}
}

func TestScoreboardPlayerFilter(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m, err := NewScoreboardModel(store, "alice", 10, 80, 24)
	if err != nil {
		t.Fatalf("NewScoreboardModel() failed: %v", err)
	}

	if len(m.games) != 2 {
		t.Fatalf("Expected 2 games for alice, got %d", len(m.games))
	}
	for _, g := range m.games {
		if g.Player != "alice" {
			t.Errorf("Unexpected player %q in filtered scoreboard", g.Player)
		}
	}
	if m.games[0].Score != 200 {
		t.Errorf("Expected newest game first, got score %d", m.games[0].Score)
	}

	view := m.View()
	if !strings.Contains(view, "RECENT GAMES - alice") {
		t.Errorf("View missing player title:\n%s", view)
	}
	if strings.Contains(view, "bob") {
		t.Errorf("Filtered view should not list other players:\n%s", view)
	}
}
