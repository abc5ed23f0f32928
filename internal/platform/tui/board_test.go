package tui

import (
	"testing"

	"github.com/vovakirdan/fishfeast/internal/storage"
)

func TestRunRows(t *testing.T) {
	rows := runRows([]storage.Run{
		{Score: 120, Wave: 3, DurationMS: 95_000, Player: "alice"},
		{Score: 40, DurationMS: 1_400},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "120" || rows[0][2] != "3" || rows[0][3] != "1:35" || rows[0][4] != "alice" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][3] != "0:01" || rows[1][4] != "-" || rows[1][5] != "-" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestBoardWithoutStore(t *testing.T) {
	m := NewBoardModel(nil, "fish-best", 80, 24)
	if m.summary() != "Best: 0" {
		t.Errorf("summary = %q", m.summary())
	}
	if m.View() == "" {
		t.Error("board should render an empty message")
	}
}
