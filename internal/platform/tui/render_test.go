package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fishfeast/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.SetColored(5, 1, 'x', core.Color(250)) // no style registered

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("row 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("row 1 = %q", lines[1])
	}
}
