package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplayDrawsEveryCell(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, false)

	g := mustGrid(t, 4, 2)
	setAlive(t, g, [2]int{0, 0}, [2]int{3, 1})
	if err := r.Display(g); err != nil {
		t.Fatal(err)
	}

	out := strings.TrimPrefix(buf.String(), ansiClear)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out)
	}
	if want := gridPosBlock + strings.Repeat(gridPosEmpty, 3); lines[0] != want {
		t.Errorf("row 0 = %q, want %q", lines[0], want)
	}
	if want := strings.Repeat(gridPosEmpty, 3) + gridPosBlock; lines[1] != want {
		t.Errorf("row 1 = %q, want %q", lines[1], want)
	}
}

func TestUpdateRedrawsOnlyChanges(t *testing.T) {
	gm := mustGame(t, 10, 10)
	if err := gm.SeedShape(Blinker); err != nil {
		t.Fatal(err)
	}
	if err := gm.Tick(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, false)
	if err := r.Update(gm); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Contains(out, ansiClear) {
		t.Fatal("update after a tick should not clear the screen")
	}
	if n := strings.Count(out, gridPosBlock); n != 2 {
		t.Errorf("drew %d live cells, want 2 births", n)
	}
	// four changed cells plus the cursor park
	if n := strings.Count(out, "\x1b["); n != 5 {
		t.Errorf("wrote %d cursor moves, want 5", n)
	}
}

func TestUpdateBeforeFirstTickIsFullFrame(t *testing.T) {
	gm := mustGame(t, 10, 10)
	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf, false).Update(gm); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), ansiClear) {
		t.Fatal("first update should draw a full frame")
	}
}

func TestStatusLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, false)
	if err := r.Status(Snapshot{Generation: 4, FinalGeneration: 4, LivingCells: 3, State: Over}, " | x"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Gen: 4 | Living: 3 | Status: over at 4 | x") {
		t.Fatalf("status line %q", buf.String())
	}
}
