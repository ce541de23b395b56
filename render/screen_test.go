package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDrawFrameOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(20, 8)
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	f := NewFrame(20, 8)
	f.Set(3, 2, Cell{Glyph: 'X', Level: LevelHead})
	f.Set(3, 3, Cell{Glyph: 'Y', Level: LevelDim})

	pal := GreenPalette()
	DrawFrame(screen, f, pal)

	mainc, _, style, _ := screen.GetContent(3, 2)
	if mainc != 'X' {
		t.Errorf("expected 'X' at head cell, got %c", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.PaletteColor(int(pal.Index256(LevelHead))) {
		t.Errorf("head cell foreground %v, want palette head color", fg)
	}

	mainc, _, _, _ = screen.GetContent(3, 3)
	if mainc != 'Y' {
		t.Errorf("expected 'Y' at trail cell, got %c", mainc)
	}

	// Untouched cells render as blanks
	mainc, _, _, _ = screen.GetContent(10, 5)
	if mainc != ' ' {
		t.Errorf("blank cell renders %q", mainc)
	}
}
