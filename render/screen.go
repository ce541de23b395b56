package render

import "github.com/gdamore/tcell/v2"

// DrawFrame paints a resolved frame onto a tcell screen, for previewing the
// effect on the local terminal without a serial link
func DrawFrame(s tcell.Screen, f *Frame, pal *Palette) {
	width, height := f.Size()
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := f.At(x, y)
			style := base
			if c.Level != LevelBlank {
				style = base.Foreground(tcell.PaletteColor(int(pal.Index256(c.Level))))
			}
			s.SetContent(x, y, rune(c.Glyph), nil, style)
		}
	}
	s.Show()
}
