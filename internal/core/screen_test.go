package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q, expected '#'", got)
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("untouched cell = %q, expected space", got)
	}

	s.SetCell(4, 4, '@', ColorRed)
	cell := s.GetCell(4, 4)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell(4,4) = %+v, expected red '@'", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Writes outside the buffer must be dropped, not panic.
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(4, 0, 'x')
	s.Set(0, 4, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds write leaked into the buffer")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(8, 6)
	s.FillRect(NewRect(2, 1, 3, 2), '▓')

	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 5 && y >= 1 && y < 3
			got := s.Get(x, y)
			if inside && got != '▓' {
				t.Errorf("cell (%d,%d) = %q, expected fill", x, y, got)
			}
			if !inside && got != ' ' {
				t.Errorf("cell (%d,%d) = %q, expected blank", x, y, got)
			}
		}
	}
}

func TestScreenIncrementalDrawing(t *testing.T) {
	// Nothing erases a cell except Clear or overdraw.
	s := NewScreen(6, 3)
	s.Set(1, 1, 'A')
	s.Set(4, 1, 'B')
	s.FillRect(NewRect(0, 0, 2, 2), ' ')

	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("overdrawn cell = %q, expected space", got)
	}
	if got := s.Get(4, 1); got != 'B' {
		t.Errorf("untouched cell = %q, expected 'B'", got)
	}

	s.Clear()
	if got := s.Get(4, 1); got != ' ' {
		t.Errorf("cleared cell = %q, expected space", got)
	}
}

func TestScreenCopyFrom(t *testing.T) {
	src := NewScreen(5, 2)
	src.SetCell(2, 1, '*', ColorCyan)

	dst := NewScreen(3, 3)
	dst.CopyFrom(src)

	if dst.Width() != 5 || dst.Height() != 2 {
		t.Fatalf("dst resized to %dx%d, expected 5x2", dst.Width(), dst.Height())
	}
	cell := dst.GetCell(2, 1)
	if cell.Rune != '*' || cell.Color != ColorCyan {
		t.Errorf("copied cell = %+v, expected cyan '*'", cell)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestDrawSpriteTransparency(t *testing.T) {
	s := NewScreen(8, 3)
	s.FillRect(NewRect(0, 0, 8, 3), '.')

	sp := NewSprite(
		" o ",
		"ooo",
	)
	s.DrawSprite(2, 0, sp, false, ColorDefault)

	// Transparent corners keep the background.
	if got := s.Get(2, 0); got != '.' {
		t.Errorf("transparent cell = %q, expected background", got)
	}
	if got := s.Get(3, 0); got != 'o' {
		t.Errorf("opaque cell = %q, expected 'o'", got)
	}

	s.DrawOverwrite(2, 0, sp, ColorDefault)
	if got := s.Get(2, 0); got != ' ' {
		t.Errorf("overwrite left %q, expected erased cell", got)
	}
}

func TestDrawSpriteFlip(t *testing.T) {
	sp := NewSprite(">=-")

	s := NewScreen(5, 1)
	s.DrawSprite(1, 0, sp, true, ColorDefault)

	// Mirrored order with directional glyphs swapped.
	if got := s.Row(0); got != " -=< " {
		t.Errorf("flipped row = %q, expected \" -=< \"", got)
	}
}

func TestSpritePadsShortRows(t *testing.T) {
	sp := NewSprite(
		"abcd",
		"x",
	)
	if sp.Width() != 4 || sp.Height() != 2 {
		t.Fatalf("sprite is %dx%d, expected 4x2", sp.Width(), sp.Height())
	}

	s := NewScreen(4, 2)
	s.FillRect(NewRect(0, 0, 4, 2), '.')
	s.DrawSprite(0, 0, sp, false, ColorDefault)
	if got := s.Row(1); got != "x..." {
		t.Errorf("padded row drew %q, expected \"x...\"", got)
	}
}
