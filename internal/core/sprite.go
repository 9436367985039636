package core

// Sprite is a pre-baked character bitmap. Space cells act as the
// transparency mask for DrawSprite; DrawOverwrite paints them too.
type Sprite struct {
	rows [][]rune
	w, h int
}

// NewSprite builds a sprite from text rows. Short rows are padded with
// spaces so every sprite is rectangular.
func NewSprite(rows ...string) Sprite {
	w := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > w {
			w = n
		}
	}
	cells := make([][]rune, len(rows))
	for i, r := range rows {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		copy(row, []rune(r))
		cells[i] = row
	}
	return Sprite{rows: cells, w: w, h: len(rows)}
}

// Width returns the sprite width in cells.
func (sp Sprite) Width() int {
	return sp.w
}

// Height returns the sprite height in cells.
func (sp Sprite) Height() int {
	return sp.h
}

// flipRunes maps directional glyphs to their mirror image when a sprite is
// drawn horizontally flipped.
var flipRunes = map[rune]rune{
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'/': '\\', '\\': '/',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'◄': '►', '►': '◄',
	'`': '\'', '\'': '`',
}

func (sp Sprite) at(x, y int, flip bool) rune {
	if flip {
		r := sp.rows[y][sp.w-1-x]
		if m, ok := flipRunes[r]; ok {
			return m
		}
		return r
	}
	return sp.rows[y][x]
}

// DrawSprite draws a sprite at (x, y), skipping transparent cells.
// The flip flag mirrors the sprite horizontally.
func (s *Screen) DrawSprite(x, y int, sp Sprite, flip bool, c Color) {
	for dy := 0; dy < sp.h; dy++ {
		for dx := 0; dx < sp.w; dx++ {
			r := sp.at(dx, dy, flip)
			if r == ' ' {
				continue
			}
			s.SetCell(x+dx, y+dy, r, c)
		}
	}
}

// DrawOverwrite draws a sprite at (x, y) including its blank cells,
// erasing whatever was underneath.
func (s *Screen) DrawOverwrite(x, y int, sp Sprite, c Color) {
	for dy := 0; dy < sp.h; dy++ {
		for dx := 0; dx < sp.w; dx++ {
			s.SetCell(x+dx, y+dy, sp.at(dx, dy, false), c)
		}
	}
}
