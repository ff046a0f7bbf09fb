package ui

import "strings"

// Screen is an in-memory character display implementing display.Surface. It
// stands in for the HD44780-style driver the engine would talk to on real
// hardware: a cell grid, a write address, and a small custom glyph table.
type Screen struct {
	rows, cols int
	cells      [][]rune
	glyphs     map[byte]rune
	col, row   int
}

// NewScreen returns a blank screen of the given size.
func NewScreen(rows, cols int) *Screen {
	s := &Screen{
		rows: rows,
		cols: cols,
		glyphs: map[byte]rune{
			0x7E: '→',
			0x7F: '←',
		},
	}
	s.cells = make([][]rune, rows)
	for r := range s.cells {
		s.cells[r] = blankRow(cols)
	}
	return s
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// Clear blanks every cell and homes the write address.
func (s *Screen) Clear() {
	for r := range s.cells {
		s.cells[r] = blankRow(s.cols)
	}
	s.col, s.row = 0, 0
}

// SetCursor moves the write address.
func (s *Screen) SetCursor(col, row int) {
	s.col, s.row = col, row
}

// Print writes text at the write address, clipping at the display edge.
func (s *Screen) Print(text string) {
	for _, r := range text {
		s.put(r)
	}
}

// WriteGlyph writes one glyph slot at the write address.
func (s *Screen) WriteGlyph(slot byte) {
	r, ok := s.glyphs[slot]
	if !ok {
		r = '▣'
	}
	s.put(r)
}

// CreateGlyph programs a custom glyph slot. The simulator picks a rune by
// looking at where the 5×8 pattern puts its arrowhead.
func (s *Screen) CreateGlyph(slot byte, pattern [8]byte) {
	s.glyphs[slot] = glyphRune(pattern)
}

func glyphRune(pattern [8]byte) rune {
	switch {
	case pattern[1] == 0b01110:
		return '↑'
	case pattern[6] == 0b01110:
		return '↓'
	default:
		return '▣'
	}
}

func (s *Screen) put(r rune) {
	if s.row < 0 || s.row >= s.rows || s.col < 0 {
		return
	}
	if s.col < s.cols {
		s.cells[s.row][s.col] = r
	}
	s.col++
}

// Rows returns the display height.
func (s *Screen) Rows() int { return s.rows }

// Cols returns the display width.
func (s *Screen) Cols() int { return s.cols }

// Line returns one display row as a string.
func (s *Screen) Line(row int) string {
	if row < 0 || row >= s.rows {
		return ""
	}
	return string(s.cells[row])
}

// Lines returns all display rows.
func (s *Screen) Lines() []string {
	lines := make([]string, s.rows)
	for r := range lines {
		lines[r] = string(s.cells[r])
	}
	return lines
}

// String renders the grid for debugging and tests.
func (s *Screen) String() string {
	return strings.Join(s.Lines(), "\n")
}
