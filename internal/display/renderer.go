package display

import (
	"github.com/muesli/reflow/truncate"

	"github.com/lcdnav/lcdnav/internal/menu"
)

// Renderer draws engine frames onto a Surface. Layout follows the classic
// character-LCD convention: column 0 is the cursor glyph, the last column is
// reserved for the scroll indicators, everything between is the item line.
type Renderer struct {
	surface Surface
	rows    int
	cols    int

	cursorGlyph byte
	editGlyph   byte
}

// NewRenderer wires a renderer to a surface and programs the indicator
// glyphs.
func NewRenderer(surface Surface, rows, cols int) *Renderer {
	surface.CreateGlyph(GlyphUpArrow, upArrowPattern)
	surface.CreateGlyph(GlyphDownArrow, downArrowPattern)
	return &Renderer{
		surface:     surface,
		rows:        rows,
		cols:        cols,
		cursorGlyph: CursorGlyph,
		editGlyph:   EditCursorGlyph,
	}
}

// SetCursorGlyphs overrides the glyphs used for the browse and edit cursor.
func (r *Renderer) SetCursorGlyphs(browse, edit byte) {
	r.cursorGlyph = browse
	r.editGlyph = edit
}

// Render repaints the whole display from a frame.
func (r *Renderer) Render(f menu.Frame) {
	r.surface.Clear()
	for row, line := range f.Rows {
		if row >= r.rows {
			break
		}
		r.surface.SetCursor(1, row)
		r.surface.Print(r.itemLine(line))
	}
	r.drawCursor(f)
	if f.ShowUp {
		r.surface.SetCursor(r.cols-1, 0)
		r.surface.WriteGlyph(GlyphUpArrow)
	}
	if f.ShowDown {
		r.surface.SetCursor(r.cols-1, r.rows-1)
		r.surface.WriteGlyph(GlyphDownArrow)
	}
}

// itemLine formats "label:value" within the column budget. The value is
// truncated first so the label always survives.
func (r *Renderer) itemLine(row menu.FrameRow) string {
	budget := r.cols - 2 // cursor column and indicator column
	if budget < 1 {
		budget = 1
	}
	line := row.Label
	if row.Value != "" {
		avail := budget - len([]rune(row.Label)) - 1
		if avail > 0 {
			line += ":" + truncate.String(row.Value, uint(avail))
		}
	}
	return truncate.String(line, uint(budget))
}

func (r *Renderer) drawCursor(f menu.Frame) {
	row := f.CursorRow
	if row < 0 || row >= r.rows {
		return
	}
	r.surface.SetCursor(0, row)
	if f.Editing {
		r.surface.WriteGlyph(r.editGlyph)
		return
	}
	r.surface.WriteGlyph(r.cursorGlyph)
}
