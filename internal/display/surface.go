package display

// Glyph slots used by the renderer. Slots 0 and 1 are programmed with the
// scroll indicator patterns at setup; the cursor glyphs address the fixed
// character ROM of HD44780-style displays.
const (
	GlyphUpArrow   byte = 0
	GlyphDownArrow byte = 1

	CursorGlyph     byte = 0x7E // →
	EditCursorGlyph byte = 0x7F // ←
)

// upArrowPattern is the 5×8 up indicator.
var upArrowPattern = [8]byte{
	0b00100,
	0b01110,
	0b10101,
	0b00100,
	0b00100,
	0b00100,
	0b00100,
	0b00100,
}

// downArrowPattern is the 5×8 down indicator.
var downArrowPattern = [8]byte{
	0b00100,
	0b00100,
	0b00100,
	0b00100,
	0b00100,
	0b10101,
	0b01110,
	0b00100,
}

// Surface is the character display the renderer draws on. Implementations
// wrap real hardware drivers or, in this repository, the simulator's
// in-memory grid.
type Surface interface {
	// Clear blanks the display.
	Clear()
	// SetCursor positions the write address at col, row (zero-based).
	SetCursor(col, row int)
	// Print writes text at the current write address.
	Print(text string)
	// WriteGlyph writes a single glyph slot at the current write address.
	WriteGlyph(slot byte)
	// CreateGlyph programs a custom 5×8 glyph into slot.
	CreateGlyph(slot byte, pattern [8]byte)
}
