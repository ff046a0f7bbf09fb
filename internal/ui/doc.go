// Package ui contains the Bubble Tea program that simulates the character
// display and its controller buttons.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function.
//   - Key presses map onto the logical button alphabet in internal/input and
//     are dispatched, debounced, into the single menu.Engine. While a text
//     item is being edited, keys go to the bubbles textinput collaborator
//     instead; enter copies the buffer into the item and commits, escape
//     cancels.
//   - The "/" key opens a fuzzy jump prompt over the visible entries of the
//     active table; a match drives the engine's SetCursorPosition API.
//
// Display ownership:
//   - Screen is the in-memory stand-in for the hardware display driver: a
//     cell grid with a write address and a custom glyph table, implementing
//     display.Surface.
//   - The engine's redraw hook renders the current frame onto the Screen
//     through display.Renderer; View only wraps the finished grid in bezel
//     chrome. Navigation decisions never live here.
package ui
