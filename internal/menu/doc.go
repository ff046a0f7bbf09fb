// Package menu implements the navigation engine behind a menu shown on a
// small fixed-size character display.
//
// State ownership:
//   - Table is one menu level: a header node, the user entries, and an end
//     marker. The header carries two separate things — the fixed link to the
//     parent table, and the scroll memento written each time the level is
//     left for a child.
//   - Engine owns the single mutable navigation state: the active table, the
//     cursor, the visible window [top, bottom], and the edit-mode flag.
//
// Input flow:
//   - Integrators call HandleUp/HandleDown/HandleLeft/HandleRight/
//     HandleSelect/HandleBack. Each call is synchronous and runs to
//     completion, callbacks included, before returning; invalid operations
//     are no-ops reporting false. With concurrent input sources (polled
//     buttons, interrupts), serialize events before dispatch — the engine
//     performs no locking.
//   - After every state-changing transition the engine invokes the redraw
//     hook. Frame() derives what a renderer needs: the visible rows with
//     hidden entries skipped, the cursor's display row, and the scroll
//     indicator decisions. How those rows reach pixels or segments is the
//     display collaborator's concern.
package menu
