// Package cardboard is the interaction core of a 2D drag-and-drop card layout
// library for [Ebitengine].
//
// A [Board] tracks one pointer against positioned, sized rectangular objects
// and drives hover, drag and slot placement state across frames. The host
// calls [Board.Update] once per tick and reads events after it returns.
//
// # Quick start
//
//	board := cardboard.NewBoard(cardboard.DefaultConfig())
//	board.Add(cardboard.NewCard("ace", -100, 0))
//	cardboard.Run(board, cardboard.RunConfig{
//		Title: "Cards", Width: 1280, Height: 800,
//	})
//
// For full control, implement [ebiten.Game] yourself, register a camera with
// [Board.NewCamera] and call [Board.Update] and [Board.Draw] directly.
//
// # Frame phases
//
// Every Update runs these phases in order, each finishing before the next:
//
//  1. Pointer: the cursor is projected through the board's single camera.
//     With zero or several cameras the pointer keeps its last value and the
//     condition is logged.
//  2. Hover: every hoverable object that is not being dragged is tested
//     against the pointer with an open rectangle (edges do not count).
//  3. Drag: on the press edge, the first hovering draggable object in board
//     order starts dragging; it follows the pointer while held; the release
//     edge ends the drag.
//  4. Slot: a released [Slottable] object is placed into the first slot in
//     board order with the same group that is vacant and overlaps it
//     (closed rectangles, touching edges count).
//  5. Occupancy: the slot an object was previously in is vacated.
//  6. Depth: AutoZ objects get a strictly increasing resting Z.
//
// Events ([EventHoverStarted], [EventDragEnded], [EventSlottedInto], ...) are
// queued during the phases and delivered afterwards to board handlers,
// per-object callbacks, and the optional [EventStore] (see the ecs package
// for a Donburi adapter).
//
// Board order, the order objects were added, is the tie-break wherever
// several objects qualify.
//
// [Ebitengine]: https://ebitengine.org
package cardboard
