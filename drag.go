package cardboard

// updateDrag runs the drag state machine for one frame: start on the pressed
// edge, follow the pointer while held, and finish on the released edge.
func (b *Board) updateDrag(pressed, released bool) {
	if pressed && b.dragged == nil {
		b.startDrag()
	}
	if b.dragged != nil {
		b.holdDrag()
	}
	if released && b.dragged != nil {
		b.endDrag()
	}
}

// dragCandidate returns the first object, in board order, that is hoverable,
// hovering and draggable.
func (b *Board) dragCandidate() *Object {
	for _, o := range b.list {
		if o.Hoverable && o.hovering && o.Draggable && !o.dragging {
			return o
		}
	}
	return nil
}

func (b *Board) startDrag() {
	o := b.dragCandidate()
	if o == nil {
		return
	}
	o.dragging = true
	b.dragged = o
	b.dragOrigin = o.Position()
	b.debugf("started dragging %q (%d) at (%v, %v)", o.Name, o.ID, b.pointer.X, b.pointer.Y)
	b.emit(Event{Type: EventDragStarted, Entity: o.ID, PointerX: b.pointer.X, PointerY: b.pointer.Y})
}

// holdDrag moves the dragged object to the pointer. AutoZ objects are lifted
// one step above the current depth while dragged.
func (b *Board) holdDrag() {
	o := b.dragged
	o.X = b.pointer.X
	o.Y = b.pointer.Y
	if o.AutoZ {
		o.Z = b.depth + AutoZDelta
	}
}

// endDrag releases the dragged object, resolves its slot placement when it is
// slottable, and emits EventDragEnded after the placement outcome.
func (b *Board) endDrag() {
	o := b.dragged
	o.dragging = false
	b.dragged = nil
	b.debugf("stopped dragging %q (%d) at (%v, %v)", o.Name, o.ID, b.pointer.X, b.pointer.Y)

	var pinned bool
	if o.Slottable != nil {
		pinned = b.resolveSlot(o)
	}
	if o.AutoZ {
		b.releases = append(b.releases, release{obj: o, pinned: pinned})
	}
	b.emit(Event{Type: EventDragEnded, Entity: o.ID, PointerX: b.pointer.X, PointerY: b.pointer.Y})
}
