package cardboard

// updateHover classifies every hoverable object that is not being dragged
// against the current pointer. An object hovers while the pointer is strictly
// inside its footprint; a pointer exactly on an edge does not count.
// Events fire once per transition, never while the state is steady.
func (b *Board) updateHover() {
	px, py := b.pointer.X, b.pointer.Y
	for _, o := range b.list {
		if o.dragging {
			continue
		}
		hovering := o.Hoverable && o.bounds(b.defaultSize).ContainsOpen(px, py)
		if hovering == o.hovering {
			continue
		}
		o.hovering = hovering
		if hovering {
			b.emit(Event{Type: EventHoverStarted, Entity: o.ID})
		} else {
			b.emit(Event{Type: EventHoverEnded, Entity: o.ID})
		}
	}
}
