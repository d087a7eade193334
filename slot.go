package cardboard

// slotCandidate returns the first slot, in board order, that matches the
// object's group, is vacant, and overlaps the object's footprint. Overlap is
// inclusive: footprints that only touch at an edge count. There is no
// best-fit search; board order alone breaks ties.
func (b *Board) slotCandidate(o *Object) *Object {
	footprint := o.bounds(b.defaultSize)
	for _, s := range b.list {
		if s.Slot == nil || s == o {
			continue
		}
		if s.Slot.Group != o.Slottable.Group {
			continue
		}
		if !s.Slot.Vacant() {
			continue
		}
		if !s.slotBounds().Intersects(footprint) {
			continue
		}
		return s
	}
	return nil
}

// resolveSlot makes the single placement attempt for a released slottable
// object. It reports whether the object's Z was written by a snap.
func (b *Board) resolveSlot(o *Object) (pinned bool) {
	s := b.slotCandidate(o)
	if s == nil {
		b.emit(Event{Type: EventUnknownSlotTarget, Entity: o.ID})
		if o.SnapBack {
			o.X, o.Y, o.Z = b.dragOrigin.X, b.dragOrigin.Y, b.dragOrigin.Z
			return true
		}
		return false
	}

	s.Slot.occupant = o.ID
	if o.SnapIntoSlot {
		o.X = s.X
		o.Y = s.Y
		o.Z = s.Z + SlotZOffset
		pinned = true
	}
	e := Event{Type: EventSlottedInto, Entity: o.ID, Slot: s.ID}
	b.placed = append(b.placed, e)
	b.emit(e)
	return pinned
}

// reconcileOccupancy clears the previous slot of every object placed this
// frame, so an object moved straight from one slot to another is never the
// occupant of both.
func (b *Board) reconcileOccupancy() {
	for _, e := range b.placed {
		for _, s := range b.list {
			if s.Slot != nil && s.ID != e.Slot && s.Slot.occupant == e.Entity {
				s.Slot.occupant = 0
			}
		}
	}
}

// SlotOf returns the slot object that currently holds o, or nil.
func (b *Board) SlotOf(o *Object) *Object {
	for _, s := range b.list {
		if s.Slot != nil && s.Slot.occupant == o.ID {
			return s
		}
	}
	return nil
}
