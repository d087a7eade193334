package cardboard

// allocateDepth advances the depth counter once for every AutoZ object
// released this frame and records the new value as that object's resting
// depth, so later drags stack above earlier ones. The counter never shrinks.
// A snap that already placed the object's Z this frame takes precedence over
// the resting depth for the object's current Z.
func (b *Board) allocateDepth() {
	for _, r := range b.releases {
		b.depth += AutoZDelta
		r.obj.restZ = b.depth
		if !r.pinned {
			r.obj.Z = b.depth
		}
	}
}
