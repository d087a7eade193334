package cardboard

// syntheticPointerEvent represents a single injected pointer event.
// Screen coordinates are used and converted to world coordinates via the
// camera, identical to real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a button press at the given screen coordinates. The event
// replaces the input source's sample on the next Update.
func (b *Board) InjectPress(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
	})
}

// InjectMove queues a pointer move at the given screen coordinates with the
// button held down. Use this between InjectPress and InjectRelease to
// simulate a drag.
func (b *Board) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
	})
}

// InjectHover queues a pointer move at the given screen coordinates with the
// button up.
func (b *Board) InjectHover(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
	})
}

// InjectRelease queues a button release at the given screen coordinates.
func (b *Board) InjectRelease(x, y float64) {
	b.InjectHover(x, y)
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (b *Board) InjectClick(x, y float64) {
	b.InjectPress(x, y)
	b.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (b *Board) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	b.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		b.InjectMove(x, y)
	}
	b.InjectRelease(toX, toY)
}

// nextSample pops one injected event, or reads the input source when the
// queue is empty.
func (b *Board) nextSample() PointerSample {
	if len(b.injectQueue) == 0 {
		return b.input.Sample()
	}
	evt := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]
	return PointerSample{
		ScreenX:  evt.screenX,
		ScreenY:  evt.screenY,
		InWindow: true,
		Pressed:  evt.pressed,
	}
}
