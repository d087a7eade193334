package cardboard

import (
	"errors"
	"fmt"
)

// resolveCamera returns the single camera used for pointer projection.
// It fails when there is not exactly one camera, or the camera cannot map
// screen to world.
func (b *Board) resolveCamera() (*Camera, error) {
	switch n := len(b.cameras); {
	case n == 0:
		return nil, errors.New("no camera")
	case n > 1:
		return nil, fmt.Errorf("%d cameras, need exactly one", n)
	}
	cam := b.cameras[0]
	if cam.Viewport.Empty() {
		return nil, fmt.Errorf("camera viewport %vx%v has no area", cam.Viewport.Width, cam.Viewport.Height)
	}
	if cam.Zoom <= 0 {
		return nil, fmt.Errorf("camera zoom %v is not positive", cam.Zoom)
	}
	return cam, nil
}

// updatePointer reads this frame's pointer sample, derives the button edges
// and updates the world pointer. The pointer keeps its previous value when the
// camera cannot be resolved or the cursor is outside the viewport.
func (b *Board) updatePointer() (pressed, released bool) {
	sample := b.nextSample()

	pressed = sample.Pressed && !b.down
	released = !sample.Pressed && b.down
	b.down = sample.Pressed

	cam, err := b.resolveCamera()
	if err != nil {
		// Log once per distinct failure rather than every frame.
		if msg := err.Error(); msg != b.pointerErr {
			b.logger.Printf("pointer unresolved, keeping (%v, %v): %v", b.pointer.X, b.pointer.Y, err)
			b.pointerErr = msg
		}
		return pressed, released
	}
	if b.pointerErr != "" {
		b.logger.Printf("pointer resolved again")
		b.pointerErr = ""
	}

	if !sample.InWindow {
		return pressed, released
	}
	if p, ok := cam.project(sample.ScreenX, sample.ScreenY); ok {
		b.pointer = p
	}
	return pressed, released
}
