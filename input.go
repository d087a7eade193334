package cardboard

import "github.com/hajimehoshi/ebiten/v2"

// PointerSample is one frame of raw input for the single logical pointer.
type PointerSample struct {
	// ScreenX and ScreenY are the cursor position in screen (layout) pixels.
	ScreenX, ScreenY float64
	// InWindow is false when the cursor position is unavailable this frame.
	InWindow bool
	// Pressed reports whether the pointer button is held down.
	Pressed bool
}

// InputSource supplies the pointer sample for a frame. Board.Update calls
// Sample exactly once per frame unless an injected event is pending.
type InputSource interface {
	Sample() PointerSample
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func() PointerSample

// Sample calls f.
func (f InputSourceFunc) Sample() PointerSample {
	return f()
}

// ebitenInput reads the left mouse button and cursor from Ebitengine.
type ebitenInput struct{}

func (ebitenInput) Sample() PointerSample {
	mx, my := ebiten.CursorPosition()
	return PointerSample{
		ScreenX:  float64(mx),
		ScreenY:  float64(my),
		InWindow: true,
		Pressed:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
