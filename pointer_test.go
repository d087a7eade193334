package cardboard

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func newLoggedBoard(buf *bytes.Buffer) *Board {
	b := NewBoard(Config{CardWidth: 100, CardHeight: 100})
	b.SetLogger(log.New(buf, "", 0))
	b.SetInputSource(InputSourceFunc(func() PointerSample { return PointerSample{} }))
	return b
}

func TestPointer_ProjectsThroughCamera(t *testing.T) {
	var buf bytes.Buffer
	b := newLoggedBoard(&buf)
	cam := b.NewCamera(Rect{Width: 800, Height: 600})
	cam.X = 100
	cam.Zoom = 2

	b.InjectHover(500, 300)
	b.Update()
	if got := b.Pointer(); got != (Vec2{X: 150, Y: 0}) {
		t.Errorf("Pointer = %v, want {150 0}", got)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}

func TestPointer_UnresolvedKeepsStaleValue(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *Board)
		wantLog string
	}{
		{"no camera", func(b *Board) {}, "no camera"},
		{"two cameras", func(b *Board) {
			b.NewCamera(Rect{Width: 800, Height: 600})
			b.NewCamera(Rect{Width: 800, Height: 600})
		}, "2 cameras"},
		{"empty viewport", func(b *Board) {
			b.NewCamera(Rect{Width: 0, Height: 600})
		}, "no area"},
		{"zero zoom", func(b *Board) {
			b.NewCamera(Rect{Width: 800, Height: 600}).Zoom = 0
		}, "not positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			b := newLoggedBoard(&buf)
			cam := b.NewCamera(Rect{Width: 800, Height: 600})
			b.InjectHover(450, 350)
			b.Update()
			want := b.Pointer()

			b.RemoveCamera(cam)
			tt.setup(b)
			b.InjectHover(100, 100)
			b.Update()

			if got := b.Pointer(); got != want {
				t.Errorf("Pointer = %v, want stale %v", got, want)
			}
			if !strings.Contains(buf.String(), tt.wantLog) {
				t.Errorf("log %q does not mention %q", buf.String(), tt.wantLog)
			}
		})
	}
}

func TestPointer_UnresolvedLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	b := newLoggedBoard(&buf)

	for i := 0; i < 5; i++ {
		b.Update()
	}
	if n := strings.Count(buf.String(), "pointer unresolved"); n != 1 {
		t.Errorf("logged %d times, want 1:\n%s", n, buf.String())
	}

	b.NewCamera(Rect{Width: 800, Height: 600})
	b.Update()
	b.Update()
	if n := strings.Count(buf.String(), "pointer resolved again"); n != 1 {
		t.Errorf("recovery logged %d times, want 1:\n%s", n, buf.String())
	}

	// A new failure reason logs again.
	b.NewCamera(Rect{Width: 800, Height: 600})
	b.Update()
	if n := strings.Count(buf.String(), "pointer unresolved"); n != 2 {
		t.Errorf("logged %d times after a new failure, want 2:\n%s", n, buf.String())
	}
}

func TestPointer_OutsideViewportKeepsValue(t *testing.T) {
	var buf bytes.Buffer
	b := newLoggedBoard(&buf)
	b.NewCamera(Rect{X: 100, Y: 100, Width: 200, Height: 200})

	b.InjectHover(200, 200)
	b.Update()
	want := b.Pointer()

	b.InjectHover(50, 50)
	b.Update()
	if got := b.Pointer(); got != want {
		t.Errorf("Pointer = %v, want unchanged %v", got, want)
	}
	if buf.Len() != 0 {
		t.Errorf("outside viewport should not log, got %q", buf.String())
	}
}

func TestPointer_OutsideWindowKeepsValue(t *testing.T) {
	var buf bytes.Buffer
	b := newLoggedBoard(&buf)
	b.NewCamera(Rect{Width: 800, Height: 600})
	sample := PointerSample{ScreenX: 400, ScreenY: 300, InWindow: true}
	b.SetInputSource(InputSourceFunc(func() PointerSample { return sample }))

	b.Update()
	want := b.Pointer()
	sample = PointerSample{ScreenX: 10, ScreenY: 10, InWindow: false}
	b.Update()
	if got := b.Pointer(); got != want {
		t.Errorf("Pointer = %v, want unchanged %v", got, want)
	}
}

func TestPointer_EdgesWithoutCamera(t *testing.T) {
	var buf bytes.Buffer
	b := newLoggedBoard(&buf)
	card := NewCard("c", 0, 0)
	b.Add(card)

	// The pointer stays at the origin, over the card, so the press edge
	// still starts a drag even though no camera resolves the cursor.
	b.InjectPress(0, 0)
	b.Update()
	if b.Dragging() != card {
		t.Fatal("press edge should be honored with a stale pointer")
	}
	b.InjectRelease(0, 0)
	b.Update()
	if b.Dragging() != nil {
		t.Error("release edge should end the drag")
	}
}

func TestPointer_HeldButtonIsNotANewPress(t *testing.T) {
	b := NewBoard(Config{CardWidth: 100, CardHeight: 100})
	b.SetLogger(nil)
	b.NewCamera(Rect{Width: 800, Height: 600})
	b.SetInputSource(InputSourceFunc(func() PointerSample {
		return PointerSample{ScreenX: 400, ScreenY: 300, InWindow: true, Pressed: true}
	}))

	pressed, released := b.updatePointer()
	if !pressed || released {
		t.Errorf("first frame: pressed=%v released=%v, want true false", pressed, released)
	}
	pressed, released = b.updatePointer()
	if pressed || released {
		t.Errorf("held frame: pressed=%v released=%v, want false false", pressed, released)
	}
}
