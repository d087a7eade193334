package cardboard

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := newCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if !cam.CullEnabled {
		t.Error("CullEnabled = false, want true")
	}
	if cam.Viewport.Width != 800 || cam.Viewport.Height != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
}

func TestCameraIdentityViewMatrix(t *testing.T) {
	cam := newCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	vm := cam.computeViewMatrix()
	// Camera at (0,0) maps the world origin to the viewport center.
	sx, sy := transformPoint(vm, 0, 0)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraScreenToWorld_Centered(t *testing.T) {
	cam := newCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	wx, wy := cam.ScreenToWorld(410, 290)
	if !approxEqual(wx, 10, epsilon) || !approxEqual(wy, -10, epsilon) {
		t.Errorf("ScreenToWorld(410,290) = (%f,%f), want (10,-10)", wx, wy)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := newCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Zoom = 2.0

	// At zoom 2, a point 1 unit from camera center should appear 2 pixels away
	sx1, _ := cam.WorldToScreen(1, 0)
	sx0, _ := cam.WorldToScreen(0, 0)
	if !approxEqual(sx1-sx0, 2.0, epsilon) {
		t.Errorf("zoom 2x: 1 world unit = %f screen pixels, want 2.0", sx1-sx0)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := newCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 42
	cam.Y = -17
	cam.Zoom = 1.5

	origWX, origWY := 123.0, -456.0
	sx, sy := cam.WorldToScreen(origWX, origWY)
	wx, wy := cam.ScreenToWorld(sx, sy)

	if !approxEqual(wx, origWX, 1e-6) || !approxEqual(wy, origWY, 1e-6) {
		t.Errorf("roundtrip: got (%f,%f), want (%f,%f)", wx, wy, origWX, origWY)
	}
}

func TestVisibleBounds_Zoom2(t *testing.T) {
	cam := newCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 400
	cam.Y = 300
	cam.Zoom = 2.0
	bounds := cam.VisibleBounds()
	if !approxEqual(bounds.Width, 400, 1e-6) || !approxEqual(bounds.Height, 300, 1e-6) {
		t.Errorf("VisibleBounds at zoom 2 size = (%f,%f), want (400,300)", bounds.Width, bounds.Height)
	}
	if !approxEqual(bounds.X, 200, 1e-6) || !approxEqual(bounds.Y, 150, 1e-6) {
		t.Errorf("VisibleBounds at zoom 2 origin = (%f,%f), want (200,150)", bounds.X, bounds.Y)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := newCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.ScrollTo(100, 200, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling() = false after ScrollTo")
	}

	cam.update(0.5)
	if !approxEqual(cam.X, 50, 1.0) || !approxEqual(cam.Y, 100, 1.0) {
		t.Errorf("scroll halfway: cam = (%f,%f), want ~(50,100)", cam.X, cam.Y)
	}

	cam.update(0.5)
	if !approxEqual(cam.X, 100, 1.0) || !approxEqual(cam.Y, 200, 1.0) {
		t.Errorf("scroll end: cam = (%f,%f), want ~(100,200)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("scroll tween not cleared after completion")
	}
}

func TestCameraScrollToObject(t *testing.T) {
	cam := newCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	card := NewCard("c", 112, 80)
	cam.ScrollToObject(card, 0.0001, ease.Linear)

	cam.update(1.0) // large dt to finish instantly
	if !approxEqual(cam.X, 112, 1.0) || !approxEqual(cam.Y, 80, 1.0) {
		t.Errorf("ScrollToObject: cam = (%f,%f), want ~(112,80)", cam.X, cam.Y)
	}
}

func TestCameraProject(t *testing.T) {
	cam := newCamera(Rect{X: 100, Y: 50, Width: 200, Height: 100})
	cam.X, cam.Y = 10, 20

	tests := []struct {
		name   string
		sx, sy float64
		want   Vec2
		ok     bool
	}{
		{"center", 200, 100, Vec2{X: 10, Y: 20}, true},
		{"top-left corner", 100, 50, Vec2{X: -90, Y: -30}, true},
		{"left of viewport", 99, 100, Vec2{}, false},
		{"below viewport", 200, 151, Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cam.project(tt.sx, tt.sy)
			if ok != tt.ok {
				t.Fatalf("project(%v, %v) ok = %v, want %v", tt.sx, tt.sy, ok, tt.ok)
			}
			if ok && (!approxEqual(got.X, tt.want.X, epsilon) || !approxEqual(got.Y, tt.want.Y, epsilon)) {
				t.Errorf("project(%v, %v) = %v, want %v", tt.sx, tt.sy, got, tt.want)
			}
		})
	}
}

func TestCameraScrollMovesPointer(t *testing.T) {
	tb := newTestBoard(t)
	slot := NewSlot("s", 300, 0, Vec2{X: 50, Y: 50}, 0)
	tb.Add(slot)
	tb.cam.ScrollToObject(slot, 0.0001, ease.Linear)

	// The cursor stays at the screen center while the camera pans.
	tb.InjectHover(400, 300)
	tb.frame()
	if tb.cam.Scrolling() {
		t.Fatal("pan should finish within one frame")
	}
	if p := tb.Pointer(); !approxEqual(p.X, 300, 1e-3) || !approxEqual(p.Y, 0, 1e-3) {
		t.Errorf("Pointer = %v, want ~{300 0}", p)
	}
}
