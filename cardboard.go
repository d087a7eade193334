package cardboard

import "github.com/hajimehoshi/ebiten/v2"

// EntityID identifies an object on a board. IDs are assigned by [Board.Add]
// starting at 1; 0 means "no entity".
type EntityID uint32

// Group partitions slottable objects and slots into compatible placement
// classes. An object can only be placed into a slot of the same group.
type Group uint16

const (
	// AutoZDelta is the amount the board depth counter advances for every
	// completed drag of an AutoZ object. A dragged AutoZ object is drawn at
	// the current depth plus one AutoZDelta.
	AutoZDelta = 0.00001

	// SlotZOffset is added to a slot's Z when an object snaps into it so the
	// object renders just above the slot.
	SlotZOffset = 0.00001
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, sizes and the pointer.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a position with depth.
type Vec3 struct {
	X, Y, Z float64
}

var whitePixel *ebiten.Image

// WhitePixel returns a 1x1 white image used for solid color rectangles.
// It is created on first use.
func WhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// centeredRect returns the rectangle of the given full size centered on (cx, cy).
func centeredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w*0.5, Y: cy - h*0.5, Width: w, Height: h}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsOpen reports whether the point (x, y) lies strictly inside the
// rectangle. Points on the edge are outside. Hover classification uses this.
func (r Rect) ContainsOpen(x, y float64) bool {
	return x > r.X && x < r.X+r.Width &&
		y > r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// EventType identifies a kind of board event.
type EventType uint8

const (
	EventHoverStarted      EventType = iota // pointer entered a hoverable object
	EventHoverEnded                         // pointer left a hoverable object
	EventDragStarted                        // an object started being dragged
	EventDragEnded                          // the dragged object was released
	EventSlottedInto                        // a released object was placed into a slot
	EventUnknownSlotTarget                  // a released slottable object found no slot
	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"HoverStarted",
	"HoverEnded",
	"DragStarted",
	"DragEnded",
	"SlottedInto",
	"UnknownSlotTarget",
}

// String returns the event type name.
func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "Unknown"
}
