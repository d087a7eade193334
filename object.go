package cardboard

import "github.com/hajimehoshi/ebiten/v2"

// Slottable marks an object that may be placed into a slot of the same Group.
type Slottable struct {
	Group Group
}

// Slot is a placement target that holds at most one compatible object.
// Size is the full width and height of the slot's drop area.
type Slot struct {
	Size  Vec2
	Group Group

	occupant EntityID
}

// Occupant returns the entity placed in the slot, or 0 when vacant.
// The slot only references the occupant; the occupant's own position is the
// source of truth for where it is drawn.
func (s *Slot) Occupant() EntityID {
	return s.occupant
}

// Vacant reports whether the slot has no occupant.
func (s *Slot) Vacant() bool {
	return s.occupant == 0
}

// Object is one entity on a board. A single flat struct carries every
// component; optional components are nil pointers or false markers.
//
// X, Y and Z are owned by the host. The board writes X and Y while the object
// is dragged or snapped, and Z only for AutoZ objects or on a snap.
type Object struct {
	// Identity
	ID   EntityID
	Name string

	// Position of the object's center.
	X, Y, Z float64

	// Size is the full footprint used for hover and overlap tests.
	// nil uses the board's default card size.
	Size *Vec2

	// Markers
	Hoverable    bool
	Draggable    bool
	AutoZ        bool
	SnapBack     bool
	SnapIntoSlot bool

	// Slot components
	Slottable *Slottable
	Slot      *Slot

	// Drawing (used by Board.Draw only)
	Color   Color
	Scale   float64
	Image   *ebiten.Image
	Visible bool

	// Metadata
	UserData any

	// Per-object callbacks (nil by default)
	OnHoverStart func(Event)
	OnHoverEnd   func(Event)
	OnDragStart  func(Event)
	OnDragEnd    func(Event)
	OnSlotted    func(Event)
	OnSlotMiss   func(Event)

	// Internal
	board    *Board
	hovering bool
	dragging bool
	restZ    float64
}

// objectDefaults sets the common default field values shared by all constructors.
func objectDefaults(o *Object) {
	o.Color = ColorWhite
	o.Scale = 1
	o.Visible = true
}

// NewObject creates a bare object at (x, y) with no markers set.
func NewObject(name string, x, y float64) *Object {
	o := &Object{Name: name, X: x, Y: y}
	objectDefaults(o)
	return o
}

// NewCard creates a card: an object that is hoverable, draggable and has its
// depth managed automatically.
func NewCard(name string, x, y float64) *Object {
	o := NewObject(name, x, y)
	o.Hoverable = true
	o.Draggable = true
	o.AutoZ = true
	return o
}

// NewSlot creates a slot object of the given drop-area size and group.
func NewSlot(name string, x, y float64, size Vec2, group Group) *Object {
	o := NewObject(name, x, y)
	o.Slot = &Slot{Size: size, Group: group}
	o.Color = Color{R: 0.2, G: 0.2, B: 0.25, A: 1}
	return o
}

// Hovering reports whether the pointer is currently over the object.
func (o *Object) Hovering() bool {
	return o.hovering
}

// Dragging reports whether the object is the one being dragged.
func (o *Object) Dragging() bool {
	return o.dragging
}

// RestZ returns the depth assigned to the object the last time a drag of it
// completed. It is zero for objects never dragged or without AutoZ.
func (o *Object) RestZ() float64 {
	return o.restZ
}

// Board returns the board the object belongs to, or nil.
func (o *Object) Board() *Board {
	return o.board
}

// Position returns the object's position with depth.
func (o *Object) Position() Vec3 {
	return Vec3{X: o.X, Y: o.Y, Z: o.Z}
}

// SetPosition sets X and Y.
func (o *Object) SetPosition(x, y float64) {
	o.X = x
	o.Y = y
}

// size returns the object's full footprint, falling back to def.
func (o *Object) size(def Vec2) Vec2 {
	if o.Size != nil {
		return *o.Size
	}
	return def
}

// bounds returns the object's footprint centered on its position.
func (o *Object) bounds(def Vec2) Rect {
	s := o.size(def)
	return centeredRect(o.X, o.Y, s.X, s.Y)
}

// slotBounds returns the slot's drop area centered on the object's position.
func (o *Object) slotBounds() Rect {
	return centeredRect(o.X, o.Y, o.Slot.Size.X, o.Slot.Size.Y)
}
