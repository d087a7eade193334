package cardboard

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultObjectCap = 64

// release records one object released this frame for the depth phase.
type release struct {
	obj *Object
	// pinned is set when a snap already wrote the object's Z.
	pinned bool
}

// Board is the top-level object that owns the objects, the camera, the pointer
// state and the per-frame event queue.
//
// A Board is driven by calling Update once per tick. It is not safe for
// concurrent use; hosts ticking from several goroutines must serialize whole
// Update calls.
type Board struct {
	cfg         Config
	defaultSize Vec2

	// Objects in insertion order. This order is the documented tie-break for
	// drag candidates and slot candidates.
	list    []*Object
	objects map[EntityID]*Object
	nextID  EntityID

	cameras []*Camera

	// Pointer state
	input       InputSource
	injectQueue []syntheticPointerEvent
	down        bool
	pointer     Vec2
	pointerErr  string

	// Drag state
	dragged    *Object
	dragOrigin Vec3
	depth      float64

	// Per-frame scratch, reset every Update
	releases []release
	placed   []Event
	drawBuf  []*Object

	// Events
	pending    []Event
	delivered  []Event
	handlers   handlerRegistry
	handlerBuf []eventHandler
	store      EventStore

	logger     *log.Logger
	debug      bool
	testRunner *TestRunner
	updateFunc func() error
}

// NewBoard creates an empty board using cfg for the default object size.
// An invalid cfg falls back to DefaultConfig and is logged.
func NewBoard(cfg Config) *Board {
	b := &Board{
		objects: make(map[EntityID]*Object, defaultObjectCap),
		list:    make([]*Object, 0, defaultObjectCap),
		input:   ebitenInput{},
		logger:  log.New(os.Stderr, "cardboard: ", log.LstdFlags),
	}
	if err := cfg.Validate(); err != nil {
		b.logger.Printf("invalid config, using defaults: %v", err)
		cfg = DefaultConfig()
	}
	b.cfg = cfg
	b.defaultSize = Vec2{X: cfg.CardWidth, Y: cfg.CardHeight}
	return b
}

// Config returns the board configuration.
func (b *Board) Config() Config {
	return b.cfg
}

// DefaultSize returns the footprint used for objects without a Size.
func (b *Board) DefaultSize() Vec2 {
	return b.defaultSize
}

// Add registers obj with the board and returns its entity ID. Adding an object
// that is already on this board returns its existing ID.
func (b *Board) Add(obj *Object) EntityID {
	if obj.board == b {
		return obj.ID
	}
	if obj.board != nil {
		obj.board.Remove(obj)
	}
	b.nextID++
	obj.ID = b.nextID
	obj.board = b
	b.list = append(b.list, obj)
	b.objects[obj.ID] = obj
	return obj.ID
}

// Remove detaches obj from the board. Any slot holding obj as its occupant is
// vacated. A hovered object gets an EventHoverEnded, delivered to board
// handlers and the EventStore at the start of the next Update; its own
// callbacks no longer fire.
//
// Removing the object that is currently being dragged is a precondition
// violation: it panics in debug mode and leaves the board in an undefined
// drag state otherwise.
func (b *Board) Remove(obj *Object) {
	if obj.board != b {
		return
	}
	if obj == b.dragged && b.debug {
		panic(fmt.Sprintf("cardboard debug: Remove on dragged object %q (ID %d)", obj.Name, obj.ID))
	}
	for i, o := range b.list {
		if o == obj {
			copy(b.list[i:], b.list[i+1:])
			b.list[len(b.list)-1] = nil
			b.list = b.list[:len(b.list)-1]
			break
		}
	}
	delete(b.objects, obj.ID)
	if obj.hovering {
		b.emit(Event{Type: EventHoverEnded, Entity: obj.ID})
	}
	for _, o := range b.list {
		if o.Slot != nil && o.Slot.occupant == obj.ID {
			o.Slot.occupant = 0
		}
	}
	obj.board = nil
	obj.hovering = false
	obj.dragging = false
}

// Object returns the object with the given ID, or nil.
func (b *Board) Object(id EntityID) *Object {
	return b.objects[id]
}

// Objects returns the board's objects in insertion order.
// The returned slice MUST NOT be mutated.
func (b *Board) Objects() []*Object {
	return b.list
}

// Pointer returns the current world-space pointer position. It keeps its last
// value while the pointer source cannot be resolved.
func (b *Board) Pointer() Vec2 {
	return b.pointer
}

// Dragging returns the object being dragged, or nil.
func (b *Board) Dragging() *Object {
	return b.dragged
}

// Hovered returns the objects currently hovered, in board order.
func (b *Board) Hovered() []*Object {
	var out []*Object
	for _, o := range b.list {
		if o.hovering {
			out = append(out, o)
		}
	}
	return out
}

// Depth returns the current value of the depth counter.
func (b *Board) Depth() float64 {
	return b.depth
}

// SetInputSource replaces the pointer input source. nil restores the
// Ebitengine mouse source.
func (b *Board) SetInputSource(src InputSource) {
	if src == nil {
		src = ebitenInput{}
	}
	b.input = src
}

// SetEventStore sets the optional ECS bridge.
func (b *Board) SetEventStore(store EventStore) {
	b.store = store
}

// SetLogger replaces the board logger. nil discards log output.
func (b *Board) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	b.logger = l
}

// SetDebugMode enables or disables debug mode. When enabled, drag lifecycle
// lines are written to stderr and removing the dragged object panics.
func (b *Board) SetDebugMode(enabled bool) {
	b.debug = enabled
}

// SetUpdateFunc sets a callback that Run invokes after every Update.
func (b *Board) SetUpdateFunc(fn func() error) {
	b.updateFunc = fn
}

// NewCamera creates a camera with the given viewport and adds it to the board.
// Pointer resolution requires exactly one camera.
func (b *Board) NewCamera(viewport Rect) *Camera {
	cam := newCamera(viewport)
	b.cameras = append(b.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the board.
func (b *Board) RemoveCamera(cam *Camera) {
	for i, c := range b.cameras {
		if c == cam {
			b.cameras = append(b.cameras[:i], b.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the board's camera list. The returned slice MUST NOT be mutated.
func (b *Board) Cameras() []*Camera {
	return b.cameras
}

// Update runs one frame: camera animation, then pointer, hover, drag, slot
// placement, occupancy reconciliation and depth allocation, each phase
// completing before the next. Events are delivered last.
func (b *Board) Update() {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := float32(1.0 / float64(tps))

	if b.testRunner != nil {
		b.testRunner.step(b)
	}
	for _, cam := range b.cameras {
		cam.update(dt)
	}

	b.releases = b.releases[:0]
	b.placed = b.placed[:0]

	pressed, released := b.updatePointer()
	b.updateHover()
	b.updateDrag(pressed, released)
	b.reconcileOccupancy()
	b.allocateDepth()
	b.dispatchEvents()
}

// debugf writes a debug line to stderr when debug mode is on.
func (b *Board) debugf(format string, args ...any) {
	if !b.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[cardboard] "+format+"\n", args...)
}
