package controls

import (
	"iter"
	"log/slog"
)

// Range is the inclusive slider range of one component. The store keeps it
// for the ui layer and never clamps against it. Passing the zero Range for
// an already registered control keeps its current range.
type Range struct {
	Min, Max float64
}

// unitRange is the fixed range of bool controls.
var unitRange = Range{Min: 0, Max: 1}

// entry is one registered control: its value and the slider range of each
// component.
type entry struct {
	value  Value
	ranges [4]Range
}

// Control is a read-only view of a registered control.
type Control struct {
	Name   string
	Value  Value
	Ranges []Range
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithLegacyPadding restores the padding rule of earlier releases, where a
// group whose size is already a multiple of Alignment still gets a full
// block of trailing zeros. Only use it for shaders that declared the extra
// block.
func WithLegacyPadding() GroupOption {
	return func(g *Group) { g.legacyPad = true }
}

// WithGroupLogger sets the logger used for debug events.
func WithGroupLogger(l *slog.Logger) GroupOption {
	return func(g *Group) { g.logger = l }
}

// Group is a named set of typed controls packed into one contiguous,
// aligned byte region. Values keep their registration order.
//
// A Group is not safe for concurrent use. Callers that read Bytes from
// another goroutine must copy the buffer under their own lock.
type Group struct {
	name    string
	values  *OrderedMap[string, *entry]
	packed  []byte
	size    int
	dirty   bool
	version uint64

	legacyPad bool
	logger    *slog.Logger
}

// NewGroup creates an empty group.
func NewGroup(name string, opts ...GroupOption) *Group {
	g := &Group{
		name:   name,
		values: NewOrderedMap[string, *entry](),
		dirty:  true,
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Len returns the number of registered controls.
func (g *Group) Len() int { return g.values.Len() }

// Size returns the unpadded packed size in bytes.
func (g *Group) Size() int { return g.size }

// AlignedSize returns the packed size including trailing padding.
func (g *Group) AlignedSize() int {
	if g.legacyPad {
		return g.size + legacyPadding(g.size)
	}
	return AlignUp(g.size)
}

// Dirty reports whether the cached buffer is stale.
func (g *Group) Dirty() bool { return g.dirty }

// Version counts repacks. It changes exactly when Bytes returns a new
// buffer.
func (g *Group) Version() uint64 { return g.version }

// Int registers or updates an int control and returns its current value.
// def is used only on first registration. A nil update only queries.
func (g *Group) Int(name string, def int32, r Range, update *int32) int32 {
	e := g.control(name, IntValue(def), r)
	if update != nil {
		g.assign(e, IntValue(*update))
	}
	return e.value.i
}

// Bool registers or updates a bool control. Bools pack as int32 0 or 1.
func (g *Group) Bool(name string, def bool, update *bool) bool {
	e := g.control(name, BoolValue(def), unitRange)
	if update != nil {
		g.assign(e, BoolValue(*update))
	}
	return e.value.i != 0
}

// Float registers or updates a float control.
func (g *Group) Float(name string, def float32, r Range, update *float32) float32 {
	e := g.control(name, FloatValue(def), r)
	if update != nil {
		g.assign(e, FloatValue(*update))
	}
	return e.value.f[0]
}

// Vec2 registers or updates a vec2 control with one range per component.
func (g *Group) Vec2(name string, def [2]float32, r [2]Range, update *[2]float32) [2]float32 {
	e := g.control(name, Vec2Value(def), r[:]...)
	if update != nil {
		g.assign(e, Vec2Value(*update))
	}
	return e.value.Vec2()
}

// Vec3 registers or updates a vec3 control with one range per component.
func (g *Group) Vec3(name string, def [3]float32, r [3]Range, update *[3]float32) [3]float32 {
	e := g.control(name, Vec3Value(def), r[:]...)
	if update != nil {
		g.assign(e, Vec3Value(*update))
	}
	return e.value.Vec3()
}

// Vec4 registers or updates a vec4 control with one range per component.
func (g *Group) Vec4(name string, def [4]float32, r [4]Range, update *[4]float32) [4]float32 {
	e := g.control(name, Vec4Value(def), r[:]...)
	if update != nil {
		g.assign(e, Vec4Value(*update))
	}
	return e.value.Vec4()
}

// SetComponent updates one component of an already registered control,
// following the same dirty rules as the typed setters. It reports whether
// the value changed. An unknown name panics with *MissingError.
func (g *Group) SetComponent(name string, i int, x float64) bool {
	p := g.values.GetMut(name)
	if p == nil {
		err := newMissing("control", name, g.values.Keys())
		err.Name = g.name + "." + name
		panic(err)
	}
	if !(*p).value.SetComponent(i, x) {
		return false
	}
	g.dirty = true
	return true
}

// Value returns a copy of the named control's value.
func (g *Group) Value(name string) (Value, bool) {
	e, ok := g.values.Get(name)
	if !ok {
		return Value{}, false
	}
	return e.value, true
}

// Offset returns the byte offset of the named control in the packed buffer.
func (g *Group) Offset(name string) (int, bool) {
	off := 0
	for n, e := range g.values.All() {
		if n == name {
			return off, true
		}
		off += e.value.kind.Size()
	}
	return 0, false
}

// Controls yields the registered controls in packing order.
func (g *Group) Controls() iter.Seq2[string, Control] {
	return func(yield func(string, Control) bool) {
		for name, e := range g.values.All() {
			c := Control{
				Name:   name,
				Value:  e.value,
				Ranges: e.ranges[:e.value.kind.Components()],
			}
			if !yield(name, c) {
				return
			}
		}
	}
}

// Bytes returns the packed buffer: every value's encoding in registration
// order followed by zero padding up to AlignedSize. The buffer is rebuilt
// only when the group is dirty; otherwise the cached slice is returned
// as-is. Callers must not modify it.
func (g *Group) Bytes() []byte {
	if g.dirty {
		g.repack()
	}
	return g.packed
}

// control returns the entry for name, registering it with def on first use.
// A registered entry of another kind panics with *MismatchError.
func (g *Group) control(name string, def Value, ranges ...Range) *entry {
	if p := g.values.GetMut(name); p != nil {
		e := *p
		if e.value.kind != def.kind {
			panic(&MismatchError{Group: g.name, Name: name, Want: def.kind, Got: e.value.kind})
		}
		for i, r := range ranges {
			if r != (Range{}) {
				e.ranges[i] = r
			}
		}
		return e
	}

	e := &entry{value: def}
	copy(e.ranges[:], ranges)
	g.values.Insert(name, e)
	g.size = g.computeSize()
	g.dirty = true

	g.logger.Debug("control registered",
		"group", g.name,
		"name", name,
		"value", def,
		"size", g.size)
	return e
}

// assign replaces e's value unless it is component-wise equal.
func (g *Group) assign(e *entry, v Value) {
	if e.value.Equal(&v) {
		return
	}
	e.value = v
	g.dirty = true
}

func (g *Group) computeSize() int {
	n := 0
	for _, e := range g.values.All() {
		n += e.value.kind.Size()
	}
	return n
}

// repack rebuilds the whole buffer. Padding bytes are left zero.
func (g *Group) repack() {
	buf := make([]byte, g.AlignedSize())
	off := 0
	for _, e := range g.values.All() {
		off += copy(buf[off:], e.value.Bytes())
	}
	g.packed = buf
	g.dirty = false
	g.version++

	g.logger.Debug("group repacked",
		"group", g.name,
		"size", g.size,
		"aligned", len(buf),
		"version", g.version)
}
