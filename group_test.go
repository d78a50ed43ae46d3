package controls

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestGroup(name string, opts ...GroupOption) *Group {
	return NewGroup(name, append([]GroupOption{WithGroupLogger(quietLogger)}, opts...)...)
}

func ptr[T any](v T) *T { return &v }

// recoverError runs f and returns the error it panicked with.
func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		var ok bool
		if err, ok = r.(error); !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
	}()
	f()
	return nil
}

func TestGroup_LightingScenario(t *testing.T) {
	g := newTestGroup("lighting")
	r := Range{Min: 0, Max: 10}

	if got := g.Float("intensity", 1, r, nil); got != 1 {
		t.Fatalf("default = %g, want 1", got)
	}
	if got := g.Float("intensity", 1, r, ptr[float32](5)); got != 5 {
		t.Fatalf("after update = %g, want 5", got)
	}

	if g.Size() != 4 {
		t.Errorf("Size() = %d, want 4", g.Size())
	}
	if g.AlignedSize() != 16 {
		t.Errorf("AlignedSize() = %d, want 16", g.AlignedSize())
	}

	want := make([]byte, 16)
	byteOrder.PutUint32(want, math.Float32bits(5))
	if got := g.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes() = % x, want % x", got, want)
	}
}

func TestGroup_PacksInRegistrationOrder(t *testing.T) {
	g := newTestGroup("mixed")
	g.Vec3("color", [3]float32{1, 2, 3}, [3]Range{}, nil)
	g.Int("count", 7, Range{Min: 0, Max: 10}, nil)
	g.Bool("enabled", true, nil)
	g.Vec2("offset", [2]float32{-1, 0.5}, [2]Range{}, nil)

	if g.Size() != 12+4+4+8 {
		t.Fatalf("Size() = %d, want 28", g.Size())
	}
	if g.AlignedSize() != 32 {
		t.Fatalf("AlignedSize() = %d, want 32", g.AlignedSize())
	}

	var want []byte
	for _, f := range []float32{1, 2, 3} {
		want = byteOrder.AppendUint32(want, math.Float32bits(f))
	}
	want = byteOrder.AppendUint32(want, 7)
	want = byteOrder.AppendUint32(want, 1)
	want = byteOrder.AppendUint32(want, math.Float32bits(-1))
	want = byteOrder.AppendUint32(want, math.Float32bits(0.5))
	want = append(want, make([]byte, 4)...)

	if got := g.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes() =\n% x\nwant\n% x", got, want)
	}

	offsets := map[string]int{"color": 0, "count": 12, "enabled": 16, "offset": 20}
	for name, want := range offsets {
		if got, ok := g.Offset(name); !ok || got != want {
			t.Errorf("Offset(%s) = %d, %v; want %d", name, got, ok, want)
		}
	}
	if _, ok := g.Offset("missing"); ok {
		t.Error("Offset(missing) should not be found")
	}
}

func TestGroup_ExactMultipleHasNoPadding(t *testing.T) {
	g := newTestGroup("tint")
	g.Vec4("rgba", [4]float32{1, 1, 1, 1}, [4]Range{}, nil)

	if g.Size() != 16 || g.AlignedSize() != 16 {
		t.Errorf("Size/AlignedSize = %d/%d, want 16/16", g.Size(), g.AlignedSize())
	}
	if n := len(g.Bytes()); n != 16 {
		t.Errorf("len(Bytes()) = %d, want 16", n)
	}
}

func TestGroup_LegacyPadding(t *testing.T) {
	g := newTestGroup("tint", WithLegacyPadding())
	g.Vec4("rgba", [4]float32{1, 1, 1, 1}, [4]Range{}, nil)

	if g.AlignedSize() != 32 {
		t.Errorf("AlignedSize() = %d, want 32", g.AlignedSize())
	}
	b := g.Bytes()
	if len(b) != 32 || !bytes.Equal(b[16:], make([]byte, 16)) {
		t.Errorf("expected 16 trailing zero bytes, got % x", b)
	}
}

func TestGroup_DirtyDiscipline(t *testing.T) {
	g := newTestGroup("fx")
	r := Range{Min: 0, Max: 1}

	if !g.Dirty() {
		t.Fatal("new group should be dirty")
	}
	g.Float("amount", 0.25, r, nil)

	first := g.Bytes()
	if g.Dirty() {
		t.Fatal("Bytes() should clear dirty")
	}
	version := g.Version()

	second := g.Bytes()
	if &first[0] != &second[0] || !bytes.Equal(first, second) {
		t.Error("clean Bytes() should return the cached buffer")
	}

	// Same value: no-op.
	g.Float("amount", 0.25, r, ptr[float32](0.25))
	if g.Dirty() {
		t.Error("no-op update must not mark dirty")
	}
	third := g.Bytes()
	if &third[0] != &first[0] || g.Version() != version {
		t.Error("no-op update must not repack")
	}

	// Real change.
	g.Float("amount", 0.25, r, ptr[float32](0.75))
	if !g.Dirty() {
		t.Fatal("changed value must mark dirty")
	}
	fourth := g.Bytes()
	if g.Version() != version+1 {
		t.Errorf("Version() = %d, want %d", g.Version(), version+1)
	}
	if got := math.Float32frombits(byteOrder.Uint32(fourth)); got != 0.75 {
		t.Errorf("packed value = %g, want 0.75", got)
	}
	if math.Float32frombits(byteOrder.Uint32(first)) != 0.25 {
		t.Error("previous buffer must not be modified by a repack")
	}
}

func TestGroup_VectorComparesComponentWise(t *testing.T) {
	g := newTestGroup("cam")
	def := [3]float32{0, 1, 2}
	g.Vec3("pos", def, [3]Range{}, nil)
	g.Bytes()

	g.Vec3("pos", def, [3]Range{}, ptr([3]float32{0, 1, 2}))
	if g.Dirty() {
		t.Error("equal vector must not mark dirty")
	}
	g.Vec3("pos", def, [3]Range{}, ptr([3]float32{0, 1, 2.5}))
	if !g.Dirty() {
		t.Error("one changed component must mark dirty")
	}
}

func TestGroup_RegistrationMarksDirty(t *testing.T) {
	g := newTestGroup("grow")
	g.Int("a", 1, Range{}, nil)
	g.Bytes()

	g.Int("a", 99, Range{}, nil)
	if g.Dirty() {
		t.Error("re-registration must not mark dirty")
	}
	if v := g.Int("a", 99, Range{}, nil); v != 1 {
		t.Errorf("default must only apply on first registration, got %d", v)
	}

	g.Int("b", 2, Range{}, nil)
	if !g.Dirty() {
		t.Error("new control must mark dirty")
	}
	if g.Size() != 8 || len(g.Bytes()) != 16 {
		t.Errorf("Size/len = %d/%d, want 8/16", g.Size(), len(g.Bytes()))
	}
}

func TestGroup_KindMismatchPanics(t *testing.T) {
	g := newTestGroup("lighting")
	g.Int("samples", 4, Range{Min: 1, Max: 64}, nil)
	g.Bytes()

	err := recoverError(t, func() {
		g.Float("samples", 1, Range{}, nil)
	})
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("errors.Is(%v, ErrMismatch) = false", err)
	}
	var me *MismatchError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MismatchError, got %T", err)
	}
	if me.Group != "lighting" || me.Name != "samples" || me.Want != KindFloat || me.Got != KindInt {
		t.Errorf("unexpected error fields: %+v", me)
	}

	if g.Dirty() {
		t.Error("a rejected operation must leave the group untouched")
	}
	if v := g.Int("samples", 0, Range{}, nil); v != 4 {
		t.Errorf("value changed after mismatch: %d", v)
	}
}

func TestGroup_BoolIsDistinctFromInt(t *testing.T) {
	g := newTestGroup("flags")
	g.Bool("on", false, nil)
	err := recoverError(t, func() { g.Int("on", 0, Range{}, nil) })
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("expected mismatch, got %v", err)
	}

	g.Bool("on", false, ptr(true))
	if got := byteOrder.Uint32(g.Bytes()); got != 1 {
		t.Errorf("packed bool = %d, want 1", got)
	}
}

func TestGroup_SetComponent(t *testing.T) {
	g := newTestGroup("light")
	g.Vec3("dir", [3]float32{0, -1, 0}, [3]Range{{-1, 1}, {-1, 1}, {-1, 1}}, nil)
	g.Bytes()

	if g.SetComponent("dir", 1, -1) {
		t.Error("same component value should not report a change")
	}
	if g.Dirty() {
		t.Error("no-op SetComponent must not mark dirty")
	}
	if !g.SetComponent("dir", 0, 0.5) {
		t.Error("SetComponent should report a change")
	}
	if !g.Dirty() {
		t.Error("SetComponent change must mark dirty")
	}
	if got := g.Vec3("dir", [3]float32{}, [3]Range{}, nil); got != [3]float32{0.5, -1, 0} {
		t.Errorf("Vec3 = %v", got)
	}

	err := recoverError(t, func() { g.SetComponent("dri", 0, 1) })
	var me *MissingError
	if !errors.As(err, &me) || me.Suggestion != "dir" {
		t.Errorf("expected MissingError suggesting dir, got %v", err)
	}
}

func TestGroup_Controls(t *testing.T) {
	g := newTestGroup("ui")
	g.Float("gain", 1, Range{Min: 0, Max: 2}, nil)
	g.Vec2("uv", [2]float32{}, [2]Range{{0, 1}, {-1, 1}}, nil)
	g.Bool("invert", false, nil)

	var names []string
	for name, c := range g.Controls() {
		names = append(names, name)
		if len(c.Ranges) != c.Value.Kind().Components() {
			t.Errorf("%s: %d ranges for %s", name, len(c.Ranges), c.Value.Kind())
		}
	}
	if len(names) != 3 || names[0] != "gain" || names[1] != "uv" || names[2] != "invert" {
		t.Errorf("Controls() order = %v", names)
	}

	v, ok := g.Value("uv")
	if !ok || v.Kind() != KindVec2 {
		t.Errorf("Value(uv) = %v, %v", v, ok)
	}
	for _, c := range g.Controls() {
		if c.Name == "uv" && c.Ranges[1] != (Range{Min: -1, Max: 1}) {
			t.Errorf("uv.y range = %+v", c.Ranges[1])
		}
		if c.Name == "invert" && c.Ranges[0] != unitRange {
			t.Errorf("bool range = %+v", c.Ranges[0])
		}
	}
}

func TestGroup_RangesFollowLatestCall(t *testing.T) {
	g := newTestGroup("fx")
	g.Float("gain", 1, Range{Min: 0, Max: 2}, nil)
	g.Float("gain", 1, Range{Min: 0, Max: 8}, nil)
	g.Float("gain", 1, Range{}, ptr(float32(3)))

	for _, c := range g.Controls() {
		if c.Ranges[0] != (Range{Min: 0, Max: 8}) {
			t.Errorf("gain range = %+v, want {0 8}", c.Ranges[0])
		}
	}
}

func TestGroup_Empty(t *testing.T) {
	g := newTestGroup("empty")
	if b := g.Bytes(); len(b) != 0 {
		t.Errorf("empty group packs %d bytes", len(b))
	}
	if g.AlignedSize() != 0 {
		t.Errorf("AlignedSize() = %d, want 0", g.AlignedSize())
	}
}
