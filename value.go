package controls

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindBool
	KindFloat
	KindVec2
	KindVec3
	KindVec4
)

var kindNames = [...]string{
	KindInt:   "int",
	KindBool:  "bool",
	KindFloat: "float",
	KindVec2:  "vec2",
	KindVec3:  "vec3",
	KindVec4:  "vec4",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Components returns the number of scalar components of the kind.
func (k Kind) Components() int {
	switch k {
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	default:
		return 1
	}
}

// Size returns the encoded size in bytes. Every component is 4 bytes wide;
// bools are stored as int32.
func (k Kind) Size() int {
	return k.Components() * 4
}

// byteOrder is the encoding used for all values. GPU uploads read host
// memory directly, so this is the host order and never changes at runtime.
var byteOrder = binary.NativeEndian

// Value is a tagged union over the supported parameter kinds. It carries
// the native representation and its byte encoding; every mutation goes
// through reencode so the two never diverge.
type Value struct {
	kind Kind
	i    int32      // KindInt, KindBool
	f    [4]float32 // KindFloat uses f[0]
	buf  [16]byte
}

// IntValue creates an int value.
func IntValue(v int32) Value {
	val := Value{kind: KindInt, i: v}
	val.reencode()
	return val
}

// BoolValue creates a bool value, stored as int32 0 or 1.
func BoolValue(v bool) Value {
	val := Value{kind: KindBool, i: boolToInt(v)}
	val.reencode()
	return val
}

// FloatValue creates a float value.
func FloatValue(v float32) Value {
	val := Value{kind: KindFloat}
	val.f[0] = v
	val.reencode()
	return val
}

// Vec2Value creates a two-component vector.
func Vec2Value(v [2]float32) Value {
	val := Value{kind: KindVec2}
	copy(val.f[:], v[:])
	val.reencode()
	return val
}

// Vec3Value creates a three-component vector.
func Vec3Value(v [3]float32) Value {
	val := Value{kind: KindVec3}
	copy(val.f[:], v[:])
	val.reencode()
	return val
}

// Vec4Value creates a four-component vector.
func Vec4Value(v [4]float32) Value {
	val := Value{kind: KindVec4, f: v}
	val.reencode()
	return val
}

// Kind returns the variant of v.
func (v *Value) Kind() Kind { return v.kind }

// Bytes returns the encoded form of v. The slice aliases v and must not be
// modified.
func (v *Value) Bytes() []byte {
	return v.buf[:v.kind.Size()]
}

// Int returns the native value of an int. It panics on any other kind.
func (v *Value) Int() int32 {
	v.mustBe(KindInt)
	return v.i
}

// Bool returns the native value of a bool. It panics on any other kind.
func (v *Value) Bool() bool {
	v.mustBe(KindBool)
	return v.i != 0
}

// Float returns the native value of a float. It panics on any other kind.
func (v *Value) Float() float32 {
	v.mustBe(KindFloat)
	return v.f[0]
}

// Vec2 returns the native value of a vec2. It panics on any other kind.
func (v *Value) Vec2() [2]float32 {
	v.mustBe(KindVec2)
	return [2]float32{v.f[0], v.f[1]}
}

// Vec3 returns the native value of a vec3. It panics on any other kind.
func (v *Value) Vec3() [3]float32 {
	v.mustBe(KindVec3)
	return [3]float32{v.f[0], v.f[1], v.f[2]}
}

// Vec4 returns the native value of a vec4. It panics on any other kind.
func (v *Value) Vec4() [4]float32 {
	v.mustBe(KindVec4)
	return v.f
}

// Components returns the value as float64 components, the form the slider
// collaborator works in.
func (v *Value) Components() []float64 {
	n := v.kind.Components()
	out := make([]float64, n)
	switch v.kind {
	case KindInt, KindBool:
		out[0] = float64(v.i)
	default:
		for c := range n {
			out[c] = float64(v.f[c])
		}
	}
	return out
}

// Component returns a single component as float64.
func (v *Value) Component(i int) float64 {
	if i < 0 || i >= v.kind.Components() {
		return 0
	}
	switch v.kind {
	case KindInt, KindBool:
		return float64(v.i)
	default:
		return float64(v.f[i])
	}
}

// SetComponent sets component i from a float64. Ints truncate toward zero
// and saturate at the int32 limits; bools become 1 for any non-zero
// truncated value. It reports whether the value changed.
func (v *Value) SetComponent(i int, x float64) bool {
	if i < 0 || i >= v.kind.Components() {
		return false
	}
	switch v.kind {
	case KindInt:
		n := truncInt32(x)
		if n == v.i {
			return false
		}
		v.i = n
	case KindBool:
		n := boolToInt(truncInt32(x) != 0)
		if n == v.i {
			return false
		}
		v.i = n
	default:
		f := float32(x)
		if f == v.f[i] {
			return false
		}
		v.f[i] = f
	}
	v.reencode()
	return true
}

// Equal compares two values component-wise. Values of different kinds are
// never equal.
func (v *Value) Equal(o *Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt, KindBool:
		return v.i == o.i
	default:
		for c := range v.kind.Components() {
			if v.f[c] != o.f[c] {
				return false
			}
		}
		return true
	}
}

// String formats v as kind(value). It has a value receiver so that %v
// prints copies held in non-addressable places such as map values.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("int(%d)", v.i)
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.i != 0)
	case KindFloat:
		return fmt.Sprintf("float(%g)", v.f[0])
	default:
		return fmt.Sprintf("%s%v", v.kind, v.f[:v.kind.Components()])
	}
}

// reencode regenerates the byte encoding from the native value.
func (v *Value) reencode() {
	switch v.kind {
	case KindInt, KindBool:
		byteOrder.PutUint32(v.buf[0:], uint32(v.i))
	default:
		for c := range v.kind.Components() {
			byteOrder.PutUint32(v.buf[c*4:], math.Float32bits(v.f[c]))
		}
	}
}

func (v *Value) mustBe(k Kind) {
	if v.kind != k {
		panic(&MismatchError{Want: k, Got: v.kind})
	}
}

// DecodeValue rebuilds a value of the given kind from its encoding.
func DecodeValue(kind Kind, b []byte) (Value, error) {
	if int(kind) >= len(kindNames) {
		return Value{}, fmt.Errorf("decode value: unknown kind %d", uint8(kind))
	}
	if len(b) != kind.Size() {
		return Value{}, fmt.Errorf("decode %s: got %d bytes, want %d", kind, len(b), kind.Size())
	}
	v := Value{kind: kind}
	switch kind {
	case KindInt:
		v.i = int32(byteOrder.Uint32(b))
	case KindBool:
		n := int32(byteOrder.Uint32(b))
		if n != 0 && n != 1 {
			return Value{}, fmt.Errorf("decode bool: invalid value %d", n)
		}
		v.i = n
	default:
		for c := range kind.Components() {
			v.f[c] = math.Float32frombits(byteOrder.Uint32(b[c*4:]))
		}
	}
	v.reencode()
	return v, nil
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func truncInt32(x float64) int32 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	}
	return int32(x)
}
