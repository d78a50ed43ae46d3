/*
Package controls is an ordered, dirty-tracked parameter store for shader
control panels.

Callers register named groups of typed controls (int, bool, float, vec2,
vec3, vec4). Each group packs its values into one byte buffer, in
registration order, padded to a 16-byte boundary, ready to upload as a GPU
uniform block.

# Overview

The store is built for immediate-mode UIs. The same calls run every frame:
the first call registers a control with its default, later calls query it,
and a call with a non-nil update changes it.

	panel := controls.NewPanel()

	// Every frame
	panel.Group("lighting", func(g *controls.Group) {
	    intensity := g.Float("intensity", 1, controls.Range{Min: 0, Max: 10}, nil)
	    if dragged {
	        intensity = g.Float("intensity", 1, controls.Range{Min: 0, Max: 10}, &newIntensity)
	    }
	})

	ubo.Upload(panel.Get("lighting"))

# Packing

Bytes concatenates each value's native-endian encoding in registration order
and appends zero padding up to AlignedSize:

	kind   native     bytes
	int    int32      4
	bool   int32 0/1  4
	float  float32    4
	vec2   [2]float32 8
	vec3   [3]float32 12
	vec4   [4]float32 16

The buffer is cached. It is rebuilt only after a value actually changed;
an update equal to the stored value (component-wise) is a no-op, so idle
frames never repack.

# Ordering

OrderedMap keeps first-insertion order. Re-registering or updating a name
never moves it, so the packed layout stays stable for the shader.

# Faults

Contract violations panic. Asking for a float under a name registered as an
int panics with *MismatchError; looking up a group that was never
registered panics with *MissingError, which suggests the closest known name.
Both match ErrMismatch and ErrMissing through errors.Is.

# Concurrency

Groups and panels are owned by one goroutine, typically the render loop.
Readers on other goroutines must copy the packed bytes under their own lock.
*/
package controls
