package controls

// Alignment is the byte boundary every packed group is padded to. It
// matches the base alignment of a vec4 in std140 uniform blocks.
const Alignment = 16

// Padding returns the number of zero bytes needed after size bytes to reach
// the next Alignment boundary. The result is always in [0, Alignment).
func Padding(size int) int {
	if rem := size % Alignment; rem != 0 {
		return Alignment - rem
	}
	return 0
}

// AlignUp rounds size up to a multiple of Alignment.
func AlignUp(size int) int {
	return size + Padding(size)
}

// legacyPadding is the padding rule of earlier releases, which always
// appended at least one byte of padding: a size already on the boundary
// gains a full extra Alignment block.
func legacyPadding(size int) int {
	return Alignment - size%Alignment
}
