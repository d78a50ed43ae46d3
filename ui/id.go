package ui

import "hash/fnv"

// ID identifies a widget across frames. IDs are derived from the label and
// the enclosing ID stack, so the same label in two groups differs.
type ID uint64

// GetID returns the ID of label within the current ID stack.
func (ctx *Context) GetID(label string) ID {
	h := fnv.New64a()
	var seed [8]byte
	parent := ctx.CurrentID()
	for i := range seed {
		seed[i] = byte(parent >> (8 * i))
	}
	h.Write(seed[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// PushID pushes a scope onto the ID stack.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID removes the innermost scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the innermost scope ID, or 0 at the root.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
