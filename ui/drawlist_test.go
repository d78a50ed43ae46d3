package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRectShiftsCommands(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.SetTexture(5)
	dl.AddText(0, 0, "ab", ColorWhite, 8, 8)
	dl.SetTexture(0)
	dl.AddRect(20, 0, 10, 10, ColorWhite)

	dl.InsertRect(0, 0, 100, 100, ColorBlack)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 4)
	assert.Len(t, dl.VtxBuffer, 20)
	assert.Len(t, dl.IdxBuffer, 30)

	want := []struct {
		elems, vtx, idx, tex uint32
	}{
		{6, 0, 0, 0},
		{6, 4, 6, 0},
		{12, 8, 12, 5},
		{6, 16, 24, 0},
	}
	for i, w := range want {
		cmd := dl.CmdBuffer[i]
		assert.Equal(t, w.elems, cmd.ElemCount, "cmd %d elems", i)
		assert.Equal(t, w.vtx, cmd.VertexOffset, "cmd %d vertex offset", i)
		assert.Equal(t, w.idx, cmd.IndexOffset, "cmd %d index offset", i)
		assert.Equal(t, w.tex, cmd.TextureID, "cmd %d texture", i)
	}

	// The background sits behind everything else.
	assert.Equal(t, [2]float32{0, 0}, dl.VtxBuffer[0].Pos)
	assert.Equal(t, [2]float32{100, 100}, dl.VtxBuffer[2].Pos)
	assert.Equal(t, ColorBlack, dl.VtxBuffer[0].Color)
}

func TestFinalizeDropsEmptyCommands(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 10, 10)
	dl.PopClipRect()
	dl.AddRect(0, 0, 4, 4, ColorWhite)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, [4]float32{-1e9, -1e9, 1e9, 1e9}, dl.CmdBuffer[0].ClipRect)
}

func TestTransparentPrimitivesSkipped(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, RGBA(255, 255, 255, 0))
	dl.AddText(0, 0, "hidden", 0, 8, 8)
	dl.InsertRect(0, 0, 10, 10, 0)

	assert.Empty(t, dl.VtxBuffer)
	assert.Empty(t, dl.IdxBuffer)
}

func TestAddTextUsesAtlasCells(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddText(10, 20, "!", ColorWhite, 8, 8)
	require.Len(t, dl.VtxBuffer, 4)

	// '!' is the second cell of the first row.
	u0 := float32(FontCellSize) / FontAtlasWidth
	v1 := float32(FontCellSize) / FontAtlasHeight
	assert.Equal(t, [2]float32{u0, 0}, dl.VtxBuffer[0].TexCoord)
	assert.Equal(t, [2]float32{2 * u0, v1}, dl.VtxBuffer[2].TexCoord)
	assert.Equal(t, [2]float32{18, 28}, dl.VtxBuffer[2].Pos)
}

func TestIDStack(t *testing.T) {
	ctx := NewContext()
	a := ctx.GetID("slider")

	ctx.PushID("lighting")
	b := ctx.GetID("slider")
	ctx.PopID()

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, ctx.GetID("slider"))
	assert.Equal(t, ID(0), ctx.CurrentID())
}
