package ui

// Window draws a framed panel at (x, y). Content is laid out in a single
// column inside the panel padding; the background is sized to fit once the
// content has been drawn.
func (ctx *Context) Window(title string, x, y, width float32, content func()) {
	pad := ctx.style.PanelPadding

	ctx.PushID(title)
	ctx.SetCursorPos(x+pad, y+pad)
	ctx.width = width - 2*pad
	ctx.indent = 0

	if title != "" {
		ctx.Header(title)
	}
	if content != nil {
		content()
	}

	h := ctx.cursor.Y - y + pad - ctx.style.ItemSpacing
	if h < 2*pad {
		h = 2 * pad
	}
	ctx.DrawList.InsertRect(x, y, width, h, ctx.style.PanelColor)
	ctx.DrawList.AddRectOutline(x, y, width, h, ctx.style.PanelBorderColor, 1)

	if ctx.isHovered(Rect{X: x, Y: y, W: width, H: h}) {
		ctx.WantCaptureMouse = true
	}

	ctx.width = 0
	ctx.PopID()
}

// Header draws a full-width section header.
func (ctx *Context) Header(text string) {
	pos := ctx.ItemPos()
	h := ctx.LineHeight() + 2*ctx.style.ButtonPadding
	w := ctx.AvailableWidth()

	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.PanelHeaderBgColor)
	ctx.AddText(pos.X+ctx.style.ButtonPadding, pos.Y+ctx.style.ButtonPadding, text, ctx.style.TextColor)
	ctx.AdvanceCursor(Vec2{w, h})
}
