package ui

// Button draws a full-width button. Returns true on the frame it is clicked.
func (ctx *Context) Button(label string) bool {
	return ctx.ButtonEnabled(label, true)
}

// ButtonEnabled draws a button that can be greyed out. A disabled button
// never reports a click.
func (ctx *Context) ButtonEnabled(label string, enabled bool) bool {
	pos := ctx.ItemPos()
	id := ctx.GetID(label)
	st := &ctx.style

	textSize := ctx.MeasureText(label)
	size := Vec2{X: ctx.AvailableWidth(), Y: textSize.Y + st.ButtonPadding*2}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	hovered := enabled && ctx.isHovered(rect)
	pressed := hovered && ctx.Input != nil && ctx.Input.MouseDown(MouseButtonLeft)
	clicked := hovered && ctx.activeID == 0 && ctx.Input.MouseClicked(MouseButtonLeft)

	bgColor := st.ButtonColor
	switch {
	case !enabled:
		bgColor = st.ButtonDisabledColor
	case pressed:
		bgColor = st.ButtonActiveColor
	case hovered:
		bgColor = st.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)

	textColor := st.TextColor
	if !enabled {
		textColor = st.TextDisabledColor
	}
	textX := pos.X + (size.X-textSize.X)/2
	textY := pos.Y + (size.Y-textSize.Y)/2
	ctx.AddText(textX, textY, label, textColor)

	if hovered {
		ctx.WantCaptureMouse = true
	}
	if clicked {
		uiLogger.Debug("button clicked", "label", label, "id", id)
	}

	ctx.AdvanceCursor(size)
	return clicked
}
