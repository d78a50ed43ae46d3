package ui

import (
	"log/slog"
	"os"

	"github.com/go-theft-auto/controls"
)

// uiLogger follows the verbosity set with controls.SetVerbose.
var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: controls.LogLevel()}))

// Context holds all state for drawing a single frame.
// This is NOT context.Context - it's a dedicated UI context type.
type Context struct {
	DrawList      *DrawList
	Input         *InputState
	DisplaySize   Vec2
	FontTextureID uint32

	style Style

	// Layout: a single vertical column.
	cursor Vec2
	indent float32
	width  float32 // Content width of the current window, 0 = display width

	idStack []ID

	// activeID is the widget holding the mouse (slider being dragged).
	// It survives across frames until the button is released.
	activeID ID

	// WantCaptureMouse is set when the pointer is over the UI or a widget
	// is being dragged; the application should ignore the mouse then.
	WantCaptureMouse bool
}

// NewContext creates a new Context.
func NewContext() *Context {
	return &Context{
		style:   DefaultStyle(),
		idStack: make([]ID, 0, 8),
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2) {
	ctx.cursor = Vec2{}
	ctx.indent = 0
	ctx.width = 0
	ctx.idStack = ctx.idStack[:0]
	ctx.DisplaySize = displaySize
	ctx.WantCaptureMouse = false

	if ctx.activeID != 0 && (ctx.Input == nil || !ctx.Input.MouseDown(MouseButtonLeft)) {
		uiLogger.Debug("Reset: releasing active widget", "id", ctx.activeID)
		ctx.activeID = 0
	}
	if ctx.activeID != 0 {
		ctx.WantCaptureMouse = true
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the current style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// SetCursorPos moves the layout cursor.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// ActiveID returns the widget currently holding the mouse, or 0.
func (ctx *Context) ActiveID() ID {
	return ctx.activeID
}

// LineHeight returns the height of a single line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.CharHeight
}

// MeasureText returns the size of rendered text.
func (ctx *Context) MeasureText(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * ctx.style.CharWidth, Y: ctx.style.CharHeight}
}

// AddText draws text with the built-in font.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// ItemPos returns the position for the next widget.
func (ctx *Context) ItemPos() Vec2 {
	return Vec2{X: ctx.cursor.X + ctx.indent, Y: ctx.cursor.Y}
}

// AvailableWidth returns the width left on the current line.
func (ctx *Context) AvailableWidth() float32 {
	w := ctx.width
	if w == 0 {
		w = ctx.DisplaySize.X - ctx.cursor.X
	}
	return w - ctx.indent
}

// AdvanceCursor moves the cursor below an item of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(h float32) {
	ctx.cursor.Y += h
}

// isHovered returns true if the rect is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(ctx.Input.MousePos())
}
