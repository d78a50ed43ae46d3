package ui

// Renderer is the interface for rendering UI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// UI drives immediate-mode frames for the control panel.
type UI struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

// Option configures a UI instance.
type Option func(*UI)

// WithStyle sets the UI style.
func WithStyle(style Style) Option {
	return func(u *UI) { u.style = style }
}

// New creates a new UI instance.
func New(renderer Renderer, opts ...Option) *UI {
	u := &UI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Begin starts a new frame and returns the context to draw with.
func (u *UI) Begin(input *InputState, displaySize Vec2) *Context {
	ctx := u.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.style = u.style
	ctx.FontTextureID = u.renderer.FontTextureID()
	ctx.Reset(displaySize)
	return ctx
}

// End finishes the frame and renders it.
func (u *UI) End() error {
	ctx := u.ctx
	if ctx.DrawList == nil {
		return nil
	}
	err := u.renderer.Render(ctx.DrawList)
	ReleaseDrawList(ctx.DrawList)
	ctx.DrawList = nil
	return err
}

// Context returns the frame context. Only valid between Begin and End.
func (u *UI) Context() *Context {
	return u.ctx
}

// Style returns the current style.
func (u *UI) Style() Style {
	return u.style
}

// SetStyle replaces the style from the next frame on.
func (u *UI) SetStyle(style Style) {
	u.style = style
}

// Resize notifies the renderer of a display size change.
func (u *UI) Resize(width, height int) {
	u.renderer.Resize(width, height)
}
