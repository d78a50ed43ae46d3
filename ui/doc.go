/*
Package ui draws a controls.Panel as an immediate-mode slider panel.

The UI is rebuilt every frame. Widgets query their value, draw, and only
write back while the user interacts with them, so an idle frame never marks
a group dirty.

	gui := ui.New(renderer)

	for !window.ShouldClose() {
	    ctx := gui.Begin(input.Update(), ui.Vec2{X: w, Y: h})
	    ctx.Window("Uniforms", 10, 10, 360, func() {
	        ui.DrawPanel(ctx, panel)
	    })
	    gui.End()
	}

Draw output is a DrawList of colored and textured quads. The opengl
backend renders it; tests can inspect it directly.
*/
package ui
