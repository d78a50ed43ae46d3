package ui

import "github.com/go-theft-auto/controls"

// componentSuffix names vector components in slider titles.
var componentSuffix = [4]string{".x", ".y", ".z", ".w"}

// pressedButton is a button click recorded while drawing, triggered once
// iteration over the panel is done.
type pressedButton struct {
	group, name string
}

// DrawPanel draws every group of p, in registration order, as a header
// followed by one slider per component, then every action group as a row
// of buttons. Clicked buttons are triggered after drawing so actions may
// freely restructure the panel. Returns true if any value changed.
func DrawPanel(ctx *Context, p *controls.Panel) bool {
	changed := false

	for name, g := range p.Groups() {
		ctx.Header(name)
		ctx.PushID(name)
		for _, c := range g.Controls() {
			if drawControl(ctx, g, c) {
				changed = true
			}
		}
		ctx.PopID()
	}

	var pressed []pressedButton
	for name, a := range p.ActionGroups() {
		ctx.Header(name)
		ctx.PushID(name)
		for b := range a.Buttons() {
			if ctx.ButtonEnabled(b, a.Enabled(b)) {
				pressed = append(pressed, pressedButton{group: name, name: b})
			}
		}
		ctx.PopID()
	}

	for _, b := range pressed {
		// An earlier action may have reset the panel.
		if a, ok := p.LookupActions(b.group); ok && a.Has(b.name) {
			p.Trigger(b.group, b.name)
		}
	}
	return changed
}

// drawControl draws the sliders of one control. Bools are 0..1 int
// sliders; vectors get one slider per component titled name.x, name.y...
func drawControl(ctx *Context, g *controls.Group, c controls.Control) bool {
	kind := c.Value.Kind()
	integral := kind == controls.KindInt || kind == controls.KindBool
	n := kind.Components()

	changed := false
	for i := range n {
		title := c.Name
		if n > 1 {
			title += componentSuffix[i]
		}

		getSet := func(update *float64) float64 {
			if update != nil {
				g.SetComponent(c.Name, i, *update)
			}
			v, _ := g.Value(c.Name)
			return v.Component(i)
		}

		var moved bool
		if integral {
			moved = ctx.SliderInt(title, c.Ranges[i], getSet)
		} else {
			moved = ctx.SliderFloat(title, c.Ranges[i], getSet)
		}
		if moved {
			changed = true
		}
	}
	return changed
}
