package ui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-theft-auto/controls"
)

// GetSet reads the current value when called with nil, and stores *update
// otherwise. It always returns the value held after the call.
type GetSet func(update *float64) float64

// SliderFloat draws a horizontal slider bound to getSet.
// Returns true if the value was changed.
//
// The slider queries getSet(nil) every frame and only passes a new value
// while the user drags it or scrolls over it:
//
//	ctx.SliderFloat("exposure", controls.Range{Min: -4, Max: 4}, func(v *float64) float64 {
//	    if v != nil {
//	        exposure = *v
//	    }
//	    return exposure
//	})
func (ctx *Context) SliderFloat(title string, r controls.Range, getSet GetSet) bool {
	return ctx.slider(title, r, getSet, false)
}

// SliderInt is SliderFloat for whole numbers: dragged values are rounded
// and the wheel steps by at least 1.
func (ctx *Context) SliderInt(title string, r controls.Range, getSet GetSet) bool {
	return ctx.slider(title, r, getSet, true)
}

func (ctx *Context) slider(title string, r controls.Range, getSet GetSet, integral bool) bool {
	pos := ctx.ItemPos()
	id := ctx.GetID(title)
	st := &ctx.style

	h := ctx.LineHeight() + 2*st.ButtonPadding
	avail := ctx.AvailableWidth()

	titleW := float32(0)
	if title != "" {
		titleW = st.TitleWidth
	}
	trackX := pos.X + titleW
	trackW := avail - titleW - st.ValueWidth - st.ItemSpacing
	if trackW < st.GrabWidth*4 {
		trackW = st.GrabWidth * 4
	}
	rect := Rect{X: trackX, Y: pos.Y, W: trackW, H: h}
	hovered := ctx.isHovered(rect)

	value := getSet(nil)
	next := value
	interacting := false

	// An empty range has nothing to map the cursor onto; such a slider
	// only displays its value.
	hasRange := r.Max > r.Min

	if in := ctx.Input; in != nil && hasRange {
		if hovered && ctx.activeID == 0 && in.MouseClicked(MouseButtonLeft) {
			ctx.activeID = id
			uiLogger.Debug("slider drag start", "title", title, "id", id)
		}

		switch {
		case ctx.activeID == id && in.MouseDown(MouseButtonLeft):
			ratio := min(max(float64((in.MouseX-trackX)/trackW), 0), 1)
			next = r.Min + ratio*(r.Max-r.Min)
			interacting = true
		case hovered && in.MouseWheelY != 0:
			step := (r.Max - r.Min) / 100
			if in.ModShift {
				step /= 10
			}
			if integral {
				step = math.Max(1, math.Round(step))
			}
			next = min(max(value+float64(in.MouseWheelY)*step, min(r.Min, value)), max(r.Max, value))
			interacting = true
		}
	}
	if integral {
		next = math.Round(next)
	}

	changed := false
	if interacting {
		updated := getSet(&next)
		changed = updated != value
		value = updated
	}
	if hovered || ctx.activeID == id {
		ctx.WantCaptureMouse = true
	}

	// Title
	textY := pos.Y + (h-ctx.LineHeight())/2
	if title != "" {
		ctx.AddText(pos.X, textY, title, st.TextColor)
	}

	// Track
	trackColor := st.SliderTrackColor
	if hovered || ctx.activeID == id {
		trackColor = st.SliderTrackHover
	}
	ctx.DrawList.AddRect(trackX, pos.Y, trackW, h, trackColor)

	ratio := float64(0)
	if hasRange {
		ratio = min(max((value-r.Min)/(r.Max-r.Min), 0), 1)
	}
	if fill := float32(ratio) * trackW; fill > 0 {
		ctx.DrawList.AddRect(trackX, pos.Y, fill, h, st.SliderFillColor)
	}

	// Grab
	grabColor := st.SliderGrabColor
	switch {
	case ctx.activeID == id:
		grabColor = st.SliderGrabActive
	case hovered:
		grabColor = st.SliderGrabHovered
	}
	grabX := trackX + float32(ratio)*(trackW-st.GrabWidth)
	ctx.DrawList.AddRect(grabX, pos.Y, st.GrabWidth, h, grabColor)

	// Value
	ctx.AddText(trackX+trackW+st.ItemSpacing, textY, FormatValue(value, integral), st.TextColor)

	ctx.AdvanceCursor(Vec2{avail, h})
	return changed
}

// FormatValue formats a slider value, using fewer decimals as the
// magnitude grows.
func FormatValue(v float64, integral bool) string {
	if integral {
		return strconv.FormatInt(int64(v), 10)
	}
	switch a := math.Abs(v); {
	case a < 1:
		return fmt.Sprintf("%.3f", v)
	case a < 10:
		return fmt.Sprintf("%.2f", v)
	case a < 100:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
