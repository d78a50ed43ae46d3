package ui

// Style defines the visual appearance of the control panel.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	PanelColor         uint32
	PanelBorderColor   uint32
	PanelHeaderBgColor uint32

	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	SliderTrackColor  uint32 // Background track
	SliderTrackHover  uint32 // Track when hovered
	SliderFillColor   uint32 // Filled portion
	SliderGrabColor   uint32 // Handle/grab
	SliderGrabHovered uint32 // Handle when hovered
	SliderGrabActive  uint32 // Handle when dragging

	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	TitleWidth    float32 // Width reserved for slider titles
	ValueWidth    float32 // Width reserved for slider value text
	GrabWidth     float32
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:         RGBA(20, 20, 20, 220),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 45, 255),

		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		SliderTrackColor:  RGBA(255, 255, 255, 6),
		SliderTrackHover:  RGBA(255, 255, 255, 16),
		SliderFillColor:   RGBA(255, 255, 255, 24),
		SliderGrabColor:   RGBA(255, 255, 255, 40),
		SliderGrabHovered: RGBA(255, 255, 255, 200),
		SliderGrabActive:  ColorWhite,

		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 4,
		TitleWidth:    100,
		ValueWidth:    56,
		GrabWidth:     4,
	}
}

// LightStyle mirrors DefaultStyle for light backgrounds: black tints
// instead of white ones.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = ColorBlack
	s.PanelColor = RGBA(235, 235, 235, 230)
	s.PanelBorderColor = RGBA(160, 160, 160, 255)
	s.PanelHeaderBgColor = RGBA(210, 210, 215, 255)
	s.ButtonColor = RGBA(200, 200, 200, 255)
	s.ButtonHoveredColor = RGBA(185, 185, 185, 255)
	s.ButtonActiveColor = RGBA(165, 165, 165, 255)
	s.ButtonDisabledColor = RGBA(225, 225, 225, 255)
	s.SliderTrackColor = RGBA(0, 0, 0, 6)
	s.SliderTrackHover = RGBA(0, 0, 0, 16)
	s.SliderFillColor = RGBA(0, 0, 0, 20)
	s.SliderGrabColor = RGBA(0, 0, 0, 24)
	s.SliderGrabHovered = RGBA(0, 0, 0, 204)
	s.SliderGrabActive = ColorBlack
	return s
}
