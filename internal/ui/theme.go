package ui

import "image/color"

// Light chat-widget palette
var (
	ColorBackground    = color.RGBA{R: 0xF3, G: 0xF4, B: 0xF6, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorPlaceholder   = color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}
	ColorBorder        = color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xAE, G: 0x07, B: 0x75, A: 0xFF} // brand magenta, same as the active dot
	ColorText          = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x4B, G: 0x55, B: 0x63, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}
	ColorNavButton     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xE5}
	ColorNavIcon       = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF}
	ColorShadow        = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x22}
	ColorFocusBorder   = color.RGBA{R: 0xAE, G: 0x07, B: 0x75, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xDC, G: 0x26, B: 0x26, A: 0xFF}
	ColorErrorSurface  = color.RGBA{R: 0xFE, G: 0xF2, B: 0xF2, A: 0xFF}
	ColorUpcoming      = color.RGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xFF}
)

// Layout constants
const (
	SectionPadding = 24
	SectionGap     = 28
	SectionTitleH  = 34
	HeaderHeight   = 64

	CardInset      = 8 // gap between a card and its slot edge
	CardRadius     = 12
	CardPadding    = 14
	CardImageRatio = 0.5 // share of the card height used by the image

	FontSizeTitle   = 24
	FontSizeHeading = 19
	FontSizeBody    = 15
	FontSizeSmall   = 13
	FontSizeCaption = 11

	// Per-frame easing factor for the vertical feed scroll
	ScrollAnimSpeed = 0.12

	// DotSpringFrequency settles a dot in about 200ms with critical damping.
	DotSpringFrequency = 18.0

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60
)
