package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorNavy      // deep water
	ColorDeepTeal  // shallow water
	ColorSeafoam   // caustics and current arrow
	ColorAquamarine
)

// HueColor maps an HSL hue/lightness pair onto the closest palette entry.
// Terminals cannot show arbitrary HSL, so hue is bucketed and lightness
// picks between the normal and bright variant.
func HueColor(hue, light float64) Color {
	bright := light >= 58

	h := hue
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}

	switch {
	case h < 15 || h >= 330:
		if bright {
			return ColorBrightRed
		}
		return ColorRed
	case h < 40:
		return ColorOrange
	case h < 70:
		if bright {
			return ColorBrightYellow
		}
		return ColorYellow
	case h < 150:
		if bright {
			return ColorBrightGreen
		}
		return ColorGreen
	case h < 175:
		return ColorAquamarine
	case h < 200:
		if bright {
			return ColorBrightCyan
		}
		return ColorCyan
	case h < 260:
		if bright {
			return ColorBrightBlue
		}
		return ColorBlue
	default:
		if bright {
			return ColorBrightMagenta
		}
		return ColorMagenta
	}
}
