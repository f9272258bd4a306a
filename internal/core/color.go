package core

// Color represents a foreground color for a drawn element.
// Frontends translate it to ANSI codes or RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorPlayer
	ColorObstacle
	ColorGround
	ColorText
	ColorBanner
)

// String returns the name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPlayer:
		return "player"
	case ColorObstacle:
		return "obstacle"
	case ColorGround:
		return "ground"
	case ColorText:
		return "text"
	case ColorBanner:
		return "banner"
	default:
		return "unknown"
	}
}
