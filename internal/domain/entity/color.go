// Package entity defines the core business entities for the domain layer.
package entity

// GradientColor represents the color tag assigned to cards in the UI.
type GradientColor string

const (
	ColorPink     GradientColor = "pink"
	ColorBlue     GradientColor = "blue"
	ColorPurple   GradientColor = "purple"
	ColorGreen    GradientColor = "green"
	ColorYellow   GradientColor = "yellow"
	ColorOrange   GradientColor = "orange"
	ColorMint     GradientColor = "mint"
	ColorLavender GradientColor = "lavender"
)

// DefaultColor is used when a record is created without an explicit color tag.
const DefaultColor = ColorPink

// IsValidColor reports whether the given color tag is one of the known gradients.
func IsValidColor(c GradientColor) bool {
	switch c {
	case ColorPink, ColorBlue, ColorPurple, ColorGreen,
		ColorYellow, ColorOrange, ColorMint, ColorLavender:
		return true
	}
	return false
}
