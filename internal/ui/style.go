package ui

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".info-panel" or "#ui-panel"
	Props    map[string]string // e.g. "background" -> "rgba(0,0,0,0.7)"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Length is a CSS length: pixels, or a percentage of the viewport when Pct is set.
type Length struct {
	Value float32
	Pct   bool
	Set   bool
}

// Resolve returns the length in pixels against a reference size (used for percentages).
func (l Length) Resolve(ref float32) float32 {
	if l.Pct {
		return l.Value / 100 * ref
	}
	return l.Value
}

// ComputedStyle holds resolved values used for layout and drawing.
// Left/Top/Bottom position the node's box; CenterX shifts it left by half its width (translateX(-50%)).
// Width is a percentage of the parent content box when Width.Pct is set (used by meter fills).
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      Length
	Height     float32
	MaxWidth   float32
	Left       Length
	Top        Length
	Bottom     Length
	CenterX    bool
	Padding    float32
	Gap        float32
	FontSize   float32
	Radius     float32
	Horizontal bool // lay children out in a row
	Hidden     bool
}

// DefaultComputedStyle returns a minimal style (transparent background, white text, no border, zero size).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: color.RGBA{},
		Color:      colornames.White,
		Border:     colornames.Black,
		FontSize:   defaultFontSize,
	}
}

// ParseColor parses #RGB, #RRGGBB, rgb(), rgba() and CSS colour names. Returns black and false on error.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if strings.HasPrefix(s, "rgb") {
		return parseRGBFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	return colornames.Black, false
}

func parseHexColor(s string) (color.RGBA, bool) {
	hex := s[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		r = hexByte(hex[0]) * 17
		g = hexByte(hex[1]) * 17
		b = hexByte(hex[2]) * 17
	case 6:
		r = hexByte(hex[0])<<4 + hexByte(hex[1])
		g = hexByte(hex[2])<<4 + hexByte(hex[3])
		b = hexByte(hex[4])<<4 + hexByte(hex[5])
	default:
		return colornames.Black, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

func parseRGBFunc(s string) (color.RGBA, bool) {
	open := strings.Index(s, "(")
	end := strings.LastIndex(s, ")")
	if open < 0 || end < open {
		return colornames.Black, false
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return colornames.Black, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return colornames.Black, false
		}
		ch[i] = uint8(n)
	}
	a := uint8(255)
	if len(parts) == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return colornames.Black, false
		}
		a = uint8(f*255 + 0.5)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, true
}

func hexByte(c byte) uint8 {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10
	}
	if c >= 'A' && c <= 'F' {
		return c - 'A' + 10
	}
	return 0
}

// ParsePx parses a number, with optional "px" suffix. Unitless is treated as pixels.
func ParsePx(s string) (float32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(n), true
}

// ParseLength parses "N%" or a pixel value.
func ParseLength(s string) (Length, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		n, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 32)
		if err != nil {
			return Length{}, false
		}
		return Length{Value: float32(n), Pct: true, Set: true}, true
	}
	n, ok := ParsePx(s)
	if !ok {
		return Length{}, false
	}
	return Length{Value: n, Set: true}, true
}

// ResolveProps builds a ComputedStyle from a merged property map (e.g. from matching rules).
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if l, ok := ParseLength(v); ok {
				out.Width = l
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "max-width":
			if n, ok := ParsePx(v); ok {
				out.MaxWidth = n
			}
		case "left", "x":
			if l, ok := ParseLength(v); ok {
				out.Left = l
			}
		case "top", "y":
			if l, ok := ParseLength(v); ok {
				out.Top = l
			}
		case "bottom":
			if l, ok := ParseLength(v); ok {
				out.Bottom = l
			}
		case "transform":
			out.CenterX = strings.ReplaceAll(v, " ", "") == "translateX(-50%)"
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "gap":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Gap = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "border-radius":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Radius = n
			}
		case "flex-direction":
			out.Horizontal = v == "row"
		case "display":
			out.Hidden = v == "none"
		}
	}
	return out
}
