package sacred

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Vec2 is a 2D vector used for positions, offsets and centers. Screen
// coordinates: origin at the top-left, Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// MinSide returns the shorter of Width and Height.
func (r Rect) MinSide() float64 {
	return math.Min(r.Width, r.Height)
}

// HSB is a colour in the hue/saturation/brightness model. H is in degrees
// [0, 360); S, B and A are percentages in [0, 100]. The engine only computes
// these values; surfaces convert them for painting.
type HSB struct {
	H, S, B, A float64
}

// NewHSB returns an opaque HSB colour.
func NewHSB(h, s, b float64) HSB {
	return HSB{H: h, S: s, B: b, A: 100}
}

// Common achromatic colours.
var (
	HSBBlack = HSB{0, 0, 0, 100}
	HSBWhite = HSB{0, 0, 100, 100}
)

// WithAlpha returns c with its alpha replaced.
func (c HSB) WithAlpha(a float64) HSB {
	c.A = a
	return c
}

// Colorful converts c to a go-colorful colour, ignoring alpha.
func (c HSB) Colorful() colorful.Color {
	return colorful.Hsv(NormalizeHue(c.H), clamp01(c.S/100), clamp01(c.B/100))
}

// NRGBA converts c to a non-premultiplied 8-bit colour.
func (c HSB) NRGBA() color.NRGBA {
	r, g, b := c.Colorful().Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A/100) * 255))}
}

// Hex returns the "#rrggbb" form of c, ignoring alpha.
func (c HSB) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// Opacity returns alpha as a fraction in [0, 1].
func (c HSB) Opacity() float64 {
	return clamp01(c.A / 100)
}

// NormalizeHue wraps h into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Complement returns the hue opposite h on the colour wheel:
// (h + 180) mod 360. Applying it twice returns the normalized input.
func Complement(h float64) float64 {
	return NormalizeHue(h + 180)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BlendMode selects a compositing operation for subsequent draws. Surfaces
// that cannot express a mode fall back to BlendNormal.
type BlendMode uint8

const (
	BlendNormal     BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                         // additive / lighter
	BlendDarkest                     // per-channel minimum
	BlendLightest                    // per-channel maximum
	BlendMultiply                    // multiply (only darkens)
	BlendScreen                      // screen (only brightens)
	BlendReplace                     // opaque copy (skip blending)
	BlendRemove                      // destination-out (punch transparent holes)
	BlendExclusion                   // like difference with lower contrast
	BlendDifference                  // absolute channel difference
	BlendOverlay                     // multiply dark, screen light (by destination)
	BlendHardLight                   // multiply dark, screen light (by source)
	BlendSoftLight                   // softer hard light
	BlendDodge                       // brighten destination by source
	BlendBurn                        // darken destination by source
)

var blendModeNames = [...]string{
	BlendNormal:     "BLEND",
	BlendAdd:        "ADD",
	BlendDarkest:    "DARKEST",
	BlendLightest:   "LIGHTEST",
	BlendMultiply:   "MULTIPLY",
	BlendScreen:     "SCREEN",
	BlendReplace:    "REPLACE",
	BlendRemove:     "REMOVE",
	BlendExclusion:  "EXCLUSION",
	BlendDifference: "DIFFERENCE",
	BlendOverlay:    "OVERLAY",
	BlendHardLight:  "HARD_LIGHT",
	BlendSoftLight:  "SOFT_LIGHT",
	BlendDodge:      "DODGE",
	BlendBurn:       "BURN",
}

// BlendModes returns every supported blend mode in selector order.
func BlendModes() []BlendMode {
	return []BlendMode{
		BlendAdd, BlendDarkest, BlendLightest, BlendExclusion,
		BlendMultiply, BlendScreen, BlendReplace, BlendRemove,
		BlendDifference, BlendOverlay, BlendHardLight, BlendSoftLight,
		BlendDodge, BlendBurn, BlendNormal,
	}
}

// String returns the upper-case selector name of the mode.
func (b BlendMode) String() string {
	if int(b) < len(blendModeNames) {
		return blendModeNames[b]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(b))
}

// ParseBlendMode resolves a selector name such as "ADD" or "screen".
func ParseBlendMode(s string) (BlendMode, error) {
	for i, name := range blendModeNames {
		if strings.EqualFold(name, s) {
			return BlendMode(i), nil
		}
	}
	return BlendNormal, fmt.Errorf("parse blend mode %q: unknown mode", s)
}

// Next returns the mode after b in selector order, wrapping around.
func (b BlendMode) Next() BlendMode {
	modes := BlendModes()
	for i, m := range modes {
		if m == b {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}
