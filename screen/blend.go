package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sacred"
)

// Expressible reports whether m has a fixed-function ebiten.Blend
// equivalent. EXCLUSION, DIFFERENCE, OVERLAY, HARD_LIGHT, SOFT_LIGHT, DODGE
// and BURN need to read the destination in a shader and do not.
func Expressible(m sacred.BlendMode) bool {
	switch m {
	case sacred.BlendNormal, sacred.BlendAdd, sacred.BlendDarkest, sacred.BlendLightest,
		sacred.BlendMultiply, sacred.BlendScreen, sacred.BlendReplace, sacred.BlendRemove:
		return true
	}
	return false
}

// EbitenBlend returns the ebiten.Blend value corresponding to m. Modes that
// are not Expressible fall back to source-over.
func EbitenBlend(m sacred.BlendMode) ebiten.Blend {
	switch m {
	case sacred.BlendNormal:
		return ebiten.BlendSourceOver
	case sacred.BlendAdd:
		return ebiten.BlendLighter
	case sacred.BlendDarkest:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationMin,
			BlendOperationAlpha:         ebiten.BlendOperationMax,
		}
	case sacred.BlendLightest:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationMax,
			BlendOperationAlpha:         ebiten.BlendOperationMax,
		}
	case sacred.BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case sacred.BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case sacred.BlendReplace:
		return ebiten.BlendCopy
	case sacred.BlendRemove:
		return ebiten.BlendDestinationOut
	default:
		return ebiten.BlendSourceOver
	}
}
