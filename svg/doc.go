// Package svg renders sacred frames as SVG documents with svgo.
//
// Colours are written as hex plus fill-opacity/stroke-opacity, and blend
// modes as CSS mix-blend-mode. Coordinates keep a tenth of a pixel of
// precision.
package svg
