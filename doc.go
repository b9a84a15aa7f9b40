// Package sacred composes and animates sacred-geometry motifs: Vesica
// Piscis, the Seed, Egg, Flower and Fruit of Life, and Metatron's Cube.
//
// A motif is a [Recipe]: a short, fixed list of [PlacementSpec] entries that
// place ellipses or regular polygons on polar rings around an origin. Every
// radius and size is a fraction of a single base size, so recipes are
// resolution independent.
//
// # Drawing
//
// The package never talks to a window. All output goes through a [Surface],
// a narrow set of primitives (rect, ellipse, polygon, line, translate,
// push/pop, fill/stroke colour). Use [Recorder] to capture the commands of a
// frame and [Replay] them on a real surface later:
//
//	cat := sacred.DefaultCatalog()
//	rec := sacred.NewRecorder()
//	err := sacred.DrawPattern(rec, cat, sacred.SeedOfLife, sacred.Polygon(6),
//		sacred.Vec2{X: 200, Y: 200}, 100)
//
// The screen sub-package implements Surface on top of [Ebitengine]; the svg
// sub-package writes SVG documents.
//
// # Sketches
//
// A [Sketch] owns the live generation state (hue pair, shape, pattern) and
// the growth animation. Hosts call [Sketch.Tick] once per frame with the
// current time and replay the returned commands:
//
//	sk, err := sacred.NewSketch(sacred.Config{Variant: sacred.VariantGrowth})
//	if err != nil {
//		log.Fatal(err)
//	}
//	sk.OnResize(800, 600)
//	frame := sk.Tick(time.Now())
//	sacred.Replay(frame.Commands, surface)
//
// State snapshots ([GenerationState], [AnimationState]) are plain values.
// Every regeneration produces a new snapshot, so a reader never sees a hue
// change without the matching pattern change.
//
// Sketch is single-threaded, like the frame loop that drives it. Wrap calls
// in a mutex if you drive it from several goroutines.
//
// [Ebitengine]: https://ebitengine.org
package sacred
