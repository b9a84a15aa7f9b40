// Package screen hosts a [sacred.Sketch] in an Ebitengine window.
//
// [Surface] implements [sacred.Surface] on an *ebiten.Image, so a frame's
// recorded commands replay straight onto the screen. [Run] wires pointer
// and keyboard input, a resizable window and the control [Overlay]:
//
//	sk, err := sacred.NewSketch(sacred.Config{Variant: sacred.VariantGrowth})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := screen.Run(sk, screen.RunConfig{Title: "Growth", ShowFPS: true}); err != nil {
//		log.Fatal(err)
//	}
//
// The growth variant's overlay is just the regenerate button; the others
// add the shape selector and pattern label, and the blend variant a blend
// mode selector.
//
// Key bindings:
//
//	1-7      select shape (Circle, Triangle ... Octagon)
//	P        next pattern in the pool
//	R        regenerate
//	B        next blend mode
//	F        toggle the FPS widget
//	Ctrl+S   save a screenshot
//
// For automated runs, [LoadScript] parses a JSON list of clicks, key
// presses, waits and screenshots that is stepped once per frame.
package screen
