// Package marquee scrolls a strip of content endlessly inside a viewport,
// the way ticker text, logo rows and badge strips do.
//
// The content lives in a small retained scene graph of [Node] values. An
// [Engine] tiles copies of the content until the strip covers twice the
// viewport, then hands the motion to a looping [Timeline] obtained from its
// [Host]. The engine never computes positions per frame; it only builds,
// steers and rebuilds timelines.
//
// # Quick start
//
//	scene := marquee.NewScene()
//	viewport := marquee.NewContainer("viewport")
//	viewport.SetSize(640, 32)
//	viewport.Clip = true
//	scene.Root().AddChild(viewport)
//
//	strip := marquee.NewContainer("strip")
//	viewport.AddChild(strip)
//	strip.AddChild(marquee.NewText("headline", "Breaking news  ", 210, 13))
//
//	m := scene.NewMarquee(strip, nil)
//	m.Initialize(nil)
//
//	// once per frame:
//	scene.Update(1.0 / 60)
//
// The gfx package draws a Scene with Ebitengine and the term package drives
// one from a bubbletea program.
//
// # Seamless changes
//
// Speed changes, direction changes and resizes all rebuild the timeline. The
// engine reads the old timeline's progress first and seeks the new one to the
// equivalent position (the mirrored position when the direction flips), so
// the strip never jumps. Pure rate changes in the same direction only adjust
// the playback rate.
//
// # Hosts
//
// [Scene] is the default [Host]: a gween-backed [TweenAnimator] for timelines
// and a polling [SizeWatcher] for resize notifications, both advanced by
// [Scene.Update]. Any other implementation of [Host] works, which is how the
// engine is tested without a renderer.
package marquee
