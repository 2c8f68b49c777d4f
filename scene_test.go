package marquee

import (
	"errors"
	"math"
	"testing"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil {
		t.Fatal("Root should not be nil")
	}
	if s.Root().Name != "root" {
		t.Errorf("Root().Name = %q, want %q", s.Root().Name, "root")
	}
	if s.Animator().Len() != 0 {
		t.Error("new scene should have no timelines")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !globalDebug {
		t.Error("globalDebug should be true")
	}
	s.SetDebugMode(false)
	if globalDebug {
		t.Error("globalDebug should be false")
	}
}

// sceneStrip builds root > viewport(500) > strip > content(200).
func sceneStrip(s *Scene) (viewport, strip, content *Node) {
	viewport = NewContainer("viewport")
	viewport.Key = "viewport"
	viewport.SetSize(500, 20)
	strip = NewContainer("ticker")
	content = NewText("headline", "breaking", 200, 20)
	strip.AddChild(content)
	viewport.AddChild(strip)
	s.Root().AddChild(viewport)
	return viewport, strip, content
}

func newSceneMarquee(t *testing.T) (*Scene, *Engine, *Node, *Node) {
	t.Helper()
	s := NewScene()
	viewport, strip, _ := sceneStrip(s)
	cfg := DefaultConfig()
	cfg.ReducedMotion = false
	e := s.NewMarquee(strip, &cfg)
	e.Initialize(nil)
	return s, e, viewport, strip
}

func assertX(t *testing.T, n *Node, want float64) {
	t.Helper()
	if math.Abs(n.X-want) > 0.01 {
		t.Errorf("%s X = %v, want %v", n.Name, n.X, want)
	}
}

func TestSceneMarqueeScrolls(t *testing.T) {
	s, e, _, strip := newSceneMarquee(t)
	if e.Clones() != 4 {
		t.Fatalf("Clones = %d, want 4", e.Clones())
	}
	if err := s.Update(0.5); err != nil {
		t.Fatal(err)
	}
	assertX(t, strip, -50)

	// World positions are refreshed in the same frame.
	x, _ := strip.ChildAt(1).WorldPosition()
	if math.Abs(x-150) > 0.01 {
		t.Errorf("first clone world X = %v, want 150", x)
	}
}

func TestSceneMarqueeReverseIsSeamless(t *testing.T) {
	s, e, _, strip := newSceneMarquee(t)
	_ = s.Update(0.5)
	assertX(t, strip, -50)

	e.Reverse()
	assertX(t, strip, -50)

	_ = s.Update(0.25)
	assertX(t, strip, -25)
}

func TestSceneMarqueeSpeedChangeIsSeamless(t *testing.T) {
	s, e, _, strip := newSceneMarquee(t)
	_ = s.Update(0.5)

	e.SetSpeed(200)
	assertX(t, strip, -50)

	_ = s.Update(0.25)
	assertX(t, strip, -100)
}

func TestSceneMarqueeResizeKeepsPosition(t *testing.T) {
	s, e, viewport, strip := newSceneMarquee(t)
	_ = s.Update(0.5)

	viewport.SetSize(1000, 20)
	_ = s.Update(0)

	if e.Clones() != 9 {
		t.Errorf("Clones = %d, want 9", e.Clones())
	}
	assertX(t, strip, -50)
	if s.Animator().Len() != 1 {
		t.Errorf("live timelines = %d, want 1", s.Animator().Len())
	}
}

func TestSceneMarqueePause(t *testing.T) {
	s, e, _, strip := newSceneMarquee(t)
	_ = s.Update(0.5)
	e.Pause()
	_ = s.Update(1)
	assertX(t, strip, -50)
	e.Play()
	_ = s.Update(0.5)
	assertX(t, strip, -100)
}

func TestSceneMarqueeLookup(t *testing.T) {
	s, e, _, _ := newSceneMarquee(t)
	if s.Marquee("ticker") != e {
		t.Error("Marquee should find the engine by container name")
	}
	if s.Marquee("missing") != nil {
		t.Error("unknown name should return nil")
	}
	if len(s.Marquees()) != 1 {
		t.Errorf("Marquees = %d, want 1", len(s.Marquees()))
	}
}

func TestSceneDestroy(t *testing.T) {
	s, e, _, strip := newSceneMarquee(t)
	_ = s.Update(0.5)
	s.Destroy()

	if !e.State().IsDestroyed {
		t.Error("engine should be destroyed")
	}
	if s.Animator().Len() != 0 {
		t.Error("all timelines should be cancelled")
	}
	if strip.NumChildren() != 1 {
		t.Errorf("strip has %d children, want 1", strip.NumChildren())
	}
	assertX(t, strip, 0)
	if len(s.Marquees()) != 0 {
		t.Error("scene should forget destroyed engines")
	}
}

func TestSceneUpdateFunc(t *testing.T) {
	s := NewScene()
	calls := 0
	s.SetUpdateFunc(func() error {
		calls++
		return nil
	})
	if err := s.Update(0.016); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	boom := errors.New("boom")
	s.SetUpdateFunc(func() error { return boom })
	if err := s.Update(0.016); !errors.Is(err, boom) {
		t.Errorf("Update error = %v, want %v", err, boom)
	}
}
