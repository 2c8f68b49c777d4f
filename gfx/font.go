package gfx

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/marquee"
)

// Font wraps an Ebitengine text/v2 face with a cached line height.
type Font struct {
	face text.Face
	lh   float64
}

// DefaultFont returns the built-in 7x13 bitmap font.
func DefaultFont() *Font {
	return newFont(text.NewGoXFace(basicfont.Face7x13))
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("gfx: failed to parse TTF data: %w", err)
	}
	return newFont(&text.GoTextFace{Source: source, Size: size}), nil
}

func newFont(face text.Face) *Font {
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying face for direct text/v2 rendering.
func (f *Font) Face() text.Face {
	return f.face
}

// NewText creates a text node sized to content in this font.
func (f *Font) NewText(name, content string) *marquee.Node {
	w, h := f.MeasureString(content)
	return marquee.NewText(name, content, w, h)
}

// SetText replaces a text node's content and re-measures it. Engines watching
// the node pick up the new width on their next size check.
func (f *Font) SetText(n *marquee.Node, content string) {
	w, h := f.MeasureString(content)
	n.Text = content
	n.SetSize(w, h)
}
