package gfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/marquee"
)

// whitePixel is a 1x1 white image scaled and tinted for rect nodes.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Renderer draws a marquee scene graph onto an Ebitengine image.
type Renderer struct {
	Font *Font
}

// NewRenderer returns a renderer using font, or DefaultFont when nil.
func NewRenderer(font *Font) *Renderer {
	if font == nil {
		font = DefaultFont()
	}
	return &Renderer{Font: font}
}

// Draw renders root and its visible descendants at their world positions.
// Nodes with Clip set restrict their subtree to their own bounds.
func (r *Renderer) Draw(dst *ebiten.Image, root *marquee.Node) {
	r.draw(dst, root, 1)
}

func (r *Renderer) draw(dst *ebiten.Image, n *marquee.Node, parentAlpha float64) {
	if !n.Visible || n.IsDisposed() {
		return
	}
	alpha := parentAlpha * n.Alpha
	b := n.Bounds()

	switch n.Type {
	case marquee.NodeTypeRect:
		if onScreen(dst, b) {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(b.Width, b.Height)
			op.GeoM.Translate(b.X, b.Y)
			scaleColor(&op.ColorScale, n.Color, alpha)
			dst.DrawImage(whitePixel, op)
		}
	case marquee.NodeTypeText:
		if onScreen(dst, b) && n.Text != "" {
			op := &text.DrawOptions{}
			op.GeoM.Translate(b.X, b.Y)
			op.LineSpacing = r.Font.LineHeight()
			scaleColor(&op.ColorScale, n.Color, alpha)
			text.Draw(dst, n.Text, r.Font.Face(), op)
		}
	}

	target := dst
	if n.Clip {
		clip := image.Rect(int(b.X), int(b.Y), int(b.X+b.Width), int(b.Y+b.Height)).Intersect(dst.Bounds())
		if clip.Empty() {
			return
		}
		target = dst.SubImage(clip).(*ebiten.Image)
	}
	for _, c := range n.Children() {
		r.draw(target, c, alpha)
	}
}

// onScreen reports whether b overlaps dst at all. Off-screen clones are
// skipped here rather than in the scene graph.
func onScreen(dst *ebiten.Image, b marquee.Rect) bool {
	db := dst.Bounds()
	return b.Intersects(marquee.Rect{
		X:      float64(db.Min.X),
		Y:      float64(db.Min.Y),
		Width:  float64(db.Dx()),
		Height: float64(db.Dy()),
	})
}

// scaleColor applies a straight-alpha tint as a premultiplied color scale.
func scaleColor(cs *ebiten.ColorScale, c marquee.Color, alpha float64) {
	a := c.A * alpha
	cs.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
}

// toRGBA converts a marquee color to a premultiplied color.RGBA.
func toRGBA(c marquee.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
