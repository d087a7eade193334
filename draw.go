package cardboard

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
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

// drawOrder fills buf with the visible objects sorted by Z. Objects with equal
// Z keep board order.
func (b *Board) drawOrder(buf []*Object) []*Object {
	buf = buf[:0]
	for _, o := range b.list {
		if o.Visible {
			buf = append(buf, o)
		}
	}
	slices.SortStableFunc(buf, func(x, y *Object) int {
		return cmp.Compare(x.Z, y.Z)
	})
	return buf
}

// Draw renders every visible object as its Image, or as a solid rectangle of
// its Color when Image is nil, lowest Z first. Slots draw with their drop-area
// size. Each camera renders into its own viewport; with no camera the board is
// drawn with an identity view.
func (b *Board) Draw(screen *ebiten.Image) {
	b.drawBuf = b.drawOrder(b.drawBuf)

	if len(b.cameras) == 0 {
		b.drawWithView(screen, identityTransform, Rect{}, false)
		return
	}
	for _, cam := range b.cameras {
		view := cam.computeViewMatrix()
		vp := cam.Viewport
		target := screen.SubImage(image.Rect(
			int(vp.X), int(vp.Y),
			int(vp.X+vp.Width), int(vp.Y+vp.Height),
		)).(*ebiten.Image)
		var cull Rect
		if cam.CullEnabled {
			cull = cam.VisibleBounds()
		}
		b.drawWithView(target, view, cull, cam.CullEnabled)
	}
}

func (b *Board) drawWithView(target *ebiten.Image, view [6]float64, cull Rect, culling bool) {
	for _, o := range b.drawBuf {
		size := o.size(b.defaultSize)
		if o.Slot != nil {
			size = o.Slot.Size
		}
		if culling && !centeredRect(o.X, o.Y, size.X, size.Y).Intersects(cull) {
			continue
		}

		img := o.Image
		if img == nil {
			img = WhitePixel()
		}
		ib := img.Bounds()
		if ib.Dx() == 0 || ib.Dy() == 0 {
			continue
		}

		// Map the image onto the unit square, then onto the footprint.
		unit := [6]float64{1 / float64(ib.Dx()), 0, 0, 1 / float64(ib.Dy()), 0, 0}
		m := multiplyAffine(view, multiplyAffine(objectTransform(o, size.X, size.Y, o.Scale), unit))

		var op ebiten.DrawImageOptions
		op.GeoM.SetElement(0, 0, m[0])
		op.GeoM.SetElement(1, 0, m[1])
		op.GeoM.SetElement(0, 1, m[2])
		op.GeoM.SetElement(1, 1, m[3])
		op.GeoM.SetElement(0, 2, m[4])
		op.GeoM.SetElement(1, 2, m[5])
		c := o.Color
		op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
		target.DrawImage(img, &op)
	}
}
