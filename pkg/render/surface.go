package render

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/slipstream-dev/hotlap/pkg/track"
)

// Canvas applies command lists to an Ebiten image. Sprites are generated
// procedurally once at construction; a command referencing a sprite the
// canvas does not have is skipped rather than failing the frame.
type Canvas struct {
	sprites map[track.ObjectKind]*ebiten.Image
	car     *ebiten.Image
	face    *text.GoXFace
	white   *ebiten.Image
}

// NewCanvas builds a canvas with its generated sprite set.
func NewCanvas() *Canvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Canvas{
		sprites: map[track.ObjectKind]*ebiten.Image{
			track.ObjectTree:    makeTree(),
			track.ObjectStand:   makeStand(),
			track.ObjectBoard:   makeBoard(),
			track.ObjectBarrier: makeBarrier(),
		},
		car:   makeCar(),
		face:  text.NewGoXFace(bitmapfont.Face),
		white: white,
	}
}

// Apply paints the commands onto dst in order.
func (c *Canvas) Apply(dst *ebiten.Image, cmds []Command) {
	for _, cmd := range cmds {
		switch v := cmd.(type) {
		case RectCmd:
			vector.DrawFilledRect(dst, float32(v.X), float32(v.Y), float32(v.W), float32(v.H), v.Color, false)
		case QuadCmd:
			c.fillQuad(dst, v)
		case SpriteCmd:
			img, ok := c.sprites[v.Kind]
			if !ok || img == nil {
				continue
			}
			c.drawAnchored(dst, img, v.X, v.Y, v.Scale)
		case CarCmd:
			op := &ebiten.DrawImageOptions{}
			w, h := c.car.Bounds().Dx(), c.car.Bounds().Dy()
			op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
			op.GeoM.Rotate(v.Steer * 0.12)
			op.GeoM.Translate(v.X, v.Y)
			dst.DrawImage(c.car, op)
		case TextCmd:
			op := &text.DrawOptions{}
			op.GeoM.Scale(v.Scale, v.Scale)
			op.GeoM.Translate(v.X, v.Y)
			op.ColorScale.ScaleWithColor(v.Color)
			text.Draw(dst, v.S, c.face, op)
		}
	}
}

// fillQuad rasterizes a trapezoid as two triangles over the white source.
func (c *Canvas) fillQuad(dst *ebiten.Image, q QuadCmd) {
	src := c.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	a := float32(q.Color.A) / 255
	r := float32(q.Color.R) / 255 * a
	g := float32(q.Color.G) / 255 * a
	b := float32(q.Color.B) / 255 * a

	vx := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1.5, SrcY: 1.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	vs := []ebiten.Vertex{
		vx(q.X1-q.W1, q.Y1),
		vx(q.X1+q.W1, q.Y1),
		vx(q.X2+q.W2, q.Y2),
		vx(q.X2-q.W2, q.Y2),
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	dst.DrawTriangles(vs, is, src, nil)
}

// drawAnchored draws a sprite scaled, anchored at its bottom-center.
func (c *Canvas) drawAnchored(dst *ebiten.Image, img *ebiten.Image, x, y, scale float64) {
	if scale <= 0 {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-float64(w)*scale/2, y-float64(h)*scale)
	dst.DrawImage(img, op)
}

// makeTree draws a layered pine, same technique as the title backdrop art.
func makeTree() *ebiten.Image {
	const w, h = 24, 40
	img := ebiten.NewImage(w, h)
	rng := rand.New(rand.NewSource(101))

	trunk := color.RGBA{60, 40, 20, 255}
	for y := h - 10; y < h; y++ {
		for x := w/2 - 2; x < w/2+2; x++ {
			img.Set(x, y, trunk)
		}
	}
	for layer := 0; layer < 3; layer++ {
		leaves := color.RGBA{uint8(20 + rng.Intn(20)), uint8(90 + rng.Intn(50)), uint8(20 + rng.Intn(20)), 255}
		top := layer * 9
		for y := 0; y < 14; y++ {
			rowW := (w - layer*4) * y / 14
			for x := w/2 - rowW/2; x < w/2+rowW/2; x++ {
				if x >= 0 && x < w && top+y < h-8 {
					img.Set(x, top+y, leaves)
				}
			}
		}
	}
	return img
}

// makeStand draws a grandstand block with a crowd speckle.
func makeStand() *ebiten.Image {
	const w, h = 48, 30
	img := ebiten.NewImage(w, h)
	rng := rand.New(rand.NewSource(202))

	img.Fill(color.RGBA{120, 120, 130, 255})
	roof := color.RGBA{200, 40, 40, 255}
	for y := 0; y < 5; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, roof)
		}
	}
	for i := 0; i < 160; i++ {
		x := rng.Intn(w)
		y := 7 + rng.Intn(h-10)
		shade := uint8(150 + rng.Intn(100))
		img.Set(x, y, color.RGBA{shade, uint8(rng.Intn(200)), uint8(rng.Intn(200)), 255})
	}
	return img
}

// makeBoard draws a sponsor hoarding on two posts.
func makeBoard() *ebiten.Image {
	const w, h = 40, 22
	img := ebiten.NewImage(w, h)

	post := color.RGBA{80, 80, 80, 255}
	for y := h - 6; y < h; y++ {
		for x := 3; x < 6; x++ {
			img.Set(x, y, post)
			img.Set(w-1-x, y, post)
		}
	}
	face := color.RGBA{240, 240, 240, 255}
	stripe := color.RGBA{20, 60, 180, 255}
	for y := 0; y < h-6; y++ {
		for x := 0; x < w; x++ {
			c := face
			if y < 4 || y > h-11 {
				c = stripe
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// makeBarrier draws a red/white striped wall section.
func makeBarrier() *ebiten.Image {
	const w, h = 44, 12
	img := ebiten.NewImage(w, h)
	red := color.RGBA{200, 30, 30, 255}
	white := color.RGBA{235, 235, 235, 255}
	for x := 0; x < w; x++ {
		c := red
		if (x/8)%2 == 1 {
			c = white
		}
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// makeCar draws the rear view of the player car.
func makeCar() *ebiten.Image {
	const w, h = 56, 36
	img := ebiten.NewImage(w, h)

	body := color.RGBA{220, 20, 20, 255}
	roof := color.RGBA{180, 15, 15, 255}
	glass := color.RGBA{100, 180, 220, 255}
	wheel := color.RGBA{30, 30, 30, 255}
	light := color.RGBA{255, 60, 40, 255}

	for y := 10; y < h-4; y++ {
		for x := 4; x < w-4; x++ {
			img.Set(x, y, body)
		}
	}
	for y := 0; y < 12; y++ {
		for x := 12; x < w-12; x++ {
			img.Set(x, y, roof)
		}
	}
	for y := 3; y < 10; y++ {
		for x := 15; x < w-15; x++ {
			img.Set(x, y, glass)
		}
	}
	for y := h - 10; y < h; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, wheel)
			img.Set(w-1-x, y, wheel)
		}
	}
	for y := 14; y < 18; y++ {
		for x := 7; x < 13; x++ {
			img.Set(x, y, light)
			img.Set(w-1-x, y, light)
		}
	}
	return img
}
