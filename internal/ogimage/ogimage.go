package ogimage

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math/rand"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas dimensions follow the Open Graph recommended card size.
const (
	Width  = 1200
	Height = 630
)

const (
	barCount     = 20
	barWidth     = 14
	barGap       = 16
	barMinHeight = 20
	barMaxHeight = 80
)

var (
	backgroundTop    = color.NRGBA{R: 0x1a, G: 0x1f, B: 0x3a, A: 0xff}
	backgroundBottom = color.NRGBA{R: 0x2d, G: 0x1b, B: 0x69, A: 0xff}
	barBottom        = color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	barTop           = color.NRGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}
	titleColor       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	taglineColor     = color.NRGBA{R: 0xa1, G: 0xa1, B: 0xaa, A: 0xff}
	footerColor      = color.NRGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff}
)

const (
	titleText   = "Stemsync Studio"
	taglineText = "Remix the world, one stem at a time"
	footerText  = "AI-powered stem separation and intuitive mixing tools for creators"
)

// Generate renders the preview card. The rand source drives only the bar
// heights, so the same seed always produces the same image.
func Generate(rng *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillGradient(img, backgroundTop, backgroundBottom)
	drawBars(img, rng)
	drawTextCentered(img, titleText, 5, 180, titleColor)
	drawTextCentered(img, taglineText, 2, 270, taglineColor)
	drawTextCentered(img, footerText, 2, 560, footerColor)
	return img
}

// EncodePNG renders the card for the given seed and writes it as PNG.
func EncodePNG(w io.Writer, seed int64) error {
	return png.Encode(w, Generate(rand.New(rand.NewSource(seed))))
}

func fillGradient(img *image.RGBA, top, bottom color.NRGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		c := lerpColor(top, bottom, float64(y-bounds.Min.Y)/float64(bounds.Dy()-1))
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
}

// drawBars paints the equalizer strip centered horizontally, bars rising from
// a shared baseline with heights drawn uniformly from [barMinHeight, barMaxHeight].
func drawBars(img *image.RGBA, rng *rand.Rand) {
	const baseline = 460
	total := barCount*barWidth + (barCount-1)*barGap
	left := (Width - total) / 2
	for i := 0; i < barCount; i++ {
		height := barMinHeight + rng.Intn(barMaxHeight-barMinHeight+1)
		x0 := left + i*(barWidth+barGap)
		for y := baseline - height; y < baseline; y++ {
			t := float64(baseline-y) / float64(barMaxHeight)
			c := lerpColor(barBottom, barTop, t)
			for x := x0; x < x0+barWidth; x++ {
				img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
			}
		}
	}
}

// drawTextCentered rasterizes s with the builtin 7x13 face, scales it up by
// an integer factor, and blits it horizontally centered with its top at y.
func drawTextCentered(img *image.RGBA, s string, scale, y int, c color.NRGBA) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, s).Ceil()
	if width <= 0 {
		return
	}
	glyph := image.NewRGBA(image.Rect(0, 0, width, face.Height))
	drawer := font.Drawer{
		Dst:  glyph,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(s)

	left := (Width - width*scale) / 2
	for gy := 0; gy < face.Height; gy++ {
		for gx := 0; gx < width; gx++ {
			src := glyph.RGBAAt(gx, gy)
			if src.A == 0 {
				continue
			}
			block := image.Rect(left+gx*scale, y+gy*scale, left+(gx+1)*scale, y+(gy+1)*scale)
			draw.Draw(img, block, image.NewUniform(src), image.Point{}, draw.Over)
		}
	}
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.NRGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 0xff,
	}
}
