package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
)

var (
	fontOnce sync.Once
	ttf      *truetype.Font
	ttfErr   error
)

// defaultFont loads go-chart's bundled font once per process.
func defaultFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		ttf, ttfErr = chart.GetDefaultFont()
	})
	return ttf, ttfErr
}

// faceOf returns a face of the given pixel size, falling back to the fixed 7x13 face
// when the bundled font cannot be loaded.
func faceOf(size float64) font.Face {
	f, err := defaultFont()
	if err != nil || f == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// textBlock measures a multi-line string.
func textBlock(face font.Face, text string) (lines []string, w, lineH int) {
	lines = strings.Split(text, "\n")
	for _, l := range lines {
		if lw := font.MeasureString(face, l).Ceil(); lw > w {
			w = lw
		}
	}
	return lines, w, face.Metrics().Height.Ceil()
}

// blockOrigin returns the top-left corner of a w x h block aligned at (x, y).
func blockOrigin(x, y, w, h int, ha chartspec.HAlign, va chartspec.VAlign) (int, int) {
	switch ha {
	case chartspec.AlignCenter:
		x -= w / 2
	case chartspec.AlignRight:
		x -= w
	}
	switch va {
	case chartspec.AlignMiddle:
		y -= h / 2
	case chartspec.AlignBottom:
		y -= h
	}
	return x, y
}

// drawText writes multi-line text onto dst, aligned at (x, y). Each line is aligned on
// its own within the block. Returns the block's bounds.
func drawText(dst *image.RGBA, face font.Face, text string, x, y int, ha chartspec.HAlign, va chartspec.VAlign, col color.Color) image.Rectangle {
	lines, w, lineH := textBlock(face, text)
	h := lineH * len(lines)
	left, top := blockOrigin(x, y, w, h, ha, va)
	ascent := face.Metrics().Ascent.Ceil()
	dr := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	for i, l := range lines {
		lw := font.MeasureString(face, l).Ceil()
		lx := left
		switch ha {
		case chartspec.AlignCenter:
			lx = left + (w-lw)/2
		case chartspec.AlignRight:
			lx = left + w - lw
		}
		dr.Dot = fixed.Point26_6{X: fixed.I(lx), Y: fixed.I(top + i*lineH + ascent)}
		dr.DrawString(l)
	}
	return image.Rect(left, top, left+w, top+h)
}

// drawBoxedText draws text over a padded white box with a thin border.
func drawBoxedText(dst *image.RGBA, face font.Face, text string, x, y int, ha chartspec.HAlign, va chartspec.VAlign) {
	lines, w, lineH := textBlock(face, text)
	h := lineH * len(lines)
	left, top := blockOrigin(x, y, w, h, ha, va)
	pad := lineH / 2
	box := image.Rect(left-pad, top-pad, left+w+pad, top+h+pad)
	draw.Draw(dst, box, image.NewUniform(color.RGBA{R: 60, G: 60, B: 60, A: 255}), image.Point{}, draw.Src)
	draw.Draw(dst, box.Inset(1), image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 235}), image.Point{}, draw.Over)
	drawText(dst, face, text, x, y, ha, va, color.RGBA{R: 20, G: 20, B: 20, A: 255})
}

// drawHint draws a small hint string onto the image near the bottom-left, white on a
// translucent dark strip.
func drawHint(rgba *image.RGBA, text string) {
	if rgba == nil || strings.TrimSpace(text) == "" {
		return
	}
	b := rgba.Bounds()
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
}

// rendererText draws aligned multi-line text through a go-chart renderer, whose Text
// call takes the baseline position.
func rendererText(r chart.Renderer, text string, x, y int, size float64, col drawing.Color, ha chartspec.HAlign, va chartspec.VAlign) {
	r.SetFontSize(size)
	r.SetFontColor(col)
	lines := strings.Split(text, "\n")
	w, lineH := 0, 0
	for _, l := range lines {
		b := r.MeasureText(l)
		w = max(w, b.Width())
		lineH = max(lineH, b.Height())
	}
	lineH = int(math.Ceil(float64(lineH) * 1.25))
	left, top := blockOrigin(x, y, w, lineH*len(lines), ha, va)
	for i, l := range lines {
		lw := r.MeasureText(l).Width()
		lx := left
		switch ha {
		case chartspec.AlignCenter:
			lx = left + (w-lw)/2
		case chartspec.AlignRight:
			lx = left + w - lw
		}
		r.Text(l, lx, top+(i+1)*lineH-lineH/5)
	}
}

// fontSizeFor scales label text with the panel's shorter side.
func fontSizeFor(w, h int) float64 {
	s := float64(min(w, h)) / 32
	return math.Min(math.Max(s, 8), 14)
}
