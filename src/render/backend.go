// Package render draws composed report layouts into raster images. Panels are drawn
// with go-chart; figure-level text is laid over the composed image with x/image font
// drawers.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/layout"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/logging"
)

// DefaultBackground is used when a layout names no background.
const DefaultBackground = "#f8f8f8"

// Backend renders PanelLayouts. It keeps no per-render state and is safe for
// concurrent use.
type Backend struct {
	width int
	stamp string
}

// Option configures a Backend.
type Option func(*Backend)

// WithWidth renders at the given pixel width instead of the layout's own size. The
// height follows the layout's aspect ratio.
func WithWidth(w int) Option {
	return func(b *Backend) { b.width = w }
}

// WithStamp draws a small hint string in the bottom-left corner of every figure.
func WithStamp(s string) Option {
	return func(b *Backend) { b.stamp = s }
}

// New returns a Backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Size returns the pixel size a layout will be rendered at.
func (b *Backend) Size(pl layout.PanelLayout) (int, int) {
	size := pl.Size
	if size.Width <= 0 || size.Height <= 0 {
		size = layout.DefaultSize
	}
	if b.width <= 0 {
		return size.Width, size.Height
	}
	return ComputeFigureDimensions(b.width, float64(size.Height)/float64(size.Width))
}

// Render draws the whole figure.
func (b *Backend) Render(ctx context.Context, pl layout.PanelLayout) (*image.RGBA, error) {
	defer logging.TimeTrack(time.Now(), "render figure")
	if len(pl.Panels) == 0 {
		return nil, layout.ErrNoPanels
	}
	bgHex := pl.Background
	if bgHex == "" {
		bgHex = DefaultBackground
	}
	bg, err := ParseHex(bgHex)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	w, h := b.Size(pl)
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	var deferred []chartspec.Annotation
	for i, pp := range pl.Panels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rect := pixelRect(pp.Rect, w, h)
		img, figTexts, err := b.RenderPanel(pp.Spec, pp.Title, rect.Dx(), rect.Dy(), bg)
		if err != nil {
			return nil, fmt.Errorf("panel %d (%s): %w", i, pp.Spec.Kind, err)
		}
		draw.Draw(canvas, rect, img, image.Point{}, draw.Src)
		deferred = append(deferred, figTexts...)
	}

	base := math.Max(float64(h)/60, 11)
	ink := color.RGBA{R: 34, G: 34, B: 34, A: 255}
	if pl.Title != "" {
		drawText(canvas, faceOf(base*1.8), pl.Title, w/2, int(0.025*float64(h)), chartspec.AlignCenter, chartspec.AlignTop, ink)
	}
	for _, a := range deferred {
		pt := figurePixel(a.Anchor, w, h)
		drawText(canvas, faceOf(base), a.Text, pt.X, pt.Y, a.HAlign, a.VAlign, ink)
	}
	if s := pl.Summary; s != nil {
		pt := figurePixel(s.Anchor, w, h)
		if s.Boxed {
			drawBoxedText(canvas, faceOf(base*1.15), s.Text, pt.X, pt.Y, s.HAlign, s.VAlign)
		} else {
			drawText(canvas, faceOf(base*1.15), s.Text, pt.X, pt.Y, s.HAlign, s.VAlign, ink)
		}
	}
	for _, t := range pl.Texts {
		pt := figurePixel(t.Anchor, w, h)
		if t.Boxed {
			drawBoxedText(canvas, faceOf(base), t.Text, pt.X, pt.Y, t.HAlign, t.VAlign)
			continue
		}
		drawText(canvas, faceOf(base), t.Text, pt.X, pt.Y, t.HAlign, t.VAlign, ink)
	}
	drawHint(canvas, b.stamp)

	logging.Debug().Add(logging.Panels(len(pl.Panels))).Add(logging.Str("size", fmt.Sprintf("%dx%d", w, h))).Msg("figure rendered")
	return canvas, nil
}

// RenderPNG renders pl and writes it as PNG.
func (b *Backend) RenderPNG(ctx context.Context, pl layout.PanelLayout, out io.Writer) error {
	img, err := b.Render(ctx, pl)
	if err != nil {
		return err
	}
	return png.Encode(out, img)
}

// RenderPanel draws a single chart into a w x h image. Annotations anchored in figure
// space are returned for the caller to place.
func (b *Backend) RenderPanel(spec chartspec.ChartSpec, title string, w, h int, bg drawing.Color) (image.Image, []chartspec.Annotation, error) {
	p, err := newPanel(spec, title, w, h, bg)
	if err != nil {
		return nil, nil, err
	}
	var img image.Image
	switch spec.Kind {
	case chartspec.Donut, chartspec.Pie:
		img, err = p.drawCircular()
	case chartspec.HorizontalBar:
		img, err = p.drawBars()
	case chartspec.StackedArea:
		img, err = p.drawStacked()
	default:
		return nil, nil, &chartspec.UnsupportedKindError{Kind: spec.Kind}
	}
	if err != nil {
		return nil, nil, err
	}
	return img, p.figure, nil
}

// pixelRect converts a figure-fraction rectangle (origin bottom-left) into image
// pixels (origin top-left).
func pixelRect(r layout.Rect, w, h int) image.Rectangle {
	x0 := int(math.Round(r.X * float64(w)))
	x1 := int(math.Round((r.X + r.W) * float64(w)))
	y0 := int(math.Round((1 - r.Y - r.H) * float64(h)))
	y1 := int(math.Round((1 - r.Y) * float64(h)))
	return image.Rect(x0, y0, x1, y1)
}
