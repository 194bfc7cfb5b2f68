package render

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// ImageSurface rasterises onto an in-memory image.
// Scale converts logical units into pixels.
type ImageSurface struct {
	Image *image.NRGBA
	Scale float32

	scanner *rasterx.ScannerGV
}

// NewImageSurface allocates a transparent surface of the given pixel size.
func NewImageSurface(width, height int, scale float32) *ImageSurface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if scale <= 0 {
		scale = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	return &ImageSurface{
		Image:   img,
		Scale:   scale,
		scanner: rasterx.NewScannerGV(width, height, img, img.Bounds()),
	}
}

// DrawArc strokes an elliptical arc inscribed in bounds.
func (surface *ImageSurface) DrawArc(bounds Rect, startAngle, sweepAngle float32, stroke Stroke) {
	if surface.blank() || bounds.Empty() || sweepAngle == 0 || stroke.Width <= 0 {
		return
	}
	centerX, centerY := surface.pixels((bounds.Left+bounds.Right)/2, (bounds.Top+bounds.Bottom)/2)
	radiusX, radiusY := surface.pixels(bounds.Width()/2, bounds.Height()/2)

	if math.Abs(float64(sweepAngle)) >= 360 {
		surface.stroke(stroke, func(adder rasterx.Adder) {
			rasterx.AddEllipse(centerX, centerY, radiusX, radiusY, 0, adder)
		})
		return
	}

	startX, startY := pointOnEllipse(centerX, centerY, radiusX, radiusY, startAngle)
	endX, endY := pointOnEllipse(centerX, centerY, radiusX, radiusY, startAngle+sweepAngle)
	largeArc, clockwise := 0.0, 0.0
	if math.Abs(float64(sweepAngle)) > 180 {
		largeArc = 1
	}
	if sweepAngle > 0 {
		clockwise = 1
	}
	surface.stroke(stroke, func(adder rasterx.Adder) {
		adder.Start(rasterx.ToFixedP(startX, startY))
		rasterx.AddArc([]float64{radiusX, radiusY, 0, largeArc, clockwise, endX, endY}, centerX, centerY, startX, startY, adder)
		adder.Stop(false)
	})
}

// DrawRoundRect fills and outlines a rounded rectangle. The radius is clamped
// to half the shorter side, which turns a square into a circle.
func (surface *ImageSurface) DrawRoundRect(bounds Rect, radius float32, fill color.NRGBA, stroke Stroke) {
	if surface.blank() || bounds.Empty() {
		return
	}
	outline := bounds
	if stroke.Width > 0 {
		outline = bounds.Inset(stroke.Width / 2)
		if outline.Empty() {
			outline = bounds
		}
	}
	if half := outline.Width() / 2; radius > half {
		radius = half
	}
	if half := outline.Height() / 2; radius > half {
		radius = half
	}

	minX, minY := surface.pixels(outline.Left, outline.Top)
	maxX, maxY := surface.pixels(outline.Right, outline.Bottom)
	corner := float64(radius * surface.Scale)
	path := func(adder rasterx.Adder) {
		rasterx.AddRoundRect(minX, minY, maxX, maxY, corner, corner, 0, rasterx.RoundGap, adder)
	}

	if fill.A > 0 {
		bounds := surface.Image.Bounds()
		filler := rasterx.NewFiller(bounds.Dx(), bounds.Dy(), surface.scanner)
		filler.SetColor(fill)
		path(filler)
		filler.Draw()
		filler.Clear()
	}
	if stroke.Width > 0 && stroke.Color.A > 0 {
		surface.stroke(stroke, path)
	}
}

func (surface *ImageSurface) blank() bool {
	return surface.Image.Bounds().Empty()
}

func (surface *ImageSurface) stroke(stroke Stroke, path func(rasterx.Adder)) {
	bounds := surface.Image.Bounds()
	dasher := rasterx.NewDasher(bounds.Dx(), bounds.Dy(), surface.scanner)
	dasher.SetColor(stroke.Color)
	dasher.SetStroke(toFixed(stroke.Width*surface.Scale), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	path(dasher)
	dasher.Draw()
	dasher.Clear()
}

func (surface *ImageSurface) pixels(x, y float32) (float64, float64) {
	return float64(x * surface.Scale), float64(y * surface.Scale)
}

// pointOnEllipse uses degrees clockwise from 3 o'clock.
func pointOnEllipse(centerX, centerY, radiusX, radiusY float64, angle float32) (float64, float64) {
	radians := float64(angle) * math.Pi / 180
	return centerX + radiusX*math.Cos(radians), centerY + radiusY*math.Sin(radians)
}

func toFixed(value float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(value) * 64))
}
