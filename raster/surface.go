// Package raster draws mind maps into in-memory images with fogleman/gg.
// It backs PNG export and headless replay screenshots.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/mindweaver"
)

// Background is the clear color of a fresh surface.
var Background = color.White

// Surface is a mindweaver.Surface backed by a gg context. The world
// transform is applied here rather than on the gg matrix so that stroke
// widths and font sizes scale with the zoom.
type Surface struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face

	ox, oy, scale float64
}

var _ mindweaver.Surface = (*Surface)(nil)

// NewSurface returns a w×h surface cleared to Background.
func NewSurface(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", w, h)
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	s := &Surface{
		dc:    gg.NewContext(w, h),
		font:  f,
		faces: make(map[float64]font.Face),
		scale: 1,
	}
	s.Clear()
	return s, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// Clear resets the transform and fills the surface with Background.
func (s *Surface) Clear() {
	s.ox, s.oy, s.scale = 0, 0, 1
	s.dc.Identity()
	s.dc.SetColor(Background)
	s.dc.Clear()
}

// SetTransform replaces the world transform.
func (s *Surface) SetTransform(offsetX, offsetY, scale float64) {
	s.ox, s.oy, s.scale = offsetX, offsetY, scale
}

func (s *Surface) pt(x, y float64) (float64, float64) {
	return x*s.scale + s.ox, y*s.scale + s.oy
}

// StrokeLine draws a line.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c mindweaver.Color) {
	ax, ay := s.pt(x0, y0)
	bx, by := s.pt(x1, y1)
	s.dc.SetColor(c.RGBA())
	s.dc.SetLineWidth(width * s.scale)
	s.dc.DrawLine(ax, ay, bx, by)
	s.dc.Stroke()
}

// FillCircle draws a filled circle.
func (s *Surface) FillCircle(cx, cy, r float64, c mindweaver.Color) {
	x, y := s.pt(cx, cy)
	s.dc.SetColor(c.RGBA())
	s.dc.DrawCircle(x, y, r*s.scale)
	s.dc.Fill()
}

// StrokeCircle draws a circle outline.
func (s *Surface) StrokeCircle(cx, cy, r, width float64, c mindweaver.Color) {
	x, y := s.pt(cx, cy)
	s.dc.SetColor(c.RGBA())
	s.dc.SetLineWidth(width * s.scale)
	s.dc.DrawCircle(x, y, r*s.scale)
	s.dc.Stroke()
}

// DrawText draws s centered on (x, y).
func (s *Surface) DrawText(str string, x, y, size float64, c mindweaver.Color) {
	px := size * s.scale
	if px < 1 {
		return
	}
	sx, sy := s.pt(x, y)
	s.dc.SetFontFace(s.face(px))
	s.dc.SetColor(c.RGBA())
	s.dc.DrawStringAnchored(str, sx, sy, 0.5, 0.5)
}

// maxFaces bounds the face cache. A continuous zoom produces a new size on
// almost every frame.
const maxFaces = 32

// face returns a cached face for the pixel size, rounded to a quarter point.
func (s *Surface) face(px float64) font.Face {
	key := math.Round(px*4) / 4
	if f, ok := s.faces[key]; ok {
		return f
	}
	if len(s.faces) >= maxFaces {
		for k, f := range s.faces {
			f.Close()
			delete(s.faces, k)
		}
	}
	f := truetype.NewFace(s.font, &truetype.Options{
		Size:    key,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	s.faces[key] = f
	return f
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := s.dc.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}
