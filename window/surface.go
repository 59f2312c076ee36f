package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/mindweaver"
)

// Background is the canvas clear color.
var Background = color.NRGBA{0xf4, 0xf4, 0xf4, 0xff}

// loadFontSource parses the built-in Go Regular font.
func loadFontSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("mindweaver: parse font: %w", err)
	}
	return src, nil
}

// Surface is a mindweaver.Surface drawing onto an ebiten.Image with the
// vector and text/v2 packages.
type Surface struct {
	dst *ebiten.Image
	src *text.GoTextFaceSource

	ox, oy, scale float64
}

var _ mindweaver.Surface = (*Surface)(nil)

// NewSurface returns a surface over dst.
func NewSurface(dst *ebiten.Image, src *text.GoTextFaceSource) *Surface {
	return &Surface{dst: dst, src: src, scale: 1}
}

// Clear resets the transform and fills the image with Background.
func (s *Surface) Clear() {
	s.ox, s.oy, s.scale = 0, 0, 1
	s.dst.Fill(Background)
}

// SetTransform replaces the world transform.
func (s *Surface) SetTransform(offsetX, offsetY, scale float64) {
	s.ox, s.oy, s.scale = offsetX, offsetY, scale
}

func (s *Surface) pt(x, y float64) (float32, float32) {
	return float32(x*s.scale + s.ox), float32(y*s.scale + s.oy)
}

// StrokeLine draws a line.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c mindweaver.Color) {
	ax, ay := s.pt(x0, y0)
	bx, by := s.pt(x1, y1)
	vector.StrokeLine(s.dst, ax, ay, bx, by, float32(width*s.scale), c.RGBA(), true)
}

// FillCircle draws a filled circle.
func (s *Surface) FillCircle(cx, cy, r float64, c mindweaver.Color) {
	x, y := s.pt(cx, cy)
	vector.DrawFilledCircle(s.dst, x, y, float32(r*s.scale), c.RGBA(), true)
}

// StrokeCircle draws a circle outline.
func (s *Surface) StrokeCircle(cx, cy, r, width float64, c mindweaver.Color) {
	x, y := s.pt(cx, cy)
	vector.StrokeCircle(s.dst, x, y, float32(r*s.scale), float32(width*s.scale), c.RGBA(), true)
}

// DrawText draws str centered on (x, y).
func (s *Surface) DrawText(str string, x, y, size float64, c mindweaver.Color) {
	px := size * s.scale
	if px < 1 {
		return
	}
	sx, sy := s.pt(x, y)
	drawCentered(s.dst, str, &text.GoTextFace{Source: s.src, Size: px}, float64(sx), float64(sy), c.RGBA())
}

func drawCentered(dst *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, str, face, op)
}

func drawLeft(dst *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}
