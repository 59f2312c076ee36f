package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fpsWidget shows FPS and TPS in the top-right corner, refreshed about
// every half second.
type fpsWidget struct {
	label string
	since float64
}

func (f *fpsWidget) update(dt float64) {
	f.since += dt
	if f.label != "" && f.since < 0.5 {
		return
	}
	f.since = 0
	f.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (f *fpsWidget) draw(dst *ebiten.Image) {
	x := dst.Bounds().Dx() - 100
	// Semi-transparent background for readability
	vector.DrawFilledRect(dst, float32(x), 0, 100, 32, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(dst, f.label, x+4, 0)
}
