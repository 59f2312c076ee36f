package window

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/mindweaver"
)

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of Draw.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	labels := g.sess.TakeScreenshots()
	if len(labels) == 0 {
		return
	}

	dir := g.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[mindweaver] screenshot: mkdir %s: %v\n", dir, err)
		return
	}

	img := capture(screen)
	now := time.Now()
	for i, label := range labels {
		path := mindweaver.ScreenshotPath(dir, label, now, i)
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[mindweaver] screenshot: %v\n", err)
			continue
		}
		g.flash("saved " + path)
	}
}

// capture reads back the frame as straight-alpha NRGBA.
func capture(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, gr, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			gr = uint8(min(int(gr)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = gr
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
