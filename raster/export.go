package raster

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/phanxgames/mindweaver"
)

// ExportPadding is the screen-space margin around a fitted export.
const ExportPadding = 40.0

// ExportPNG renders the visible part of g, framed to fit a width×height
// image, and writes it as PNG.
func ExportPNG(w io.Writer, g *mindweaver.Graph, visible []*mindweaver.Bubble, width, height int) error {
	s, err := NewSurface(width, height)
	if err != nil {
		return err
	}
	vp := mindweaver.Fit(visible, float64(width), float64(height), ExportPadding)
	var r mindweaver.Renderer
	r.Render(s, g, vp, visible)
	if err := s.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode: %w", err)
	}
	return nil
}

// MaxReplayFrames bounds a replay so a script that never finishes cannot
// spin forever.
const MaxReplayFrames = 100000

// Replay runs sess with runner attached until the script is done, drawing
// every frame onto a width×height surface and writing queued screenshots to
// dir. It returns the written file paths.
func Replay(sess *mindweaver.Session, runner *mindweaver.ScriptRunner, width, height int, dir string) ([]string, error) {
	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("raster: replay: %w", err)
	}
	runner.Width, runner.Height = float64(width), float64(height)
	sess.SetScriptRunner(runner)
	defer sess.SetScriptRunner(nil)

	const dt = float32(1.0 / 60)
	stamp := time.Now()
	var written []string
	for frame := 0; !runner.Done() || sess.Pending() > 0; frame++ {
		if frame >= MaxReplayFrames {
			return written, fmt.Errorf("raster: replay: script did not finish after %d frames", frame)
		}
		sess.Update(dt)
		labels := sess.TakeScreenshots()
		if len(labels) == 0 {
			continue
		}
		sess.Draw(s)
		for _, label := range labels {
			path := mindweaver.ScreenshotPath(dir, label, stamp, len(written))
			if err := s.SavePNG(path); err != nil {
				return written, err
			}
			written = append(written, filepath.Clean(path))
		}
	}
	return written, nil
}
