// Package window is the interactive desktop front end of mindweaver, built
// on Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/mindweaver"
)

// Config configures the window.
type Config struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ScreenshotDir receives F12 and scripted screenshots.
	ScreenshotDir string
	// TransferFile is the file Ctrl+S exports to and Ctrl+O imports from.
	TransferFile string
}

const (
	statusDuration = 4 * time.Second
	scrollDuration = 400 * time.Millisecond
)

var (
	badgeColor = color.NRGBA{0x6b, 0x5b, 0x95, 0xe0}
	errorColor = color.NRGBA{0xc0, 0x30, 0x30, 0xff}
	whiteColor = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// Game implements ebiten.Game over a Session. The map is redrawn into an
// offscreen canvas synchronously whenever the session asks for a render;
// Draw only composites the canvas and the overlays.
type Game struct {
	sess *mindweaver.Session
	cfg  Config

	font    *text.GoTextFaceSource
	uiFace  *text.GoTextFace
	canvas  *ebiten.Image
	surface *Surface
	w, h    int

	input   *pointerInput
	events  []mindweaver.Event
	form    *editForm
	confirm *confirmPrompt
	search  *textField
	fps     fpsWidget

	status      string
	statusErr   bool
	statusUntil time.Time
	scrollIndex int
}

// NewGame wires a game to sess. It installs itself as the session's editor
// and render, focus and cursor callbacks.
func NewGame(sess *mindweaver.Session, cfg Config) (*Game, error) {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	if cfg.TransferFile == "" {
		cfg.TransferFile = mindweaver.ExportFileName
	}
	src, err := loadFontSource()
	if err != nil {
		return nil, err
	}
	g := &Game{
		sess:   sess,
		cfg:    cfg,
		font:   src,
		uiFace: &text.GoTextFace{Source: src, Size: 14},
		input:  newPointerInput(),
	}
	sess.SetEditor(g)
	sess.OnRender = g.redraw
	sess.OnCursor = setCursor
	return g, nil
}

// Run opens the window and blocks until it is closed.
func Run(sess *mindweaver.Session, cfg Config) error {
	g, err := NewGame(sess, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// OpenEditor shows the edit form. Implements mindweaver.Editor.
func (g *Game) OpenEditor(b mindweaver.Bubble) {
	g.form = newEditForm(b)
}

// redraw renders the session into the canvas.
func (g *Game) redraw() {
	if g.surface == nil {
		return
	}
	g.sess.Draw(g.surface)
}

func (g *Game) flash(msg string) {
	g.status, g.statusErr, g.statusUntil = msg, false, time.Now().Add(statusDuration)
}

func (g *Game) flashError(err error) {
	g.status, g.statusErr, g.statusUntil = err.Error(), true, time.Now().Add(statusDuration)
}

// Layout implements ebiten.Game. The canvas follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h || g.canvas == nil {
		g.w, g.h = outsideWidth, outsideHeight
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(g.w, g.h)
		g.surface = NewSurface(g.canvas, g.font)
		g.redraw()
	}
	return outsideWidth, outsideHeight
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	injected := g.sess.Update(float32(dt))
	if g.cfg.ShowFPS {
		g.fps.update(dt)
	}

	g.events = g.input.poll(time.Now(), g.events[:0])
	chars := ebiten.AppendInputChars(nil)
	modal := g.form != nil || g.confirm != nil || g.search != nil

	switch {
	case g.confirm != nil:
		if g.confirm.update() {
			g.confirm = nil
		}
	case g.form != nil:
		g.updateForm(chars)
	case g.search != nil:
		g.updateSearch(chars)
	default:
		g.handleKeys()
	}

	if injected {
		return nil
	}
	for _, ev := range g.events {
		if modal && ev.Kind != mindweaver.EventPointerUp && ev.Kind != mindweaver.EventTouchEnd {
			continue
		}
		if ev.Kind == mindweaver.EventPointerDown && g.hitExitFocus(ev.X, ev.Y) {
			g.sess.ExitFocus()
			continue
		}
		g.sess.Dispatch(ev)
	}
	return nil
}

func (g *Game) updateForm(chars []rune) {
	switch g.form.update(chars) {
	case formSave:
		if !g.sess.ApplyEdit(g.form.id, g.form.values()) {
			g.flashError(fmt.Errorf("bubble %d no longer exists", g.form.id))
		}
		g.form = nil
	case formCancel:
		g.form = nil
	}
}

func (g *Game) updateSearch(chars []rune) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.search = nil
		g.sess.SetSearch("")
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.search = nil
		return
	}
	if g.search.update(chars) {
		g.sess.SetSearch(g.search.String())
	}
}

func (g *Game) handleKeys() {
	ctrl := ctrlPressed()
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.exportFile()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.importFile()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyF), inpututil.IsKeyJustPressed(ebiten.KeySlash):
		g.search = &textField{label: "Search", value: []rune(g.sess.State().Search)}
	case ctrl:
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.sess.NewBubble(float64(g.w), float64(g.h))
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if g.sess.ToggleConnectMode() {
			g.flash("connect mode on")
		} else {
			g.flash("connect mode off")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.confirm = &confirmPrompt{
			message: mindweaver.ResetPrompt,
			onYes: func() {
				g.sess.Reset(func(string) bool { return true })
			},
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sess.ExitFocus()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.scrollToNext()
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		g.sess.Screenshot("manual")
	}
}

// scrollToNext animates the viewport to the next visible bubble.
func (g *Game) scrollToNext() {
	vis := g.sess.Visible()
	if len(vis) == 0 {
		return
	}
	g.scrollIndex = (g.scrollIndex + 1) % len(vis)
	g.sess.ScrollTo(vis[g.scrollIndex].ID, float64(g.w), float64(g.h), scrollDuration)
}

func (g *Game) exportFile() {
	f, err := os.Create(g.cfg.TransferFile)
	if err != nil {
		g.flashError(err)
		return
	}
	err = g.sess.Export(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		g.flashError(err)
		return
	}
	g.flash("exported " + g.cfg.TransferFile)
}

func (g *Game) importFile() {
	f, err := os.Open(g.cfg.TransferFile)
	if err != nil {
		g.flashError(err)
		return
	}
	defer f.Close()
	if err := g.sess.Import(f); err != nil {
		g.flashError(err)
		return
	}
	g.flash("imported " + g.cfg.TransferFile)
}

// exitFocusRect is the clickable "exit focus" button, top right.
func (g *Game) exitFocusRect() mindweaver.Rect {
	return mindweaver.Rect{X: float64(g.w) - 130, Y: 40, Width: 110, Height: 28}
}

func (g *Game) hitExitFocus(x, y float64) bool {
	return g.sess.State().Focus != nil && g.exitFocusRect().Contains(x, y)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}
	g.drawOverlay(screen)
	g.flushScreenshots(screen)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	st := g.sess.State()

	x := 12.0
	if st.Connect.Active {
		msg := "connect: pick a bubble"
		if st.Connect.HasStart {
			msg = "connect: pick the second bubble"
		}
		x = g.badge(screen, msg, x)
	}
	if st.Search != "" && g.search == nil {
		g.badge(screen, "search: "+st.Search, x)
	}

	if st.Focus != nil {
		r := g.exitFocusRect()
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), badgeColor, true)
		drawCentered(screen, "Exit focus", g.uiFace, r.X+r.Width/2, r.Y+r.Height/2, whiteColor)
	}

	if g.search != nil {
		y := float64(g.h) - 64
		vector.DrawFilledRect(screen, 12, float32(y), 360, 28, panelColor, true)
		vector.StrokeRect(screen, 12, float32(y), 360, 28, 1, activeColor, true)
		drawLeft(screen, "/"+g.search.String()+"|", g.uiFace, 20, y+6, inkColor)
	}

	if g.status != "" && time.Now().Before(g.statusUntil) {
		clr := labelColor
		if g.statusErr {
			clr = errorColor
		}
		drawLeft(screen, g.status, g.uiFace, 12, float64(g.h)-56-28, clr)
	}

	drawLeft(screen, "N new · C connect · R reset · / search · Esc exit focus · Tab next · Ctrl+S export · Ctrl+O import",
		g.uiFace, 12, float64(g.h)-24, labelColor)

	if g.form != nil {
		g.form.draw(screen, g.uiFace, g.w, g.h)
	}
	if g.confirm != nil {
		g.confirm.draw(screen, g.uiFace, g.w, g.h)
	}
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
}

// badge draws a pill at (x, 12) and returns the x for the next one.
func (g *Game) badge(screen *ebiten.Image, msg string, x float64) float64 {
	w, _ := text.Measure(msg, g.uiFace, 0)
	w += 20
	vector.DrawFilledRect(screen, float32(x), 12, float32(w), 24, badgeColor, true)
	drawLeft(screen, msg, g.uiFace, x+10, 16, whiteColor)
	return x + w + 8
}
