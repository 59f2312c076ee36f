package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/mindweaver"
)

var (
	panelColor  = color.NRGBA{0xff, 0xff, 0xff, 0xf0}
	borderColor = color.NRGBA{0x33, 0x33, 0x33, 0xff}
	dimColor    = color.NRGBA{0x00, 0x00, 0x00, 0x60}
	labelColor  = color.NRGBA{0x66, 0x66, 0x66, 0xff}
	activeColor = color.NRGBA{0x6b, 0x5b, 0x95, 0xff}
	inkColor    = color.NRGBA{0x11, 0x11, 0x11, 0xff}
)

// textField is a single-line text input.
type textField struct {
	label string
	value []rune
}

// update applies typed characters and backspace. Returns true if the value
// changed.
func (f *textField) update(chars []rune) bool {
	changed := false
	if len(chars) > 0 {
		f.value = append(f.value, chars...)
		changed = true
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) && len(f.value) > 0 {
		f.value = f.value[:len(f.value)-1]
		changed = true
	}
	return changed
}

func (f *textField) String() string { return string(f.value) }

// Edit form field order.
const (
	fieldTitle = iota
	fieldDescription
	fieldColor
	fieldIcon
	fieldTags
	numFields
)

// editForm is the modal bubble editor. Tab moves between fields, Enter
// saves, Escape cancels.
type editForm struct {
	id     mindweaver.BubbleID
	fields [numFields]textField
	active int
}

func newEditForm(b mindweaver.Bubble) *editForm {
	f := &editForm{id: b.ID}
	f.fields[fieldTitle] = textField{label: "Title", value: []rune(b.Title)}
	f.fields[fieldDescription] = textField{label: "Description", value: []rune(b.Description)}
	f.fields[fieldColor] = textField{label: "Color", value: []rune(b.Color)}
	f.fields[fieldIcon] = textField{label: "Icon", value: []rune(b.Icon)}
	f.fields[fieldTags] = textField{label: "Tags", value: []rune(b.Tags)}
	return f
}

func (f *editForm) values() mindweaver.BubbleFields {
	return mindweaver.BubbleFields{
		Title:       f.fields[fieldTitle].String(),
		Description: f.fields[fieldDescription].String(),
		Color:       f.fields[fieldColor].String(),
		Icon:        f.fields[fieldIcon].String(),
		Tags:        f.fields[fieldTags].String(),
	}
}

// formResult is what a form update decided.
type formResult uint8

const (
	formOpen formResult = iota
	formSave
	formCancel
)

func (f *editForm) update(chars []rune) formResult {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return formCancel
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		return formSave
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			f.active = (f.active + numFields - 1) % numFields
		} else {
			f.active = (f.active + 1) % numFields
		}
		return formOpen
	}
	f.fields[f.active].update(chars)
	return formOpen
}

func (f *editForm) draw(dst *ebiten.Image, face text.Face, w, h int) {
	const (
		pw, rowH = 420.0, 44.0
	)
	ph := rowH*numFields + 60
	x := (float64(w) - pw) / 2
	y := (float64(h) - ph) / 2

	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), dimColor, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), pw, float32(ph), panelColor, true)
	vector.StrokeRect(dst, float32(x), float32(y), pw, float32(ph), 1, borderColor, true)
	drawLeft(dst, "Edit bubble", face, x+16, y+12, inkColor)

	for i := range f.fields {
		fy := y + 40 + float64(i)*rowH
		drawLeft(dst, f.fields[i].label, face, x+16, fy, labelColor)
		clr := borderColor
		if i == f.active {
			clr = activeColor
		}
		vector.StrokeRect(dst, float32(x+120), float32(fy-4), pw-136, 26, 1, clr, true)
		val := f.fields[i].String()
		if i == f.active {
			val += "|"
		}
		drawLeft(dst, val, face, x+126, fy, inkColor)
	}
	drawLeft(dst, "Tab next field · Enter save · Esc cancel", face, x+16, y+ph-24, labelColor)
}

// confirmPrompt is a yes/no modal.
type confirmPrompt struct {
	message string
	onYes   func()
}

func (c *confirmPrompt) update() (closed bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyY), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		c.onYes()
		return true
	case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return true
	}
	return false
}

func (c *confirmPrompt) draw(dst *ebiten.Image, face text.Face, w, h int) {
	const pw, ph = 440.0, 90.0
	x := (float64(w) - pw) / 2
	y := (float64(h) - ph) / 2
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), dimColor, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), pw, ph, panelColor, true)
	vector.StrokeRect(dst, float32(x), float32(y), pw, ph, 1, borderColor, true)
	drawCentered(dst, c.message, face, x+pw/2, y+30, inkColor)
	drawCentered(dst, "Y confirm · N cancel", face, x+pw/2, y+62, labelColor)
}
