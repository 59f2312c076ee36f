package mindweaver

// Editor shows an editable form for a bubble. It receives a copy; changes
// come back through Session.ApplyEdit.
type Editor interface {
	OpenEditor(b Bubble)
}

// EditorFunc adapts a function to the Editor interface.
type EditorFunc func(b Bubble)

// OpenEditor calls f(b).
func (f EditorFunc) OpenEditor(b Bubble) { f(b) }

// BubbleFields are the user-editable fields of a bubble.
type BubbleFields struct {
	Title       string
	Description string
	Color       string
	Icon        string
	Tags        string
}

// Fields returns the editable fields of b.
func (b *Bubble) Fields() BubbleFields {
	return BubbleFields{
		Title:       b.Title,
		Description: b.Description,
		Color:       b.Color,
		Icon:        b.Icon,
		Tags:        b.Tags,
	}
}

// SetFields overwrites the editable fields of b. Position and id are kept.
func (b *Bubble) SetFields(f BubbleFields) {
	b.Title = f.Title
	b.Description = f.Description
	b.Color = f.Color
	b.Icon = f.Icon
	b.Tags = f.Tags
}
