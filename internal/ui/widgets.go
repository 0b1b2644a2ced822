package ui

import (
	"image/color"

	"NumCrypt/internal/crypto"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// DigitEntry is an Entry widget that accepts only ASCII digits and caps the
// text at six characters, matching the original entry field's validator and
// max length. Pasted text is filtered the same way.
type DigitEntry struct {
	widget.Entry

	// OnDigitsChanged fires after every accepted change with the current
	// validity of the text (exactly six digits).
	OnDigitsChanged func(valid bool)
}

// NewDigitEntry creates a new 6-digit entry field.
func NewDigitEntry() *DigitEntry {
	e := &DigitEntry{}
	e.ExtendBaseWidget(e)
	e.PlaceHolder = "000000"
	e.OnChanged = func(string) {
		e.notifyValidity()
	}
	return e
}

// TypedRune filters keyboard input to digits and enforces the length cap.
func (e *DigitEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	if len(e.Text) >= crypto.Length {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedShortcut filters paste: only the digits of the clipboard content are
// inserted, and the result is still capped at six characters.
func (e *DigitEntry) TypedShortcut(shortcut fyne.Shortcut) {
	paste, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(shortcut)
		return
	}

	text := e.Text
	for _, r := range paste.Clipboard.Content() {
		if r < '0' || r > '9' {
			continue
		}
		if len(text) >= crypto.Length {
			break
		}
		text += string(r)
	}
	e.SetText(text)
}

// Valid returns true when the entry holds a complete 6-digit number.
func (e *DigitEntry) Valid() bool {
	_, err := crypto.ParseSequence(e.Text)
	return err == nil
}

func (e *DigitEntry) notifyValidity() {
	if e.OnDigitsChanged != nil {
		e.OnDigitsChanged(e.Valid())
	}
}

// ValidationIndicator is a custom widget that displays a circular validation
// indicator next to the entry: green when the entry holds six digits, red
// while it is incomplete, invisible when the field is empty.
// Uses canvas.Circle for efficient single-object rendering.
type ValidationIndicator struct {
	widget.BaseWidget
	valid   bool // true = green, false = red
	visible bool // whether to show the indicator
}

// NewValidationIndicator creates a new validation indicator.
func NewValidationIndicator() *ValidationIndicator {
	v := &ValidationIndicator{}
	v.ExtendBaseWidget(v)
	return v
}

// SetValid sets whether the validation passed.
func (v *ValidationIndicator) SetValid(valid bool) {
	v.valid = valid
	v.Refresh()
}

// SetVisible sets whether the indicator should be visible.
func (v *ValidationIndicator) SetVisible(visible bool) {
	v.visible = visible
	v.Refresh()
}

// MinSize returns the minimum size of the indicator.
func (v *ValidationIndicator) MinSize() fyne.Size {
	return fyne.NewSize(24, 24)
}

// CreateRenderer creates the renderer for the widget.
func (v *ValidationIndicator) CreateRenderer() fyne.WidgetRenderer {
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeWidth = 2

	r := &validationRenderer{indicator: v, circle: circle}
	r.updateColor()
	return r
}

type validationRenderer struct {
	indicator *ValidationIndicator
	circle    *canvas.Circle
}

func (r *validationRenderer) Layout(size fyne.Size) {
	circleSize := fyne.NewSize(20, 20)
	offset := fyne.NewPos(
		(size.Width-circleSize.Width)/2,
		(size.Height-circleSize.Height)/2,
	)
	r.circle.Move(offset)
	r.circle.Resize(circleSize)
}

func (r *validationRenderer) MinSize() fyne.Size {
	return r.indicator.MinSize()
}

func (r *validationRenderer) updateColor() {
	if !r.indicator.visible {
		r.circle.StrokeColor = color.Transparent
		r.circle.FillColor = color.Transparent
	} else if r.indicator.valid {
		r.circle.StrokeColor = color.RGBA{0x4c, 0xc8, 0x4b, 0xff} // Green
		r.circle.FillColor = color.Transparent
	} else {
		r.circle.StrokeColor = color.RGBA{0xc8, 0x4c, 0x4b, 0xff} // Red
		r.circle.FillColor = color.Transparent
	}
}

func (r *validationRenderer) Refresh() {
	r.updateColor()
	canvas.Refresh(r.circle)
}

func (r *validationRenderer) Destroy() {}

func (r *validationRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.circle}
}
