package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"NumCrypt/internal/app"
)

// buildHomePage builds the landing screen: title, author line, and the two
// navigation buttons.
func (a *App) buildHomePage() *fyne.Container {
	title := widget.NewLabelWithStyle("Encryption Application",
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	author := widget.NewLabelWithStyle("Author: Andrés Leonardo Liscano",
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	info := widget.NewLabelWithStyle("Select an option:",
		fyne.TextAlignCenter, fyne.TextStyle{})

	encryptButton := widget.NewButton("🔒 Encrypt", func() {
		a.showPage(app.PageEncrypt)
	})
	encryptButton.Importance = widget.HighImportance

	decryptButton := widget.NewButton("🔓 Decrypt", func() {
		a.showPage(app.PageDecrypt)
	})

	buttons := container.NewCenter(container.NewHBox(encryptButton, decryptButton))

	return container.NewVBox(
		title,
		author,
		widget.NewSeparator(),
		info,
		buttons,
	)
}

// buildTransformPage builds the encrypt or decrypt screen. Both share the
// same layout; only the labels and the transform differ.
func (a *App) buildTransformPage(page app.Page) *fyne.Container {
	mode := "encrypt"
	title := "Number Encryption"
	prompt := "Enter a 6-digit number:"
	action := "🔒 Encrypt"
	if page == app.PageDecrypt {
		mode = "decrypt"
		title = "Number Decryption"
		prompt = "Enter the encrypted number (6 digits):"
		action = "🔓 Decrypt"
	}

	titleLabel := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	promptLabel := widget.NewLabelWithStyle(prompt, fyne.TextAlignCenter, fyne.TextStyle{})

	entry := NewDigitEntry()
	indicator := NewValidationIndicator()
	entry.OnDigitsChanged = func(valid bool) {
		indicator.SetVisible(entry.Text != "")
		indicator.SetValid(valid)
	}

	actionButton := widget.NewButton(action, func() {
		a.onTransform(mode, entry)
	})
	actionButton.Importance = widget.HighImportance

	backButton := widget.NewButton("Back", func() {
		a.showPage(app.PageHome)
	})

	// Status line follows the bound state, so it updates on every transform
	statusLabel := widget.NewLabelWithData(a.bound.Status)
	statusLabel.Alignment = fyne.TextAlignCenter

	if page == app.PageDecrypt {
		a.decryptEntry = entry
	} else {
		a.encryptEntry = entry
	}

	entryRow := container.NewBorder(nil, nil, nil, indicator, entry)
	buttons := container.NewCenter(container.NewHBox(actionButton, backButton))

	return container.NewVBox(
		titleLabel,
		promptLabel,
		entryRow,
		buttons,
		statusLabel,
	)
}
