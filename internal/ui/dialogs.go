package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// showResultModal shows the transform result in a modal dialog with a
// copy-to-clipboard button, matching the original result window.
func (a *App) showResultModal(result string) {
	resultText := canvas.NewText(result, color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF})
	resultText.TextSize = 28
	resultText.TextStyle = fyne.TextStyle{Bold: true}
	resultText.Alignment = fyne.TextAlignCenter

	var d dialog.Dialog

	copyButton := widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), func() {
		a.State.CopyResult()
		d.Hide()
	})

	content := container.NewVBox(
		container.NewCenter(resultText),
		container.NewCenter(copyButton),
	)

	d = dialog.NewCustom("Result", "Close", content, a.Window)
	d.Show()
}

// showInputErrorDialog shows the uniform invalid-input message. All rejection
// causes get the same text, so the user is never told which rule failed.
func (a *App) showInputErrorDialog() {
	dialog.ShowInformation("Input Error", "Please enter a 6-digit number.", a.Window)
}
