// Package ui provides the NumCrypt graphical user interface using Fyne.
//
// The UI mirrors the original three-screen layout:
//
//   - Home screen with title, author line, and Encrypt/Decrypt navigation
//   - Encrypt screen with a 6-digit entry and Encrypt/Back buttons
//   - Decrypt screen with the same layout for the reverse transform
//
// Results are shown in a modal dialog with copy-to-clipboard. Screens are
// stacked in a single window and shown one at a time; the UI state lives in
// internal/app.State and transforms run synchronously in event handlers
// (the transform itself is instant).
package ui

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"NumCrypt/internal/app"
	"NumCrypt/internal/crypto"
	"NumCrypt/internal/log"
	"NumCrypt/internal/util"
)

// App represents the main UI application.
type App struct {
	Window  fyne.Window
	Version string

	// Application state
	State *app.State
	bound *app.BoundState

	// Screens, stacked and shown one at a time
	homePage    *fyne.Container
	encryptPage *fyne.Container
	decryptPage *fyne.Container
	pages       *fyne.Container

	encryptEntry *DigitEntry
	decryptEntry *DigitEntry
}

// NewApp creates a new UI application.
func NewApp(version string) *App {
	return &App{
		Version: version,
		State:   app.NewState(),
		bound:   app.NewBoundState(),
	}
}

// Run starts the UI application and blocks until the window is closed.
func (a *App) Run() {
	fapp := fyneapp.NewWithID("io.numcrypt.app")
	fapp.Settings().SetTheme(NewAppTheme())

	a.Window = fapp.NewWindow("NumCrypt " + a.Version[1:])
	a.Window.Resize(fyne.NewSize(400, 300))
	a.Window.CenterOnScreen()

	a.buildUI()

	a.Window.ShowAndRun()
}

// buildUI constructs the three screens and installs the clipboard callback.
// a.Window must be set before calling.
func (a *App) buildUI() {
	a.State.SetClipboard = func(text string) {
		a.Window.Clipboard().SetContent(text)
	}

	a.homePage = a.buildHomePage()
	a.encryptPage = a.buildTransformPage(app.PageEncrypt)
	a.decryptPage = a.buildTransformPage(app.PageDecrypt)

	a.pages = container.NewStack(a.homePage, a.encryptPage, a.decryptPage)
	a.showPage(app.PageHome)

	a.Window.SetContent(container.NewPadded(a.pages))
}

// showPage navigates to the given screen, clearing its entry on arrival.
func (a *App) showPage(p app.Page) {
	a.State.ShowPage(p)

	a.homePage.Hide()
	a.encryptPage.Hide()
	a.decryptPage.Hide()

	switch p {
	case app.PageEncrypt:
		a.encryptEntry.SetText("")
		a.encryptPage.Show()
	case app.PageDecrypt:
		a.decryptEntry.SetText("")
		a.decryptPage.Show()
	default:
		a.homePage.Show()
	}
}

// onTransform runs the transform for the given mode on the entry's text.
// The entry is cleared after every attempt, success or failure, matching the
// original behavior.
func (a *App) onTransform(mode string, entry *DigitEntry) {
	input := entry.Text

	var result string
	var err error
	if mode == "encrypt" {
		result, err = crypto.Encrypt(input)
	} else {
		result, err = crypto.Decrypt(input)
	}

	entry.SetText("")

	if err != nil {
		log.Debug("entry rejected", log.String("mode", mode), log.Err(err))
		a.State.SetStatus("Invalid input", util.RED)
		a.bound.SyncFromState(a.State)
		a.showInputErrorDialog()
		return
	}

	a.State.RecordResult(mode, input, result)
	a.State.SetStatus("Ready", util.WHITE)
	a.bound.SyncFromState(a.State)
	a.showResultModal(result)
}
