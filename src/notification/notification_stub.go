//go:build !windows

package notification

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// showResult runs a small fyne window until it is closed. fyne owns the main
// thread while it runs, so this must be called from main.
func showResult(title, message string) error {
	a := app.New()
	w := a.NewWindow(title)
	w.SetContent(container.NewVBox(
		widget.NewLabel(message),
		widget.NewButton("OK", func() { a.Quit() }),
	))
	w.Resize(fyne.NewSize(240, 160))
	w.SetFixedSize(true)
	w.CenterOnScreen()
	w.ShowAndRun()
	return nil
}

// ShowBlockingError logs a blocking error message on non-Windows platforms.
func ShowBlockingError(title, message string) {
	log.Printf("%s: %s", title, message)
}
