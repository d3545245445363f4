//go:build windows

package notification

import (
	"fmt"
	"log"

	"golang.org/x/sys/windows"
)

func showResult(title, message string) error {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	msgPtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return err
	}
	if _, err := windows.MessageBox(0, msgPtr, titlePtr, windows.MB_OK|windows.MB_ICONINFORMATION|windows.MB_TOPMOST); err != nil {
		return fmt.Errorf("failed to show result dialog: %w", err)
	}
	return nil
}

// ShowBlockingError displays a modal, blocking error dialog and returns after user dismisses it.
func ShowBlockingError(title, message string) {
	titlePtr, _ := windows.UTF16PtrFromString(title)
	msgPtr, _ := windows.UTF16PtrFromString(message)
	if _, err := windows.MessageBox(0, msgPtr, titlePtr, windows.MB_OK|windows.MB_ICONERROR|windows.MB_SYSTEMMODAL); err != nil {
		log.Printf("%s: %s (dialog failed: %v)", title, message, err)
	}
}
