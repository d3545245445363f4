//go:build windows

package monitor

import (
	"errors"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32              = windows.NewLazySystemDLL("user32.dll")
	procMonitorFromRect = user32.NewProc("MonitorFromRect")
)

var errMonitorInfo = errors.New("GetMonitorInfo failed")

// Win32Provider picks the monitor under the cursor, falling back to the
// monitor nearest the window when the cursor position is unavailable.
type Win32Provider struct{}

func NewWin32Provider() Win32Provider { return Win32Provider{} }

func (Win32Provider) DisplayFor(h Handle) (Display, error) {
	mon := monitorUnderCursor()
	if mon == 0 {
		mon = win.MonitorFromWindow(win.HWND(h), win.MONITOR_DEFAULTTONEAREST)
	}
	if mon == 0 {
		return Display{}, ErrNoDisplay
	}

	var mi win.MONITORINFO
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	if !win.GetMonitorInfo(mon, &mi) {
		return Display{}, errMonitorInfo
	}

	return Display{
		ID: uintptr(mon),
		Work: Rect{
			Left:   int(mi.RcWork.Left),
			Top:    int(mi.RcWork.Top),
			Right:  int(mi.RcWork.Right),
			Bottom: int(mi.RcWork.Bottom),
		},
	}, nil
}

func monitorUnderCursor() win.HMONITOR {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return 0
	}
	// MonitorFromPoint takes POINT by value; a 1x1 rect avoids the ABI packing.
	r := win.RECT{Left: pt.X, Top: pt.Y, Right: pt.X + 1, Bottom: pt.Y + 1}
	ret, _, _ := procMonitorFromRect.Call(uintptr(unsafe.Pointer(&r)), uintptr(win.MONITOR_DEFAULTTONEAREST))
	return win.HMONITOR(ret)
}
