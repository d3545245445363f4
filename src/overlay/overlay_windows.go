//go:build windows

package overlay

import (
	"context"
	"fmt"
	"log"
	"syscall"
	"time"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"screen-edge-offsets/src/edges"
	"screen-edge-offsets/src/messages"
	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/render"
	"screen-edge-offsets/src/selection"
	"screen-edge-offsets/src/session"
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procTrackMouseEvent            = user32.NewProc("TrackMouseEvent")
)

const (
	wsExLayered   = 0x00080000
	lwaAlpha      = 0x00000002
	tmeLeave      = 0x00000002
	wmMouseLeave  = 0x02A3
	vrefresh      = 116
	redrawTimerID = 1
)

type trackMouseEvent struct {
	CbSize      uint32
	DwFlags     uint32
	HwndTrack   win.HWND
	DwHoverTime uint32
}

// The window procedure is a process-wide callback; only one overlay runs at a time.
var (
	wndProcCallback = syscall.NewCallback(wndProc)
	current         *run
)

type windowsSelector struct {
	opts Options
}

func newPlatformSelector(opts Options) Selector { return &windowsSelector{opts: opts} }

// run is the per-Select window state.
type run struct {
	hwnd     win.HWND
	state    *session.State
	captured bool
	done     bool
	out      session.Outcome
}

func (s *windowsSelector) Select(ctx context.Context) (edges.Distances, bool, error) {
	log.Printf("OVERLAY: Starting selection (redraw=%s)", s.opts.Mode)

	hinst := win.GetModuleHandle(nil)
	className := syscall.StringToUTF16Ptr(fmt.Sprintf("EdgeOffsetsOverlay_%d", time.Now().UnixNano()))
	wndClass := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		LpfnWndProc:   wndProcCallback,
		HInstance:     hinst,
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_CROSS)),
		LpszClassName: className,
	}
	if atom := win.RegisterClassEx(&wndClass); atom == 0 {
		log.Printf("OVERLAY: Failed to register window class")
		return edges.Distances{}, false, fmt.Errorf("failed to register overlay window class")
	}
	defer win.UnregisterClass(className)

	hwnd := win.CreateWindowEx(
		win.WS_EX_TOPMOST|win.WS_EX_TOOLWINDOW|wsExLayered,
		className,
		syscall.StringToUTF16Ptr("Screen Edge Offsets"),
		win.WS_POPUP,
		0, 0, 0, 0,
		0, 0, hinst, nil,
	)
	if hwnd == 0 {
		log.Printf("OVERLAY: Failed to create overlay window")
		return edges.Distances{}, false, fmt.Errorf("failed to create overlay window")
	}
	defer win.DestroyWindow(hwnd)

	r := &run{hwnd: hwnd, state: session.New(monitor.NewWin32Provider(), monitor.Handle(hwnd), s.opts.Mode)}
	if err := r.state.Init(); err != nil {
		log.Printf("OVERLAY: Monitor query failed: %v", err)
		return edges.Distances{}, false, fmt.Errorf("failed to query monitor: %w", err)
	}
	current = r
	defer func() { current = nil }()

	setAlpha(hwnd, render.WindowAlpha)
	r.reposition()
	win.ShowWindow(hwnd, win.SW_SHOW)
	win.SetForegroundWindow(hwnd)
	win.UpdateWindow(hwnd)

	if s.opts.Mode == session.RedrawTimer {
		hz := s.opts.RefreshHz
		if hz == 0 {
			hz = detectRefreshHz(hwnd)
		}
		if win.SetTimer(hwnd, redrawTimerID, timerInterval(hz), 0) == 0 {
			log.Printf("OVERLAY: Failed to start redraw timer")
		}
		defer win.KillTimer(hwnd, redrawTimerID)
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
		case <-stop:
		}
	}()

	var msg win.MSG
	for !r.done {
		ret := win.GetMessage(&msg, 0, 0, 0)
		if ret == 0 || ret == -1 {
			log.Printf("OVERLAY: Message loop ended (ret=%d)", ret)
			break
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}

	switch {
	case !r.done:
		return edges.Distances{}, false, fmt.Errorf("overlay message loop ended before a selection was made")
	case r.out.Cancelled && ctx.Err() != nil:
		return edges.Distances{}, false, ctx.Err()
	case r.out.Cancelled:
		return edges.Distances{}, true, nil
	default:
		return r.out.Result, false, nil
	}
}

func wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	r := current
	if r == nil || r.hwnd != hwnd {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case win.WM_LBUTTONDOWN:
		r.dispatch(messages.PointerDown{Point: pointFromLParam(lParam), Button: messages.ButtonPrimary})
		return 0
	case win.WM_RBUTTONDOWN:
		r.dispatch(messages.PointerDown{Point: pointFromLParam(lParam), Button: messages.ButtonSecondary})
		return 0
	case win.WM_MOUSEMOVE:
		r.dispatch(messages.PointerMove{Point: pointFromLParam(lParam)})
		return 0
	case win.WM_LBUTTONUP:
		r.dispatch(messages.PointerUp{Point: pointFromLParam(lParam), Button: messages.ButtonPrimary})
		return 0
	case win.WM_RBUTTONUP:
		r.dispatch(messages.PointerUp{Point: pointFromLParam(lParam), Button: messages.ButtonSecondary})
		return 0
	case wmMouseLeave:
		r.dispatch(messages.DisplayChangeCheck{})
		return 0

	case win.WM_KEYDOWN, win.WM_SYSKEYDOWN:
		r.dispatch(messages.KeyDown{
			Key:    keyFromVK(wParam),
			Alt:    altDown(msg, lParam),
			Repeat: lParam&(1<<30) != 0,
		})
		return 0
	case win.WM_KEYUP, win.WM_SYSKEYUP:
		r.dispatch(messages.KeyUp{Key: keyFromVK(wParam), Alt: altDown(msg, lParam)})
		return 0

	case win.WM_CLOSE:
		r.dispatch(messages.Close{})
		return 0
	case win.WM_TIMER:
		if wParam == redrawTimerID {
			r.dispatch(messages.Tick{})
		}
		return 0

	case win.WM_PAINT:
		r.paint()
		return 0
	case win.WM_ERASEBKGND:
		return 1
	case win.WM_NCHITTEST:
		return uintptr(win.HTCLIENT)
	}

	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (r *run) dispatch(ev messages.Event) {
	if r.done {
		return
	}
	out := r.state.Handle(ev)

	if out.TrackLeave {
		trackLeave(r.hwnd)
	}
	if out.Reposition {
		r.reposition()
	}
	r.syncCapture()
	if out.Redraw {
		win.InvalidateRect(r.hwnd, nil, false)
	}
	if out.Done {
		r.done = true
		r.out = out
		if out.HasResult {
			// Hide before the result dialog appears.
			setAlpha(r.hwnd, 0)
		}
		log.Printf("OVERLAY: Finished (cancelled=%v)", out.Cancelled)
	}
}

func (r *run) syncCapture() {
	dragging := r.state.Snapshot().Kind == selection.Dragging
	switch {
	case dragging && !r.captured:
		win.SetCapture(r.hwnd)
		r.captured = true
	case !dragging && r.captured:
		win.ReleaseCapture()
		r.captured = false
	}
}

func (r *run) reposition() {
	b := r.state.Bounds()
	wa := b.WorkArea()
	win.SetWindowPos(r.hwnd, win.HWND_TOPMOST,
		int32(b.Left), int32(b.Top), int32(wa.Width), int32(wa.Height),
		win.SWP_NOACTIVATE|win.SWP_SHOWWINDOW)
	log.Printf("OVERLAY: Positioned at (%d, %d) size %s", b.Left, b.Top, wa)
}

func pointFromLParam(lParam uintptr) selection.Point {
	return selection.Point{
		X: int(int16(win.LOWORD(uint32(lParam)))),
		Y: int(int16(win.HIWORD(uint32(lParam)))),
	}
}

func keyFromVK(vk uintptr) messages.Key {
	switch vk {
	case win.VK_ESCAPE:
		return messages.KeyEscape
	case win.VK_F4:
		return messages.KeyF4
	default:
		return messages.KeyOther
	}
}

// altDown reads the context code for system keys and the live key state otherwise.
func altDown(msg uint32, lParam uintptr) bool {
	if msg == win.WM_SYSKEYDOWN || msg == win.WM_SYSKEYUP {
		return lParam&(1<<29) != 0
	}
	return win.GetKeyState(win.VK_MENU) < 0
}

func trackLeave(hwnd win.HWND) {
	tme := trackMouseEvent{DwFlags: tmeLeave, HwndTrack: hwnd}
	tme.CbSize = uint32(unsafe.Sizeof(tme))
	if ret, _, err := procTrackMouseEvent.Call(uintptr(unsafe.Pointer(&tme))); ret == 0 {
		log.Printf("OVERLAY: TrackMouseEvent failed: %v", err)
	}
}

func setAlpha(hwnd win.HWND, alpha byte) {
	if ret, _, err := procSetLayeredWindowAttributes.Call(uintptr(hwnd), 0, uintptr(alpha), lwaAlpha); ret == 0 {
		log.Printf("OVERLAY: SetLayeredWindowAttributes failed: %v", err)
	}
}

func detectRefreshHz(hwnd win.HWND) int {
	hdc := win.GetDC(hwnd)
	if hdc == 0 {
		return fallbackRefreshHz
	}
	defer win.ReleaseDC(hwnd, hdc)
	hz := int(win.GetDeviceCaps(hdc, vrefresh))
	log.Printf("OVERLAY: Monitor refresh rate %d Hz", hz)
	return hz
}
