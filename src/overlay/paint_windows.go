//go:build windows

package overlay

import (
	"image"
	"image/color"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"screen-edge-offsets/src/render"
)

var (
	gdi32                = windows.NewLazySystemDLL("gdi32.dll")
	procCreatePen        = gdi32.NewProc("CreatePen")
	procCreateSolidBrush = gdi32.NewProc("CreateSolidBrush")
	procRectangle        = gdi32.NewProc("Rectangle")
	procMoveToEx         = gdi32.NewProc("MoveToEx")
	procLineTo           = gdi32.NewProc("LineTo")
	procFillRect         = user32.NewProc("FillRect")
	procDrawText         = user32.NewProc("DrawTextW")
)

const (
	psSolid        = 0
	psDash         = 1
	defaultGUIFont = 17

	dtCenter     = 0x00000001
	dtVCenter    = 0x00000004
	dtBottom     = 0x00000008
	dtSingleLine = 0x00000020
)

func (r *run) paint() {
	var ps win.PAINTSTRUCT
	hdc := win.BeginPaint(r.hwnd, &ps)
	defer win.EndPaint(r.hwnd, &ps)

	paintScene(hdc, render.Compose(render.Frame{
		Selection: r.state.Snapshot(),
		Work:      r.state.WorkArea(),
	}))
}

// paintScene draws into an off-screen bitmap and blits it in one go.
func paintScene(hdc win.HDC, s render.Scene) {
	w, h := int32(s.Size.X), int32(s.Size.Y)
	if w <= 0 || h <= 0 {
		return
	}

	mem := win.CreateCompatibleDC(hdc)
	if mem == 0 {
		return
	}
	defer win.DeleteDC(mem)
	bmp := win.CreateCompatibleBitmap(hdc, w, h)
	if bmp == 0 {
		return
	}
	defer win.DeleteObject(win.HGDIOBJ(bmp))
	oldBmp := win.SelectObject(mem, win.HGDIOBJ(bmp))
	defer win.SelectObject(mem, oldBmp)

	fillRect(mem, image.Rect(0, 0, int(w), int(h)), s.Background)
	if s.HasSelection {
		fillRect(mem, s.Selection, s.Fill)
		outlineRect(mem, s.Selection, s.Outline)
	}

	oldFont := win.SelectObject(mem, win.GetStockObject(defaultGUIFont))
	win.SetBkMode(mem, win.TRANSPARENT)
	for _, l := range s.Labels {
		for _, seg := range l.Leaders {
			dashedLine(mem, seg, render.TextColor)
		}
		drawText(mem, l.Text, l.Box, render.TextColor, dtCenter|dtVCenter|dtSingleLine)
	}
	if s.Hint != nil {
		drawText(mem, s.Hint.Text, s.Hint.Box, s.Hint.Color, dtCenter|dtBottom|dtSingleLine)
	}
	win.SelectObject(mem, oldFont)

	win.BitBlt(hdc, 0, 0, w, h, mem, 0, 0, win.SRCCOPY)
}

func colorRef(c color.RGBA) uintptr {
	return uintptr(c.R) | uintptr(c.G)<<8 | uintptr(c.B)<<16
}

func toRECT(r image.Rectangle) win.RECT {
	return win.RECT{Left: int32(r.Min.X), Top: int32(r.Min.Y), Right: int32(r.Max.X), Bottom: int32(r.Max.Y)}
}

func fillRect(hdc win.HDC, r image.Rectangle, c color.RGBA) {
	brush, _, _ := procCreateSolidBrush.Call(colorRef(c))
	if brush == 0 {
		return
	}
	rc := toRECT(r)
	procFillRect.Call(uintptr(hdc), uintptr(unsafe.Pointer(&rc)), brush)
	win.DeleteObject(win.HGDIOBJ(brush))
}

func outlineRect(hdc win.HDC, r image.Rectangle, c color.RGBA) {
	pen, _, _ := procCreatePen.Call(psSolid, render.OutlineWidth, colorRef(c))
	if pen == 0 {
		return
	}
	oldPen := win.SelectObject(hdc, win.HGDIOBJ(pen))
	oldBrush := win.SelectObject(hdc, win.GetStockObject(win.NULL_BRUSH))
	procRectangle.Call(uintptr(hdc), uintptr(r.Min.X), uintptr(r.Min.Y), uintptr(r.Max.X), uintptr(r.Max.Y))
	win.SelectObject(hdc, oldPen)
	win.SelectObject(hdc, oldBrush)
	win.DeleteObject(win.HGDIOBJ(pen))
}

// dashedLine needs a 1px pen; GDI ignores PS_DASH for wider cosmetic pens.
func dashedLine(hdc win.HDC, seg render.Segment, c color.RGBA) {
	pen, _, _ := procCreatePen.Call(psDash, 1, colorRef(c))
	if pen == 0 {
		return
	}
	oldPen := win.SelectObject(hdc, win.HGDIOBJ(pen))
	procMoveToEx.Call(uintptr(hdc), uintptr(seg.From.X), uintptr(seg.From.Y), 0)
	procLineTo.Call(uintptr(hdc), uintptr(seg.To.X), uintptr(seg.To.Y))
	win.SelectObject(hdc, oldPen)
	win.DeleteObject(win.HGDIOBJ(pen))
}

func drawText(hdc win.HDC, text string, box image.Rectangle, c color.RGBA, format uintptr) {
	textPtr, err := syscall.UTF16PtrFromString(text)
	if err != nil {
		return
	}
	win.SetTextColor(hdc, win.COLORREF(colorRef(c)))
	rc := toRECT(box)
	procDrawText.Call(
		uintptr(hdc),
		uintptr(unsafe.Pointer(textPtr)),
		uintptr(^uint32(0)),
		uintptr(unsafe.Pointer(&rc)),
		format,
	)
}
