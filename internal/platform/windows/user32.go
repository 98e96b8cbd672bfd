//go:build windows

package windows

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procWindowFromPoint      = user32.NewProc("WindowFromPoint")
	procGetFocus             = user32.NewProc("GetFocus")
	procAttachThreadInput    = user32.NewProc("AttachThreadInput")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowLongW       = user32.NewProc("GetWindowLongW")
	procGetParent            = user32.NewProc("GetParent")
	procGetWindow            = user32.NewProc("GetWindow")

	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")

	procCreateSolidBrush = gdi32.NewProc("CreateSolidBrush")
)

const (
	gwlStyle   = -16
	gwlExStyle = -20
	gwOwner    = 4
	lwaAlpha   = 0x00000002
)

// WindowFromPoint takes a POINT by value. On 64-bit targets the struct fits
// in a single register; on 32-bit it is pushed as two words.
func windowFromPoint(x, y int32) uintptr {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		packed := uint64(uint32(x)) | uint64(uint32(y))<<32
		r, _, _ := procWindowFromPoint.Call(uintptr(packed))
		return r
	}
	r, _, _ := procWindowFromPoint.Call(uintptr(x), uintptr(y))
	return r
}

func getFocus() uintptr {
	r, _, _ := procGetFocus.Call()
	return r
}

func attachThreadInput(from, to uint32, attach bool) bool {
	var a uintptr
	if attach {
		a = 1
	}
	r, _, _ := procAttachThreadInput.Call(uintptr(from), uintptr(to), a)
	return r != 0
}

func getWindowText(hwnd uintptr) string {
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf)
}

func getWindowLong(hwnd uintptr, index int32) uint32 {
	r, _, _ := procGetWindowLongW.Call(hwnd, uintptr(index))
	return uint32(r)
}

func getParent(hwnd uintptr) uintptr {
	r, _, _ := procGetParent.Call(hwnd)
	return r
}

func getOwner(hwnd uintptr) uintptr {
	r, _, _ := procGetWindow.Call(hwnd, gwOwner)
	return r
}

func setLayeredWindowAttributes(hwnd uintptr, alpha byte) bool {
	r, _, _ := procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(alpha), lwaAlpha)
	return r != 0
}

func createSolidBrush(color uint32) uintptr {
	r, _, _ := procCreateSolidBrush.Call(uintptr(color))
	return r
}
