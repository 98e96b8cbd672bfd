//go:build windows

package windows

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/window-viewer/internal/demo"
	"github.com/mj1618/window-viewer/internal/logger"
	"github.com/mj1618/window-viewer/internal/model"
	"github.com/mj1618/window-viewer/internal/platform"
)

const (
	controllerClass = "WindowViewerDemo"
	closeTimerID    = 1

	idSpawnBase = 100 // + demo.Kind
	idClose     = 200

	cwUseDefault     int32 = -0x80000000
	swShow           int32 = 5
	swShowNoActivate int32 = 4
	bsPushButton           = 0x00000000
	ssCenter               = 0x00000001
	waInactive             = 0
	bkTransparent          = 1
	colorBtnFace           = 15
	wmCtlColorStatic       = 0x0138

	lineHeight = 20
)

// ErrDemoRunning is returned when RunDemo is called while a demo is active.
var ErrDemoRunning = errors.New("demo is already running")

// Spawner implements platform.DemoSpawner with a controller window whose
// buttons open the sample windows described by the demo package.
type Spawner struct {
	mu sync.Mutex
}

// NewSpawner creates a new Win32 demo spawner.
func NewSpawner() *Spawner {
	return &Spawner{}
}

// Window classes live for the whole process, so they are registered once.
var (
	registerOnce sync.Once
	registerErr  error
	wndProcPtr   uintptr
	brushes      = map[demo.Kind]uintptr{}
)

// session is the state of the running demo. It is only touched from the
// message loop thread.
var session *demoSession

type demoSession struct {
	instance   win.HINSTANCE
	controller win.HWND
	samples    map[win.HWND]demo.Window
}

// RunDemo shows the controller window and pumps messages until it is closed
// or ctx is cancelled.
func (s *Spawner) RunDemo(ctx context.Context) error {
	if !s.mu.TryLock() {
		return ErrDemoRunning
	}
	defer s.mu.Unlock()

	// Windows belong to the thread that created them; the message loop must
	// run on that same thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	inst := win.GetModuleHandle(nil)
	if err := registerClasses(inst); err != nil {
		return err
	}

	session = &demoSession{
		instance: inst,
		samples:  make(map[win.HWND]demo.Window),
	}
	defer func() { session = nil }()

	if err := session.createController(); err != nil {
		return err
	}
	logger.Infof("demo: controller window %s", platform.Handle(session.controller))

	done := make(chan struct{})
	defer close(done)
	controller := session.controller
	go func() {
		select {
		case <-ctx.Done():
			win.PostMessage(controller, win.WM_CLOSE, 0, 0)
		case <-done:
		}
	}()

	var msg win.MSG
	for {
		switch win.GetMessage(&msg, 0, 0, 0) {
		case 0:
			return nil
		case -1:
			return lastError("GetMessage")
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

func registerClasses(inst win.HINSTANCE) error {
	registerOnce.Do(func() {
		wndProcPtr = windows.NewCallback(wndProc)
		registerErr = registerClass(inst, controllerClass, win.HBRUSH(colorBtnFace+1))
		for _, sample := range demo.Windows() {
			if registerErr != nil {
				return
			}
			brush := createSolidBrush(sample.Background)
			brushes[sample.Kind] = brush
			registerErr = registerClass(inst, sampleClass(sample.Kind), win.HBRUSH(brush))
		}
	})
	return registerErr
}

func registerClass(inst win.HINSTANCE, name string, background win.HBRUSH) error {
	wc := win.WNDCLASSEX{
		LpfnWndProc:   wndProcPtr,
		HInstance:     inst,
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
		HbrBackground: background,
		LpszClassName: windows.StringToUTF16Ptr(name),
	}
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	if win.RegisterClassEx(&wc) == 0 {
		return lastError("RegisterClassEx " + name)
	}
	return nil
}

func sampleClass(k demo.Kind) string {
	return controllerClass + "." + k.String()
}

func (s *demoSession) createController() error {
	hwnd := win.CreateWindowEx(
		0,
		windows.StringToUTF16Ptr(controllerClass),
		windows.StringToUTF16Ptr(demo.ControllerTitle),
		model.WS_OVERLAPPEDWINDOW,
		cwUseDefault, cwUseDefault, demo.ControllerWidth, demo.ControllerHeight,
		0, 0, s.instance, nil,
	)
	if hwnd == 0 {
		return lastError("CreateWindowEx controller")
	}
	s.controller = hwnd

	y := int32(20)
	for _, sample := range demo.Windows() {
		s.button(hwnd, sample.Button, idSpawnBase+int(sample.Kind), 50, y, 300, 35)
		y += 45
	}
	y += 10
	for _, line := range demo.ControllerFooter {
		s.label(hwnd, line, 10, y, demo.ControllerWidth-20)
		y += lineHeight
	}

	win.ShowWindow(hwnd, swShow)
	win.UpdateWindow(hwnd)
	return nil
}

func (s *demoSession) spawn(k demo.Kind) {
	sample, ok := demo.Lookup(k)
	if !ok {
		return
	}
	hwnd := win.CreateWindowEx(
		sample.ExStyle,
		windows.StringToUTF16Ptr(sampleClass(k)),
		windows.StringToUTF16Ptr(sample.Title),
		sample.Style,
		sample.X, sample.Y, sample.Width, sample.Height,
		0, 0, s.instance, nil,
	)
	if hwnd == 0 {
		logger.Warnf("demo: create %s window: %v", k, lastError("CreateWindowEx"))
		return
	}
	s.samples[hwnd] = sample

	y := int32(10)
	for _, line := range sample.Lines {
		s.label(hwnd, line, 5, y, sample.Width-10)
		y += lineHeight
	}
	if sample.CloseButton {
		s.button(hwnd, "Close", idClose, (sample.Width-80)/2, y+10, 80, 25)
	}

	if sample.Alpha < 255 {
		if !setLayeredWindowAttributes(uintptr(hwnd), sample.Alpha) {
			logger.Warnf("demo: set alpha on %s: %v", platform.Handle(hwnd), lastError("SetLayeredWindowAttributes"))
		}
	}
	if sample.Lifetime > 0 {
		win.SetTimer(hwnd, closeTimerID, uint32(sample.Lifetime/time.Millisecond), 0)
	}

	if sample.ExStyle&model.WS_EX_NOACTIVATE != 0 {
		win.ShowWindow(hwnd, swShowNoActivate)
	} else {
		win.ShowWindow(hwnd, swShow)
		win.SetForegroundWindow(hwnd)
	}
	logger.Infof("demo: created %s window %s", k, platform.Handle(hwnd))
}

func (s *demoSession) button(parent win.HWND, text string, id int, x, y, w, h int32) {
	win.CreateWindowEx(
		0,
		windows.StringToUTF16Ptr("BUTTON"),
		windows.StringToUTF16Ptr(text),
		model.WS_CHILD|model.WS_VISIBLE|model.WS_TABSTOP|bsPushButton,
		x, y, w, h,
		parent, win.HMENU(id), s.instance, nil,
	)
}

func (s *demoSession) label(parent win.HWND, text string, x, y, w int32) {
	win.CreateWindowEx(
		0,
		windows.StringToUTF16Ptr("STATIC"),
		windows.StringToUTF16Ptr(text),
		model.WS_CHILD|model.WS_VISIBLE|ssCenter,
		x, y, w, lineHeight,
		parent, 0, s.instance, nil,
	)
}

func wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	s := session
	if s == nil {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case win.WM_COMMAND:
		id := int(win.LOWORD(uint32(wParam)))
		switch {
		case id == idClose:
			win.DestroyWindow(hwnd)
			return 0
		case hwnd == s.controller && id >= idSpawnBase && id < idSpawnBase+len(demo.Windows()):
			s.spawn(demo.Kind(id - idSpawnBase))
			return 0
		}

	case win.WM_ACTIVATE:
		sample, ok := s.samples[hwnd]
		if ok && sample.CloseOnDeactivate && win.LOWORD(uint32(wParam)) == waInactive {
			logger.Debugf("demo: %s window %s lost focus", sample.Kind, platform.Handle(hwnd))
			win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
		}

	case win.WM_TIMER:
		if wParam == closeTimerID {
			win.KillTimer(hwnd, closeTimerID)
			win.DestroyWindow(hwnd)
			return 0
		}

	case wmCtlColorStatic:
		if sample, ok := s.samples[hwnd]; ok {
			win.SetBkMode(win.HDC(wParam), bkTransparent)
			return brushes[sample.Kind]
		}

	case win.WM_DESTROY:
		if hwnd == s.controller {
			for h := range s.samples {
				win.DestroyWindow(h)
			}
			win.PostQuitMessage(0)
			return 0
		}
		if sample, ok := s.samples[hwnd]; ok {
			delete(s.samples, hwnd)
			logger.Debugf("demo: %s window %s closed", sample.Kind, platform.Handle(hwnd))
		}
		return 0
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

var _ platform.DemoSpawner = (*Spawner)(nil)
