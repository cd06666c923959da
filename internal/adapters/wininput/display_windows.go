//go:build windows

package wininput

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/usausausausak/autoclick/internal/core/autoclicker"
)

const (
	inputMouse          = 0
	mouseeventfLeftDown = 0x0002
	mouseeventfLeftUp   = 0x0004

	// desktopRoot stands in for the single virtual desktop.
	desktopRoot autoclicker.Window = 0
)

var (
	user32 = syscall.NewLazyDLL("user32.dll")

	procSendInput    = user32.NewProc("SendInput")
	procGetCursorPos = user32.NewProc("GetCursorPos")
)

type point struct {
	X int32
	Y int32
}

type mouseInput struct {
	Dx          int32
	Dy          int32
	MouseData   uint32
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

type input struct {
	Type uint32
	Mi   mouseInput
}

// Connector gives access to the interactive desktop through user32.
type Connector struct{}

func (Connector) Connect() (autoclicker.Display, error) {
	if err := user32.Load(); err != nil {
		return nil, err
	}
	if err := procSendInput.Find(); err != nil {
		return nil, err
	}
	if err := procGetCursorPos.Find(); err != nil {
		return nil, err
	}
	return &Display{}, nil
}

// Display batches button events until Flush hands them to SendInput.
type Display struct {
	pending []input
}

func (d *Display) Roots() []autoclicker.Window {
	return []autoclicker.Window{desktopRoot}
}

func (d *Display) QueryPointer(autoclicker.Window) (autoclicker.Position, error) {
	var pt point
	ok, _, callErr := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ok == 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return autoclicker.Position{}, callErr
		}
		return autoclicker.Position{}, fmt.Errorf("GetCursorPos failed")
	}
	return autoclicker.Position{X: clampInt32ToInt16(pt.X), Y: clampInt32ToInt16(pt.Y)}, nil
}

func (d *Display) FakeButton(_ autoclicker.Window, press bool) error {
	flags := uint32(mouseeventfLeftUp)
	if press {
		flags = mouseeventfLeftDown
	}
	d.pending = append(d.pending, input{
		Type: inputMouse,
		Mi:   mouseInput{DwFlags: flags},
	})
	return nil
}

func (d *Display) Flush() error {
	if len(d.pending) == 0 {
		return nil
	}
	inputs := d.pending
	d.pending = nil

	sent, _, callErr := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if sent != uintptr(len(inputs)) {
		if callErr != nil && callErr != syscall.Errno(0) {
			return callErr
		}
		return fmt.Errorf("SendInput sent %d of %d inputs", sent, len(inputs))
	}
	return nil
}

func (d *Display) Close() error {
	return nil
}
