//go:build linux

package x11display

import (
	"fmt"

	"github.com/usausausausak/autoclick/internal/core/autoclicker"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
)

// Connector dials an X server with the XTEST extension.
type Connector struct {
	// Display is an X display name such as ":0". Empty uses $DISPLAY.
	Display string
}

func (c Connector) Connect() (autoclicker.Display, error) {
	conn, err := xgb.NewConnDisplay(c.Display)
	if err != nil {
		return nil, err
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("XTEST extension unavailable: %w", err)
	}
	return &Display{conn: conn}, nil
}

type Display struct {
	conn    *xgb.Conn
	pending []xtest.FakeInputCookie
}

func (d *Display) Roots() []autoclicker.Window {
	setup := xproto.Setup(d.conn)
	if setup == nil {
		return nil
	}
	roots := make([]autoclicker.Window, 0, len(setup.Roots))
	for _, screen := range setup.Roots {
		roots = append(roots, autoclicker.Window(screen.Root))
	}
	return roots
}

func (d *Display) QueryPointer(root autoclicker.Window) (autoclicker.Position, error) {
	reply, err := xproto.QueryPointer(d.conn, xproto.Window(root)).Reply()
	if err != nil {
		return autoclicker.Position{}, err
	}
	return autoclicker.Position{X: reply.RootX, Y: reply.RootY}, nil
}

func (d *Display) FakeButton(root autoclicker.Window, press bool) error {
	eventType := byte(xproto.ButtonRelease)
	if press {
		eventType = xproto.ButtonPress
	}
	cookie := xtest.FakeInputChecked(
		d.conn,
		eventType,
		byte(xproto.ButtonIndex1),
		xproto.TimeCurrentTime,
		xproto.Window(root),
		0,
		0,
		0,
	)
	d.pending = append(d.pending, cookie)
	return nil
}

// Flush waits for the server to process queued fake input. Checked
// requests round-trip on their own; otherwise a sync is issued.
func (d *Display) Flush() error {
	if len(d.pending) == 0 {
		d.conn.Sync()
		return nil
	}
	pending := d.pending
	d.pending = nil
	for _, cookie := range pending {
		if err := cookie.Check(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Display) Close() error {
	d.conn.Close()
	return nil
}
