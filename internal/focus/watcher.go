// Package focus reports input-focus changes so a frontend can discard an
// in-progress composition when its window loses the keyboard. It polls the
// X server's active window; without a DISPLAY it degrades to a no-op.
package focus

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

type Watcher struct {
	conn   *xgb.Conn
	root   xproto.Window
	active xproto.Atom
	last   xproto.Window
	stop   chan struct{}
	done   chan struct{}
}

// NewWatcher connects to the X server named by DISPLAY. When DISPLAY is
// unset the watcher is inert: Watch never fires and Close is a no-op.
func NewWatcher() (*Watcher, error) {
	w := &Watcher{}
	if os.Getenv("DISPLAY") == "" {
		return w, nil
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect x server: %w", err)
	}
	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	name := "_NET_ACTIVE_WINDOW"
	atom, err := xproto.InternAtom(conn, true, uint16(len(name)), name).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("intern %s: %w", name, err)
	}

	w.conn = conn
	w.root = screen.Root
	w.active = atom.Atom
	return w, nil
}

func (w *Watcher) Close() {
	if w.stop != nil {
		close(w.stop)
		<-w.done
		w.stop = nil
	}
	if w.conn != nil {
		w.conn.Close()
		w.conn = nil
	}
}

// Watch polls the active window and invokes onChange whenever it moves to a
// different window. The callback runs on the watcher goroutine; keep it to a
// state reset.
func (w *Watcher) Watch(interval time.Duration, onChange func()) {
	if w.conn == nil || w.stop != nil {
		return
	}
	w.stop = make(chan struct{})
	w.done = make(chan struct{})
	go func() {
		defer close(w.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				current, err := w.activeWindow()
				if err != nil {
					continue
				}
				if w.last != 0 && current != w.last {
					onChange()
				}
				w.last = current
			}
		}
	}()
}

func (w *Watcher) activeWindow() (xproto.Window, error) {
	if w.active == 0 {
		return 0, fmt.Errorf("missing _NET_ACTIVE_WINDOW atom")
	}
	reply, err := xproto.GetProperty(w.conn, false, w.root, w.active, xproto.AtomWindow, 0, 1).Reply()
	if err != nil {
		return 0, err
	}
	if reply == nil || reply.ValueLen == 0 || len(reply.Value) < 4 {
		return 0, fmt.Errorf("no active window")
	}
	return xproto.Window(get32(reply.Value)), nil
}

func get32(buf []byte) uint32 {
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
}
