// hankey-tty runs the composition engine against the controlling terminal:
// keystrokes are read raw, composed syllables are edited in place with
// backspace rewrites, and everything the engine does not consume is echoed
// through untouched.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/eiannone/keyboard"

	"hankey/internal/config"
	"hankey/internal/editor"
	"hankey/internal/focus"
	"hankey/internal/keymap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hankey-tty: %v\n", err)
		os.Exit(1)
	}
}

type termSurface struct {
	out *os.File
}

func (t *termSurface) Insert(ch rune) error {
	_, err := t.out.WriteString(string(ch))
	return err
}

func (t *termSurface) Retract() error {
	_, err := t.out.WriteString("\b \b")
	return err
}

func run() error {
	configPath := flag.String("config", "", "path to an INI config file")
	layoutName := flag.String("layout", "", "builtin layout name (default dubeolsik)")
	layoutFile := flag.String("layout-file", "", "path to a custom INI layout")
	watchFocus := flag.Bool("watch-focus", false, "reset composition when the X11 focus moves")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *layoutName != "" {
		cfg.Layout = *layoutName
	}
	if *layoutFile != "" {
		cfg.LayoutFile = *layoutFile
	}

	layout, err := resolveLayout(cfg)
	if err != nil {
		return err
	}
	toggleKey, err := parseToggleKey(cfg.ToggleKey)
	if err != nil {
		return err
	}

	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	var mu sync.Mutex
	ctrl := editor.NewController(layout, &termSurface{out: os.Stdout})
	ctrl.SetEnabled(true)

	if *watchFocus {
		watcher, err := focus.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		watcher.Watch(200*time.Millisecond, func() {
			mu.Lock()
			ctrl.FocusLost()
			mu.Unlock()
		})
	}

	fmt.Fprintf(os.Stderr, "hankey-tty: layout %s, %s toggles, esc quits\n", layout.Name(), cfg.ToggleKey)

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		mu.Lock()
		quit, err := dispatch(ctrl, char, key, toggleKey)
		mu.Unlock()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func dispatch(ctrl *editor.Controller, char rune, key keyboard.Key, toggleKey keyboard.Key) (bool, error) {
	switch {
	case key == keyboard.KeyEsc || key == keyboard.KeyCtrlC:
		return true, nil

	case key == toggleKey:
		if ctrl.Toggle() {
			fmt.Fprint(os.Stderr, "[한]")
		} else {
			fmt.Fprint(os.Stderr, "[A]")
		}
		return false, nil

	case key == keyboard.KeyBackspace || key == keyboard.KeyBackspace2:
		handled, err := ctrl.HandleBackspace(false)
		if err != nil {
			return false, err
		}
		if !handled {
			// Nothing composing: delete the committed character ourselves.
			fmt.Print("\b \b")
		}
		return false, nil
	}

	switch key {
	case keyboard.KeySpace:
		char = ' '
	case keyboard.KeyEnter:
		char = '\n'
	case keyboard.KeyTab:
		char = '\t'
	}
	if char == 0 {
		return false, nil
	}

	ev := editor.KeyEvent{Key: unicode.ToLower(char), Shift: unicode.IsUpper(char)}
	handled, err := ctrl.HandleKey(ev)
	if err != nil {
		return false, err
	}
	if !handled {
		fmt.Print(string(char))
	}
	return false, nil
}

func resolveLayout(cfg config.Config) (*keymap.Layout, error) {
	if cfg.LayoutFile != "" {
		return keymap.LoadCustom(cfg.LayoutFile)
	}
	if _, err := config.ResolveLayoutName(cfg.Layout); err != nil {
		return nil, err
	}
	return keymap.Dubeolsik(), nil
}

func parseToggleKey(name string) (keyboard.Key, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ctrl+space":
		return keyboard.KeyCtrlSpace, nil
	case "ctrl+t":
		return keyboard.KeyCtrlT, nil
	case "ctrl+g":
		return keyboard.KeyCtrlG, nil
	default:
		return 0, fmt.Errorf("unsupported toggle key %q (ctrl+space, ctrl+t, ctrl+g)", name)
	}
}
