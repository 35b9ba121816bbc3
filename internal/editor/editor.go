// Package editor orchestrates the composition automata against a host text
// surface, one keystroke at a time.
package editor

import (
	"hankey/internal/compose"
	"hankey/internal/jamo"
	"hankey/internal/keymap"
)

// Surface is the host text target. Retract removes the most recently
// inserted character; Insert places exactly one character at the caret.
// These two primitives are all the engine ever issues.
type Surface interface {
	Insert(ch rune) error
	Retract() error
}

// KeyEvent is one pre-filtered keystroke from the host.
type KeyEvent struct {
	Key   rune
	Shift bool
	// AutoRepeat marks a held-key repeat. Jamo keys compose normally under
	// repeat; backspace does not unwind under repeat.
	AutoRepeat bool
	// OtherModifiers is set when a modifier beyond shift was held. The chord
	// invalidates any in-progress composition.
	OtherModifiers bool
}

// EngineState is the per-input-context composition state. It is owned by
// exactly one Controller and mutated only by sequential keystroke delivery;
// the jamo tables and layouts it consults are shared and read-only.
type EngineState struct {
	stack compose.Stack
	// suppressRetract defers to the migration rule: the freshly seeded
	// syllable is appended, not swapped in over the finalized one.
	suppressRetract bool
}

// Reset discards any in-progress composition. It has no display side
// effects; everything already rendered is in its final form.
func (s *EngineState) Reset() {
	s.stack = nil
	s.suppressRetract = false
}

func (s *EngineState) Composing() bool { return len(s.stack) > 0 }

// Preedit returns the character the current composition displays, or 0.
func (s *EngineState) Preedit() rune {
	r, ok := compose.Render(s.stack)
	if !ok {
		return 0
	}
	return r
}

// Controller drives one composition context. Calls must be sequential: the
// display ops for a keystroke are fully issued before the next is accepted.
type Controller struct {
	layout  *keymap.Layout
	surface Surface
	state   EngineState
	enabled bool
}

func NewController(layout *keymap.Layout, surface Surface) *Controller {
	return &Controller{layout: layout, surface: surface}
}

func (c *Controller) Enabled() bool { return c.enabled }

// SetEnabled switches composition mode. Turning it off discards the state
// without display side effects; what is on the surface is already final.
func (c *Controller) SetEnabled(on bool) {
	if c.enabled == on {
		return
	}
	c.enabled = on
	if !on {
		c.state.Reset()
	}
}

// Toggle flips composition mode and reports the new setting.
func (c *Controller) Toggle() bool {
	c.SetEnabled(!c.enabled)
	return c.enabled
}

// FocusLost discards the composition state unconditionally, with no display
// side effect.
func (c *Controller) FocusLost() {
	c.state.Reset()
}

// Composing reports whether a syllable is currently open.
func (c *Controller) Composing() bool { return c.state.Composing() }

// HandleKey feeds one keystroke. The returned bool is true when the event
// was consumed; false hands it back to the host (composition mode off,
// unsupported chord, or a key the layout does not map).
func (c *Controller) HandleKey(ev KeyEvent) (bool, error) {
	if !c.enabled {
		return false, nil
	}
	if ev.OtherModifiers {
		// Unsupported chord: whatever was being composed is finalized as
		// displayed and the chord passes through.
		c.state.Reset()
		return false, nil
	}

	in, ok := c.layout.Classify(ev.Key, ev.Shift)
	if !ok {
		// Unmapped printable: finalize in place so the host's own character
		// is never retracted by a later in-place edit.
		c.state.Reset()
		return false, nil
	}

	return true, c.feed(in)
}

func (c *Controller) feed(in jamo.Input) error {
	tr := compose.Apply(c.state.stack, in)

	if tr.Migrated {
		// Re-display the closed syllable without its migrated final, then
		// append the new syllable as a separate character.
		c.state.stack = tr.Completed
		if err := c.show(); err != nil {
			return err
		}
		c.state.suppressRetract = true
	}

	c.state.stack = tr.Stack
	return c.show()
}

// show issues the display ops for the current stack: a fresh single-slot
// composition is appended, anything longer replaces the character it was
// displaying, and suppressRetract skips exactly one replacement.
func (c *Controller) show() error {
	ch, ok := compose.Render(c.state.stack)
	if !ok {
		return nil
	}
	if len(c.state.stack) != 1 && !c.state.suppressRetract {
		if err := c.surface.Retract(); err != nil {
			return err
		}
	}
	c.state.suppressRetract = false
	return c.surface.Insert(ch)
}

// HandleBackspace unwinds one jamo. Auto-repeat and an empty composition
// pass through so the host deletes committed text itself.
func (c *Controller) HandleBackspace(autoRepeat bool) (bool, error) {
	if !c.enabled || autoRepeat || !c.state.Composing() {
		return false, nil
	}
	c.state.stack = c.state.stack.Pop()
	if err := c.surface.Retract(); err != nil {
		return true, err
	}
	ch, ok := compose.Render(c.state.stack)
	if !ok {
		return true, nil
	}
	return true, c.surface.Insert(ch)
}
