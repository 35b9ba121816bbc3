package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hankey/internal/keymap"
)

// scriptSurface records every display op and replays them onto a buffer so
// tests can assert both the op sequence and the resulting text.
type scriptSurface struct {
	ops  []string
	text []rune
}

func (s *scriptSurface) Insert(ch rune) error {
	s.ops = append(s.ops, "insert "+string(ch))
	s.text = append(s.text, ch)
	return nil
}

func (s *scriptSurface) Retract() error {
	s.ops = append(s.ops, "retract")
	if len(s.text) == 0 {
		return nil
	}
	s.text = s.text[:len(s.text)-1]
	return nil
}

func (s *scriptSurface) String() string { return string(s.text) }

func newTestController(t *testing.T) (*Controller, *scriptSurface) {
	t.Helper()
	surface := &scriptSurface{}
	ctrl := NewController(keymap.Dubeolsik(), surface)
	ctrl.SetEnabled(true)
	return ctrl, surface
}

func typeKeys(t *testing.T, ctrl *Controller, keys string) {
	t.Helper()
	for _, k := range keys {
		shift := k >= 'A' && k <= 'Z'
		if shift {
			k += 'a' - 'A'
		}
		handled, err := ctrl.HandleKey(KeyEvent{Key: k, Shift: shift})
		require.NoError(t, err)
		require.True(t, handled, "key %q should be consumed", k)
	}
}

func TestTypeSyllableInPlace(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "gks") // ㅎ ㅏ ㄴ
	require.Equal(t, "한", surface.String())
	require.Equal(t, []string{
		"insert ㅎ",
		"retract", "insert 하",
		"retract", "insert 한",
	}, surface.ops)
	require.True(t, ctrl.Composing())
}

func TestMigrationRedisplaysThenAppends(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "rkqk") // ㄱ ㅏ ㅂ ㅏ
	require.Equal(t, "가바", surface.String())
	require.Equal(t, []string{
		"insert ㄱ",
		"retract", "insert 가",
		"retract", "insert 갑",
		"retract", "insert 가", "insert 바",
	}, surface.ops)
}

func TestClusterMigration(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "ekfrk") // ㄷ ㅏ ㄹ ㄱ ㅏ
	require.Equal(t, "달가", surface.String())
}

func TestGeminateMigration(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "rkTk") // ㄱ ㅏ ㅆ ㅏ
	require.Equal(t, "가싸", surface.String())
}

func TestResetLeavesCommittedTextAlone(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "rkE") // ㄱ ㅏ, then ㄸ cannot close the syllable
	require.Equal(t, "가ㄸ", surface.String())

	typeKeys(t, ctrl, "k")
	require.Equal(t, "가따", surface.String())
}

func TestBackspaceUnwindsOneJamo(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "rks") // 간
	surface.ops = nil

	handled, err := ctrl.HandleBackspace(false)
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, "가", surface.String())
	require.Equal(t, []string{"retract", "insert 가"}, surface.ops)

	handled, err = ctrl.HandleBackspace(false)
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, "ㄱ", surface.String())

	handled, err = ctrl.HandleBackspace(false)
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, "", surface.String())
	require.False(t, ctrl.Composing())

	// Nothing composing: the host handles deletion itself.
	handled, err = ctrl.HandleBackspace(false)
	require.NoError(t, err)
	require.False(t, handled)
}

func TestBackspaceIgnoresAutoRepeat(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "rk")
	handled, err := ctrl.HandleBackspace(true)
	require.NoError(t, err)
	require.False(t, handled)
	require.Equal(t, "가", surface.String())
	require.True(t, ctrl.Composing())
}

func TestToggleFinalizesWithoutDisplayOps(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "rk")
	ops := len(surface.ops)

	require.False(t, ctrl.Toggle())
	require.False(t, ctrl.Composing())
	require.Len(t, surface.ops, ops, "toggling must not touch the display")
	require.Equal(t, "가", surface.String())

	// Toggling off twice is idempotent.
	ctrl.SetEnabled(false)
	require.False(t, ctrl.Enabled())

	handled, err := ctrl.HandleKey(KeyEvent{Key: 'r'})
	require.NoError(t, err)
	require.False(t, handled, "disabled controller must pass keys through")

	require.True(t, ctrl.Toggle())
	typeKeys(t, ctrl, "rk")
	require.Equal(t, "가가", surface.String())
}

func TestFocusLostFinalizesInPlace(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "rk")
	ops := len(surface.ops)

	ctrl.FocusLost()
	require.False(t, ctrl.Composing())
	require.Len(t, surface.ops, ops)
	require.True(t, ctrl.Enabled(), "focus loss clears state, not the mode")

	ctrl.FocusLost() // idempotent on an empty state
	require.Len(t, surface.ops, ops)

	typeKeys(t, ctrl, "rk")
	require.Equal(t, "가가", surface.String())
}

func TestUnmappedKeyFinalizesAndPassesThrough(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "rk")
	handled, err := ctrl.HandleKey(KeyEvent{Key: '1'})
	require.NoError(t, err)
	require.False(t, handled)
	require.False(t, ctrl.Composing())
	require.Equal(t, "가", surface.String())
}

func TestModifierChordFinalizesAndPassesThrough(t *testing.T) {
	ctrl, surface := newTestController(t)

	typeKeys(t, ctrl, "rk")
	handled, err := ctrl.HandleKey(KeyEvent{Key: 'r', OtherModifiers: true})
	require.NoError(t, err)
	require.False(t, handled)
	require.False(t, ctrl.Composing())
	require.Equal(t, "가", surface.String())
}

func TestJamoKeysRepeatNormally(t *testing.T) {
	ctrl, surface := newTestController(t)

	handled, err := ctrl.HandleKey(KeyEvent{Key: 'r', AutoRepeat: true})
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, "ㄱ", surface.String())
}

func TestPreedit(t *testing.T) {
	ctrl, _ := newTestController(t)
	require.Equal(t, rune(0), ctrl.state.Preedit())

	typeKeys(t, ctrl, "rk")
	require.Equal(t, '가', ctrl.state.Preedit())
}
