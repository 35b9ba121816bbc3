// hankey-pad is a practice pad for the composition engine: a small terminal
// window where typed romanized keys compose into Hangul syllables in place.
// The pad itself is the edit surface, so every retract/insert the engine
// issues is visible as the buffer rewrites its last character.
package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hankey/internal/editor"
	"hankey/internal/keymap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	hangulStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	latinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Width(50)
)

// padBuffer is the in-memory edit surface the controller writes into.
type padBuffer struct {
	runes []rune
}

func (b *padBuffer) Insert(ch rune) error {
	b.runes = append(b.runes, ch)
	return nil
}

func (b *padBuffer) Retract() error {
	if len(b.runes) == 0 {
		return fmt.Errorf("retract on empty buffer")
	}
	b.runes = b.runes[:len(b.runes)-1]
	return nil
}

func (b *padBuffer) String() string { return string(b.runes) }

type model struct {
	buf  *padBuffer
	ctrl *editor.Controller
	err  error
}

func initialModel() model {
	buf := &padBuffer{}
	ctrl := editor.NewController(keymap.Dubeolsik(), buf)
	ctrl.SetEnabled(true)
	return model{buf: buf, ctrl: ctrl}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlT:
		m.ctrl.Toggle()
		return m, nil

	case tea.KeyBackspace:
		handled, err := m.ctrl.HandleBackspace(false)
		if err != nil {
			m.err = err
			return m, nil
		}
		if !handled && len(m.buf.runes) > 0 {
			m.buf.runes = m.buf.runes[:len(m.buf.runes)-1]
		}
		return m, nil

	case tea.KeySpace:
		m.typeRune(' ')
		return m, nil

	case tea.KeyEnter:
		m.typeRune('\n')
		return m, nil

	case tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			m.typeRune(r)
		}
		return m, nil
	}

	return m, nil
}

func (m *model) typeRune(r rune) {
	ev := editor.KeyEvent{Key: unicode.ToLower(r), Shift: unicode.IsUpper(r)}
	handled, err := m.ctrl.HandleKey(ev)
	if err != nil {
		m.err = err
		return
	}
	if !handled {
		m.buf.runes = append(m.buf.runes, r)
	}
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("hankey practice pad"))
	s.WriteString("\n\n")

	mode := latinStyle.Render("[A]")
	if m.ctrl.Enabled() {
		mode = hangulStyle.Render("[한]")
	}
	s.WriteString(mode)
	s.WriteString("  ")
	s.WriteString(m.buf.String())
	s.WriteString(subtleStyle.Render("▏"))
	s.WriteString("\n\n")

	if m.err != nil {
		s.WriteString(subtleStyle.Render(fmt.Sprintf("error: %v", m.err)))
		s.WriteString("\n")
	}
	s.WriteString(subtleStyle.Render("ctrl+t=toggle • backspace=unwind • esc=quit"))

	return boxStyle.Render(s.String())
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
