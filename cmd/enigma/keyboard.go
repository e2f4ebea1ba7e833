package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	enigma "github.com/smnsjas/go-enigma"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")).
			MarginLeft(1)

	windowStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Bold(true)

	lampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

func keyboardCmd() *cobra.Command {
	var flags machineFlags

	cmd := &cobra.Command{
		Use:   "keyboard",
		Short: "Interactive session: type letters, read lamps",
		Long: `Open an interactive machine session.

Each letter typed steps the rotors and lights the enciphered lamp, exactly
as one keystroke on the real machine. Non-letter keys are ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.build()
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newKeyboardModel(m)).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// keyboardModel is the Bubble Tea model for the interactive session.
type keyboardModel struct {
	machine *enigma.Machine
	typed   string
	lamps   string
}

func newKeyboardModel(m *enigma.Machine) keyboardModel {
	return keyboardModel{machine: m}
}

func (m keyboardModel) Init() tea.Cmd {
	return nil
}

func (m keyboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			// One keystroke per letter; anything else is not a key the
			// machine has.
			out, err := m.machine.Encode(string(r))
			if err != nil {
				continue
			}
			m.typed += strings.ToUpper(string(r))
			m.lamps += out
		}
	}
	return m, nil
}

func (m keyboardModel) View() string {
	windows := m.machine.Windows()
	wheels := lipgloss.JoinHorizontal(lipgloss.Top,
		windowStyle.Render(string(windows[2])), // left (slow)
		windowStyle.Render(string(windows[1])), // middle
		windowStyle.Render(string(windows[0])), // right (fast)
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("ENIGMA") + "\n\n")
	b.WriteString(wheels + "\n\n")
	b.WriteString(fmt.Sprintf(" %s %s\n", textStyle.Render("keys: "), textStyle.Render(m.typed)))
	b.WriteString(fmt.Sprintf(" %s %s\n", textStyle.Render("lamps:"), lampStyle.Render(m.lamps)))
	b.WriteString(helpStyle.Render(" type to encipher • esc to quit"))
	return b.String()
}
