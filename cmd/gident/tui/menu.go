// Package tui renders the interactive profile menu. The model never calls
// into the core directly: it quits with a Selected action and the command
// layer executes it between menu runs.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gident-cli/gident/internal/commands"
	"github.com/gident-cli/gident/internal/gitcfg"
)

// ActionKind discriminates what the user chose.
type ActionKind int

const (
	// ActionNone means the menu was dismissed.
	ActionNone ActionKind = iota
	// ActionSwitch applies the selected profile.
	ActionSwitch
	// ActionDelete removes the selected profile.
	ActionDelete
)

// Action is the leaf choice the menu quit with.
type Action struct {
	Kind  ActionKind
	Name  string
	Scope gitcfg.Scope
}

// MenuModel is the Bubble Tea model for the profile menu.
type MenuModel struct {
	state    commands.MenuState
	cursor   int
	width    int
	height   int
	Version  string
	Quitting bool
	Selected Action // set when a leaf action is chosen
}

// NewMenuModel creates a menu model from detected state.
func NewMenuModel(state commands.MenuState) MenuModel {
	return MenuModel{state: state}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

// selectedName returns the profile name under the cursor, or "".
func (m MenuModel) selectedName() string {
	if m.cursor < 0 || m.cursor >= len(m.state.Profiles) {
		return ""
	}
	return m.state.Profiles[m.cursor].Name
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.Quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.state.Profiles)-1 {
				m.cursor++
			}

		case "enter", "l":
			if name := m.selectedName(); name != "" {
				m.Selected = Action{Kind: ActionSwitch, Name: name, Scope: gitcfg.ScopeLocal}
				return m, tea.Quit
			}

		case "g":
			if name := m.selectedName(); name != "" {
				m.Selected = Action{Kind: ActionSwitch, Name: name, Scope: gitcfg.ScopeGlobal}
				return m, tea.Quit
			}

		case "d":
			if name := m.selectedName(); name != "" {
				m.Selected = Action{Kind: ActionDelete, Name: name}
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m MenuModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("gident"))
	if m.Version != "" {
		b.WriteString(" " + detailStyle.Render("v"+m.Version))
	}
	b.WriteString("\n\n")

	if len(m.state.Profiles) == 0 {
		b.WriteString(warnStyle.Render("No profiles configured."))
		b.WriteString("\n")
		b.WriteString(detailStyle.Render("Create one with: gident add <name>"))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	for i, p := range m.state.Profiles {
		prefix := "  "
		style := itemStyle
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
			style = cursorStyle
		}

		label := p.Name
		switch p.Name {
		case m.state.LocalName:
			label += activeStyle.Render(" (local)")
		case m.state.GlobalName:
			label += activeStyle.Render(" (global)")
		}

		b.WriteString(prefix + style.Render(label))
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(fmt.Sprintf("    %s <%s>  key:%s", p.Username, p.Email, p.SSHKeyName)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "enter switch (local) · g switch global · d delete · q quit"
	if !m.state.InRepo {
		help = "g switch global · d delete · q quit"
		b.WriteString(warnStyle.Render("Not inside a git repository; local switch unavailable."))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}
