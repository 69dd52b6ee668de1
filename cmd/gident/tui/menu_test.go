package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gident-cli/gident/internal/commands"
	"github.com/gident-cli/gident/internal/gitcfg"
	"github.com/gident-cli/gident/internal/store"
	"github.com/stretchr/testify/assert"
)

func sendKey(m tea.Model, key string) tea.Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return updated
}

func sendSpecialKey(m tea.Model, key tea.KeyType) tea.Model {
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	return updated
}

func threeProfiles() commands.MenuState {
	return commands.MenuState{
		Profiles: []store.Profile{
			{Name: "work", Username: "work-user", Email: "work@example.com", SSHKeyName: "id_work"},
			{Name: "personal", Username: "home-user", Email: "home@example.com", SSHKeyName: "id_home"},
			{Name: "oss", Username: "oss-user", Email: "oss@example.com", SSHKeyName: "id_oss"},
		},
		InRepo: true,
	}
}

func TestMenuModel_InitialState(t *testing.T) {
	m := NewMenuModel(threeProfiles())

	assert.Equal(t, 0, m.cursor)
	assert.False(t, m.Quitting)
	assert.Equal(t, Action{}, m.Selected)
}

func TestMenuModel_Navigation_DownUp(t *testing.T) {
	var model tea.Model = NewMenuModel(threeProfiles())

	model = sendKey(model, "j")
	assert.Equal(t, 1, model.(MenuModel).cursor)

	model = sendKey(model, "k")
	assert.Equal(t, 0, model.(MenuModel).cursor)
}

func TestMenuModel_Navigation_NoWraparound(t *testing.T) {
	var model tea.Model = NewMenuModel(threeProfiles())

	// At top, up stays at 0
	model = sendKey(model, "k")
	assert.Equal(t, 0, model.(MenuModel).cursor)

	// At bottom, down stays at last
	model = sendKey(model, "j")
	model = sendKey(model, "j")
	model = sendKey(model, "j")
	assert.Equal(t, 2, model.(MenuModel).cursor)
}

func TestMenuModel_EnterSwitchesLocal(t *testing.T) {
	var model tea.Model = NewMenuModel(threeProfiles())

	model = sendKey(model, "j")
	model = sendSpecialKey(model, tea.KeyEnter)

	menu := model.(MenuModel)
	assert.Equal(t, Action{Kind: ActionSwitch, Name: "personal", Scope: gitcfg.ScopeLocal}, menu.Selected)
	assert.False(t, menu.Quitting, "selecting an action is not quitting")
}

func TestMenuModel_GSwitchesGlobal(t *testing.T) {
	var model tea.Model = NewMenuModel(threeProfiles())

	model = sendKey(model, "g")

	menu := model.(MenuModel)
	assert.Equal(t, Action{Kind: ActionSwitch, Name: "work", Scope: gitcfg.ScopeGlobal}, menu.Selected)
}

func TestMenuModel_DDeletes(t *testing.T) {
	var model tea.Model = NewMenuModel(threeProfiles())

	model = sendKey(model, "j")
	model = sendKey(model, "j")
	model = sendKey(model, "d")

	menu := model.(MenuModel)
	assert.Equal(t, ActionDelete, menu.Selected.Kind)
	assert.Equal(t, "oss", menu.Selected.Name)
}

func TestMenuModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q"} {
		var model tea.Model = NewMenuModel(threeProfiles())
		model = sendKey(model, key)
		assert.True(t, model.(MenuModel).Quitting, "key %q should quit", key)
	}

	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		var model tea.Model = NewMenuModel(threeProfiles())
		model = sendSpecialKey(model, key)
		assert.True(t, model.(MenuModel).Quitting, "key %v should quit", key)
	}
}

func TestMenuModel_EmptyState_SelectionIsNoop(t *testing.T) {
	var model tea.Model = NewMenuModel(commands.MenuState{})

	model = sendSpecialKey(model, tea.KeyEnter)
	model = sendKey(model, "g")
	model = sendKey(model, "d")

	menu := model.(MenuModel)
	assert.Equal(t, Action{}, menu.Selected)
	assert.False(t, menu.Quitting)
}

func TestMenuModel_View_ActiveAnnotations(t *testing.T) {
	state := threeProfiles()
	state.GlobalName = "personal"
	state.LocalName = "work"
	m := NewMenuModel(state)

	view := m.View()
	assert.Contains(t, view, "work")
	assert.Contains(t, view, "(local)")
	assert.Contains(t, view, "(global)")
	assert.Contains(t, view, "work@example.com")
}

func TestMenuModel_View_OutsideRepoHidesLocalSwitch(t *testing.T) {
	state := threeProfiles()
	state.InRepo = false
	m := NewMenuModel(state)

	view := m.View()
	assert.Contains(t, view, "local switch unavailable")
	assert.NotContains(t, view, "enter switch (local)")
}

func TestMenuModel_View_EmptyStatePrompt(t *testing.T) {
	m := NewMenuModel(commands.MenuState{})

	view := m.View()
	assert.Contains(t, view, "No profiles configured")
	assert.Contains(t, view, "gident add")
}
