package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/devilcalc/internal/game"
)

type keyMap struct {
	Start     key.Binding
	Memorize  key.Binding
	Answer    key.Binding
	GiveUp    key.Binding
	Continue  key.Binding
	Retry     key.Binding
	Menu      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Memorize: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "memorize"),
		),
		Answer: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "answer"),
		),
		GiveUp: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "give up"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "continue"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "esc"),
			key.WithHelp("m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// bindings adapts a slice of bindings to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k keyMap) forState(state game.State, phase game.Phase) bindings {
	switch state {
	case game.StateMenu:
		return bindings{k.Start, k.Quit}
	case game.StatePlaying:
		if phase == game.PhaseMemorize {
			return bindings{k.Memorize, k.GiveUp}
		}
		return bindings{k.Answer, k.GiveUp}
	case game.StateTransition:
		return bindings{k.Continue}
	case game.StateResults:
		return bindings{k.Retry, k.Menu, k.Quit}
	default:
		return nil
	}
}
