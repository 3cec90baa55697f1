package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/devilcalc/internal/commentary"
	"github.com/verte-zerg/devilcalc/internal/game"
	"github.com/verte-zerg/devilcalc/internal/model"
)

// constSource always asks for 1 + 2.
type constSource struct {
	n int
}

func (s *constSource) Next() model.MathProblem {
	s.n++
	return model.MathProblem{ID: fmt.Sprintf("p%d", s.n), Expression: "1 + 2", Answer: 3}
}

func newTestModel(problems int) *Model {
	rules := game.Rules{StartLevel: 1, Problems: problems, PassAccuracy: 65}
	session := game.NewSession(rules, &constSource{}, nil)
	return NewModel(session, commentary.NewWithSeed("en", 1), nil, Options{})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

// messages runs cmd and flattens batches into the messages they produce.
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, messages(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// send delivers msg and feeds back every timer message the model schedules.
func send(m *Model, msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		_, cmd := m.Update(next)
		for _, out := range messages(cmd) {
			switch out.(type) {
			case advanceMsg, transitionDoneMsg, analysisMsg:
				queue = append(queue, out)
			}
		}
	}
}

func TestModelFullRun(t *testing.T) {
	m := newTestModel(2)
	if !strings.Contains(m.View(), "65%") {
		t.Fatalf("menu should show the pass threshold: %s", m.View())
	}

	send(m, keyEnter)
	if m.session.State() != game.StatePlaying {
		t.Fatalf("expected playing, got %s", m.session.State())
	}
	if !strings.Contains(m.View(), "LEVEL 1") {
		t.Fatalf("expected level header: %s", m.View())
	}

	// Level 1: one memorize tap, then both answers correct.
	send(m, keySpace)
	send(m, keyRunes("3"))
	send(m, keyRunes("3"))
	if m.session.State() != game.StatePlaying || m.session.LevelN() != 2 {
		t.Fatalf("expected level 2 after passing, got %s at %d", m.session.State(), m.session.LevelN())
	}

	// Level 2: depth equals problem count, so both taps memorize and the level drains.
	send(m, keySpace)
	send(m, keySpace)
	send(m, keyRunes("4"))
	send(m, keyRunes("4"))
	if m.session.State() != game.StateResults {
		t.Fatalf("expected results, got %s", m.session.State())
	}
	if !m.analysisReady {
		t.Fatalf("expected analysis to be delivered")
	}
	found := false
	for _, remark := range commentary.Remarks("en", commentary.TierFor(0)) {
		if remark == m.analysis {
			found = true
		}
	}
	if !found {
		t.Fatalf("unexpected remark %q", m.analysis)
	}

	st := m.session.Stats()
	if st.MaxLevel != 2 || st.TotalCorrect != 2 || st.TotalProblems != 4 {
		t.Fatalf("unexpected session stats: %+v", st)
	}
	view := m.View()
	for _, want := range []string{"GAME OVER", "Level 2", "50%", "1-back", "2-back"} {
		if !strings.Contains(view, want) {
			t.Fatalf("results view missing %q: %s", want, view)
		}
	}
}

func TestModelTransitionScreen(t *testing.T) {
	m := newTestModel(1)
	send(m, keyEnter)
	send(m, keySpace)

	_, cmd := m.Update(keyRunes("3"))
	msgs := messages(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one feedback timer, got %d", len(msgs))
	}
	_, cmd = m.Update(msgs[0])
	if m.session.State() != game.StateTransition {
		t.Fatalf("expected transition, got %s", m.session.State())
	}
	if view := m.View(); !strings.Contains(view, "LEVEL PASSED!") || !strings.Contains(view, "2-back") {
		t.Fatalf("unexpected transition view: %s", view)
	}

	// Skipping the wait makes the pending timer stale.
	pending := messages(cmd)
	send(m, keyEnter)
	if m.session.LevelN() != 2 || m.session.State() != game.StatePlaying {
		t.Fatalf("expected level 2")
	}
	for _, msg := range pending {
		send(m, msg)
	}
	if m.session.LevelN() != 2 {
		t.Fatalf("stale transition timer advanced the level to %d", m.session.LevelN())
	}
}

func TestModelInputBlockedDuringFeedback(t *testing.T) {
	m := newTestModel(3)
	send(m, keyEnter)
	send(m, keySpace)

	_, cmd := m.Update(keyRunes("3"))
	if cmd == nil {
		t.Fatalf("expected feedback timer")
	}
	if !strings.Contains(m.View(), "✓") {
		t.Fatalf("expected correct mark in feedback: %s", m.View())
	}
	_, second := m.Update(keyRunes("3"))
	if second != nil {
		t.Fatalf("expected input to be ignored while feedback is shown")
	}
	if got := m.session.Level().Stats().Total; got != 1 {
		t.Fatalf("expected 1 answer, got %d", got)
	}
}

func TestModelGiveUpWithoutFinishedLevel(t *testing.T) {
	m := newTestModel(3)
	send(m, keyEnter)
	send(m, keySpace)
	_, cmd := m.Update(keyRunes("3"))
	stale := messages(cmd)

	send(m, keyEsc)
	if m.session.State() != game.StateMenu {
		t.Fatalf("expected menu after giving up, got %s", m.session.State())
	}
	for _, msg := range stale {
		send(m, msg)
	}
	if m.session.State() != game.StateMenu {
		t.Fatalf("stale feedback timer changed state to %s", m.session.State())
	}
}

func TestModelResultsKeys(t *testing.T) {
	m := newTestModel(1)
	send(m, keyEnter)
	send(m, keySpace)
	send(m, keyRunes("0"))
	if m.session.State() != game.StateResults {
		t.Fatalf("expected results, got %s", m.session.State())
	}

	send(m, keyRunes("r"))
	if m.session.State() != game.StatePlaying || m.session.LevelN() != 1 {
		t.Fatalf("expected retry to restart level 1")
	}
	if len(m.session.Stats().LevelStats) != 0 {
		t.Fatalf("expected retry to reset stats")
	}

	send(m, keySpace)
	send(m, keyRunes("0"))
	send(m, keyRunes("m"))
	if m.session.State() != game.StateMenu {
		t.Fatalf("expected menu, got %s", m.session.State())
	}

	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestModelWindowSizeCentersView(t *testing.T) {
	m := newTestModel(2)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 40 {
		t.Fatalf("expected view to fill the height, got %d lines", len(lines))
	}
}
