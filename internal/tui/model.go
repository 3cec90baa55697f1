package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/devilcalc/internal/commentary"
	"github.com/verte-zerg/devilcalc/internal/game"
	statsPkg "github.com/verte-zerg/devilcalc/internal/stats"
)

// Default screen delays.
const (
	DefaultTransitionDelay = 2500 * time.Millisecond
	DefaultFeedbackDelay   = 800 * time.Millisecond
	DefaultAnalysisDelay   = 600 * time.Millisecond
)

// Options tunes screen timing.
type Options struct {
	TransitionDelay time.Duration
	FeedbackDelay   time.Duration
	AnalysisDelay   time.Duration
}

// DefaultOptions returns the standard delays.
func DefaultOptions() Options {
	return Options{
		TransitionDelay: DefaultTransitionDelay,
		FeedbackDelay:   DefaultFeedbackDelay,
		AnalysisDelay:   DefaultAnalysisDelay,
	}
}

type advanceMsg struct{ seq int }

type transitionDoneMsg struct{ seq int }

type analysisMsg struct {
	seq  int
	text string
}

// Model implements the Bubble Tea game UI.
type Model struct {
	session *game.Session
	analyst *commentary.Analyst
	logger  *zap.Logger
	opts    Options

	keys     keyMap
	help     help.Model
	progress progress.Model
	spinner  spinner.Model

	width  int
	height int

	// seq invalidates timers scheduled for an earlier screen.
	seq           int
	analysis      string
	analysisReady bool
}

// NewModel constructs a game TUI model.
func NewModel(session *game.Session, analyst *commentary.Analyst, logger *zap.Logger, opts Options) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	bar := progress.New(progress.WithSolidFill(string(accent)), progress.WithoutPercentage())
	bar.Width = cardWidth
	spin := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(accentStyle))
	return &Model{
		session:  session,
		analyst:  analyst,
		logger:   logger,
		opts:     opts,
		keys:     newKeyMap(),
		help:     help.New(),
		progress: bar,
		spinner:  spin,
	}
}

// Session returns the underlying game session.
func (m *Model) Session() *game.Session {
	return m.session
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case advanceMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.advance()
	case transitionDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.nextLevel()
	case analysisMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.analysis = msg.text
		m.analysisReady = true
		return m, nil
	case spinner.TickMsg:
		if m.session.State() != game.StateResults || m.analysisReady {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.State() {
	case game.StateMenu:
		switch {
		case key.Matches(msg, m.keys.Start):
			m.startRun()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	case game.StatePlaying:
		return m, m.handlePlayingKey(msg)
	case game.StateTransition:
		if key.Matches(msg, m.keys.Continue) {
			return m, m.nextLevel()
		}
		return m, nil
	case game.StateResults:
		switch {
		case key.Matches(msg, m.keys.Retry):
			m.startRun()
		case key.Matches(msg, m.keys.Menu):
			m.seq++
			m.session.Home()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handlePlayingKey(msg tea.KeyMsg) tea.Cmd {
	level := m.session.Level()
	if level == nil {
		return nil
	}
	if key.Matches(msg, m.keys.GiveUp) {
		m.logger.Info("level abandoned", zap.Int("n", level.N()), zap.Int("remaining", level.Remaining()))
		m.seq++
		m.session.Abandon()
		if m.session.State() == game.StateResults {
			return m.startAnalysis()
		}
		return nil
	}
	if level.Phase() == game.PhaseMemorize {
		if key.Matches(msg, m.keys.Memorize) {
			if err := level.Memorize(); err != nil {
				m.logger.Debug("memorize ignored", zap.Error(err))
			}
		}
		return nil
	}
	if !key.Matches(msg, m.keys.Answer) {
		return nil
	}
	digit := int(msg.Runes[0] - '0')
	fb, err := level.Answer(digit)
	if err != nil {
		m.logger.Debug("answer ignored", zap.Int("input", digit), zap.Error(err))
		return nil
	}
	last := level.Stats().History
	m.logger.Debug("answer",
		zap.Int("n", level.N()),
		zap.String("expression", fb.Problem.Expression),
		zap.Int("input", fb.Input),
		zap.Bool("correct", fb.Correct),
		zap.Int64("time_ms", last[len(last)-1].TimeMs),
	)
	m.seq++
	return after(m.opts.FeedbackDelay, advanceMsg{seq: m.seq})
}

func (m *Model) startRun() {
	m.seq++
	level := m.session.Start()
	m.logger.Info("session started", zap.Int("n", level.N()), zap.Int("problems", m.session.Rules().Problems))
}

func (m *Model) advance() tea.Cmd {
	level := m.session.Level()
	if level == nil {
		return nil
	}
	done, err := level.Advance()
	if err != nil {
		m.logger.Debug("advance ignored", zap.Error(err))
		return nil
	}
	if !done {
		return nil
	}
	passed, err := m.session.FinishLevel()
	if err != nil {
		m.logger.Warn("failed to finish level", zap.Error(err))
		return nil
	}
	gs, _ := m.session.LastLevel()
	m.logger.Info("level finished",
		zap.Int("n", gs.Level),
		zap.Int("correct", gs.Correct),
		zap.Int("total", gs.Total),
		zap.Int("max_combo", gs.MaxCombo),
		zap.Float64("avg_time_ms", gs.AvgTimeMs),
		zap.Bool("passed", passed),
	)
	m.seq++
	if passed {
		return after(m.opts.TransitionDelay, transitionDoneMsg{seq: m.seq})
	}
	return m.startAnalysis()
}

func (m *Model) nextLevel() tea.Cmd {
	level, err := m.session.NextLevel()
	if err != nil {
		return nil
	}
	m.seq++
	m.logger.Info("level started", zap.Int("n", level.N()))
	return nil
}

func (m *Model) startAnalysis() tea.Cmd {
	st := m.session.Stats()
	m.logger.Info("session ended",
		zap.Int("max_level", st.MaxLevel),
		zap.Int("total_correct", st.TotalCorrect),
		zap.Int("total_problems", st.TotalProblems),
		zap.Int("accuracy_pct", statsPkg.OverallPercent(st)),
	)
	m.analysis = ""
	m.analysisReady = false
	last, ok := m.session.LastLevel()
	if !ok || m.analyst == nil {
		m.analysisReady = true
		return nil
	}
	text := m.analyst.Analyze(last)
	return tea.Batch(m.spinner.Tick, after(m.opts.AnalysisDelay, analysisMsg{seq: m.seq, text: text}))
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.session.State() {
	case game.StateMenu:
		content = m.renderMenu()
	case game.StatePlaying:
		content = m.renderGame()
	case game.StateTransition:
		content = m.renderTransition()
	case game.StateResults:
		content = m.renderResults()
	}
	content = lipgloss.JoinVertical(lipgloss.Center, content, "", m.renderHelp())
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderHelp() string {
	phase := game.PhaseMemorize
	if level := m.session.Level(); level != nil {
		phase = level.Phase()
	}
	return m.help.View(m.keys.forState(m.session.State(), phase))
}

// after delivers msg once d has elapsed, or immediately when d is not positive.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
