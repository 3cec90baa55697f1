// Package main provides the CLI entrypoint for devilcalc.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/devilcalc/internal/commentary"
	"github.com/verte-zerg/devilcalc/internal/config"
	"github.com/verte-zerg/devilcalc/internal/game"
	"github.com/verte-zerg/devilcalc/internal/generator"
	"github.com/verte-zerg/devilcalc/internal/logging"
	"github.com/verte-zerg/devilcalc/internal/model"
	"github.com/verte-zerg/devilcalc/internal/stats"
	"github.com/verte-zerg/devilcalc/internal/tui"
)

const (
	defaultLevel        = game.DefaultStartLevel
	defaultProblems     = game.DefaultProblems
	defaultPass         = game.DefaultPassAccuracy
	defaultTransitionMs = 2500
	defaultFeedbackMs   = 800
	defaultLang         = commentary.LangEnglish
)

var (
	gameLevel        int
	gameProblems     int
	gamePass         float64
	gameTransitionMs int
	gameFeedbackMs   int
	gameLang         string
	gameSeed         int64
	gameSummary      bool

	logFile  string
	logLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "devilcalc",
		Short:         "N-back mental arithmetic trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.Flags().IntVar(&gameLevel, "level", defaultLevel, "starting N-back depth")
	rootCmd.Flags().IntVar(&gameProblems, "problems", defaultProblems, "problems per level")
	rootCmd.Flags().Float64Var(&gamePass, "pass", defaultPass, "accuracy percent required to advance (0-100)")
	rootCmd.Flags().IntVar(&gameTransitionMs, "transition-ms", defaultTransitionMs, "level-up screen duration in milliseconds")
	rootCmd.Flags().IntVar(&gameFeedbackMs, "feedback-ms", defaultFeedbackMs, "answer feedback duration in milliseconds")
	rootCmd.Flags().StringVar(&gameLang, "lang", defaultLang, "commentary language (en, zh)")
	rootCmd.Flags().Int64Var(&gameSeed, "seed", 0, "problem generator seed (0 = random)")
	rootCmd.Flags().BoolVar(&gameSummary, "summary", true, "print a session report after quitting")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write a JSON log to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := mergeConfig(cmd, fileCfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	gen := generator.New()
	analyst := commentary.New(cfg.Lang)
	if cfg.Seed != 0 {
		gen = generator.NewWithSeed(cfg.Seed)
		analyst = commentary.NewWithSeed(cfg.Lang, cfg.Seed)
	}

	rules := game.Rules{
		StartLevel:   cfg.StartLevel,
		Problems:     cfg.Problems,
		PassAccuracy: cfg.PassAccuracy,
	}
	session := game.NewSession(rules, gen, time.Now)
	opts := tui.DefaultOptions()
	opts.TransitionDelay = time.Duration(cfg.TransitionMs) * time.Millisecond
	opts.FeedbackDelay = time.Duration(cfg.FeedbackMs) * time.Millisecond

	logger.Info("starting",
		zap.Int("level", cfg.StartLevel),
		zap.Int("problems", cfg.Problems),
		zap.Float64("pass", cfg.PassAccuracy),
		zap.String("lang", cfg.Lang),
		zap.Int64("seed", cfg.Seed),
	)

	m := tui.NewModel(session, analyst, logger, opts)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if !cfg.ShowSummary {
		return nil
	}
	st := session.Stats()
	if len(st.LevelStats) == 0 {
		return nil
	}
	if err := stats.RenderSummary(cmd.OutOrStdout(), st, cfg.PassAccuracy, false); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func mergeConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	applyIntConfig(cmd, "level", &gameLevel, fileCfg.Game.Level)
	applyIntConfig(cmd, "problems", &gameProblems, fileCfg.Game.Problems)
	applyFloatConfig(cmd, "pass", &gamePass, fileCfg.Game.Pass)
	applyIntConfig(cmd, "transition-ms", &gameTransitionMs, fileCfg.Game.TransitionMs)
	applyIntConfig(cmd, "feedback-ms", &gameFeedbackMs, fileCfg.Game.FeedbackMs)
	applyStringConfig(cmd, "lang", &gameLang, fileCfg.Game.Lang)
	applyInt64Config(cmd, "seed", &gameSeed, fileCfg.Game.Seed)
	applyBoolConfig(cmd, "summary", &gameSummary, fileCfg.Game.Summary)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	return model.Config{
		StartLevel:   gameLevel,
		Problems:     gameProblems,
		PassAccuracy: gamePass,
		TransitionMs: gameTransitionMs,
		FeedbackMs:   gameFeedbackMs,
		Lang:         strings.ToLower(strings.TrimSpace(gameLang)),
		Seed:         gameSeed,
		ShowSummary:  gameSummary,
		LogFile:      logFile,
		LogLevel:     logLevel,
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		logErrf("config file is at %s\n", path)
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# devilcalc configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# level = %d              # Starting N-back depth
# problems = %d          # Problems per level
# pass = %.0f              # Accuracy percent required to advance
# transition-ms = %d    # Level-up screen duration
# feedback-ms = %d       # Answer feedback duration
# lang = %q             # Commentary language (en, zh)
# seed = 0                # Problem generator seed (0 = random)
# summary = true          # Print a session report after quitting

[log]
# file = %q
# level = %q
`,
		defaultLevel,
		defaultProblems,
		defaultPass,
		defaultTransitionMs,
		defaultFeedbackMs,
		defaultLang,
		config.DefaultLogPath(),
		logging.DefaultLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.StartLevel <= 0 {
		return fmt.Errorf("--level must be > 0")
	}
	if cfg.Problems <= 0 {
		return fmt.Errorf("--problems must be > 0")
	}
	if cfg.PassAccuracy < 0 || cfg.PassAccuracy > 100 {
		return fmt.Errorf("--pass must be between 0 and 100")
	}
	if cfg.TransitionMs < 0 {
		return fmt.Errorf("--transition-ms must be >= 0")
	}
	if cfg.FeedbackMs < 0 {
		return fmt.Errorf("--feedback-ms must be >= 0")
	}
	if !commentary.Supported(cfg.Lang) {
		return fmt.Errorf("unsupported language %q (available: %s, %s)", cfg.Lang, commentary.LangEnglish, commentary.LangChinese)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
