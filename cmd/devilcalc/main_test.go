package main

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/devilcalc/internal/config"
	"github.com/verte-zerg/devilcalc/internal/model"
)

func validConfig() model.Config {
	return model.Config{
		StartLevel:   1,
		Problems:     15,
		PassAccuracy: 65,
		TransitionMs: 2500,
		FeedbackMs:   800,
		Lang:         "en",
		LogLevel:     "info",
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(validConfig()); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*model.Config)
		want   string
	}{
		{"level", func(c *model.Config) { c.StartLevel = 0 }, "--level"},
		{"problems", func(c *model.Config) { c.Problems = -1 }, "--problems"},
		{"pass high", func(c *model.Config) { c.PassAccuracy = 101 }, "--pass"},
		{"pass low", func(c *model.Config) { c.PassAccuracy = -1 }, "--pass"},
		{"transition", func(c *model.Config) { c.TransitionMs = -5 }, "--transition-ms"},
		{"feedback", func(c *model.Config) { c.FeedbackMs = -5 }, "--feedback-ms"},
		{"lang", func(c *model.Config) { c.Lang = "fr" }, "unsupported language"},
		{"log level", func(c *model.Config) { c.LogLevel = "loud" }, "--log-level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := validateConfig(cfg)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in error, got %v", tc.want, err)
			}
		})
	}
}

func TestMergeConfigFlagsOverrideFile(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("problems", "5"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	level := 3
	problems := 10
	lang := " ZH "
	summary := false
	fileCfg := config.FileConfig{
		Game: config.GameConfig{
			Level:    &level,
			Problems: &problems,
			Lang:     &lang,
			Summary:  &summary,
		},
	}

	cfg := mergeConfig(cmd, fileCfg)
	if cfg.StartLevel != 3 {
		t.Fatalf("expected level from file, got %d", cfg.StartLevel)
	}
	if cfg.Problems != 5 {
		t.Fatalf("expected problems from flag, got %d", cfg.Problems)
	}
	if cfg.Lang != "zh" {
		t.Fatalf("expected normalized lang, got %q", cfg.Lang)
	}
	if cfg.ShowSummary {
		t.Fatalf("expected summary disabled by file")
	}
	if cfg.PassAccuracy != defaultPass {
		t.Fatalf("expected default pass, got %v", cfg.PassAccuracy)
	}
}

func TestDefaultConfigTemplateParses(t *testing.T) {
	var cfg config.FileConfig
	md, err := toml.Decode(defaultConfigTemplate(), &cfg)
	if err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	if len(md.Undecoded()) != 0 {
		t.Fatalf("unexpected keys: %v", md.Undecoded())
	}
	if cfg.Game.Level != nil || cfg.Log.File != nil {
		t.Fatalf("template values should be commented out")
	}
}
