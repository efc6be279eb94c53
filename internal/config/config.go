package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every runtime knob of Echo Room.
type Config struct {
	Submission SubmissionConfig `yaml:"submission"`
	UI         UIConfig         `yaml:"ui"`
	Limits     LimitsConfig     `yaml:"limits"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SubmissionConfig controls the simulated backend.
type SubmissionConfig struct {
	Delay         time.Duration `yaml:"delay"`          // how long a submission "takes"
	NavigateDelay time.Duration `yaml:"navigate_delay"` // pause before returning home after a question
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	ToastDuration time.Duration `yaml:"toast_duration"`
	AltScreen     bool          `yaml:"alt_screen"`
}

// LimitsConfig caps free-text inputs, in characters.
type LimitsConfig struct {
	QuestionChars int `yaml:"question_chars"`
	AnswerChars   int `yaml:"answer_chars"`
}

// LoggingConfig configures the file logger. The terminal belongs to the UI,
// so nothing is logged unless File is set.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Submission: SubmissionConfig{
			Delay:         time.Second,
			NavigateDelay: 2 * time.Second,
		},
		UI: UIConfig{
			ToastDuration: 5 * time.Second,
			AltScreen:     true,
		},
		Limits: LimitsConfig{
			QuestionChars: 1000,
			AnswerChars:   500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and ECHOROOM_* environment overrides, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	ErrNegativeDuration = errors.New("duration must not be negative")
	ErrInvalidLimit     = errors.New("character limit must be positive")
)

// Validate checks invariants the UI relies on.
func (c *Config) Validate() error {
	durations := map[string]time.Duration{
		"submission.delay":          c.Submission.Delay,
		"submission.navigate_delay": c.Submission.NavigateDelay,
		"ui.toast_duration":         c.UI.ToastDuration,
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s: %w", name, ErrNegativeDuration)
		}
	}
	if c.Limits.QuestionChars <= 0 {
		return fmt.Errorf("limits.question_chars: %w", ErrInvalidLimit)
	}
	if c.Limits.AnswerChars <= 0 {
		return fmt.Errorf("limits.answer_chars: %w", ErrInvalidLimit)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	durations := []struct {
		env    string
		target *time.Duration
	}{
		{"ECHOROOM_SUBMIT_DELAY", &c.Submission.Delay},
		{"ECHOROOM_NAVIGATE_DELAY", &c.Submission.NavigateDelay},
		{"ECHOROOM_TOAST_DURATION", &c.UI.ToastDuration},
	}
	for _, d := range durations {
		value := os.Getenv(d.env)
		if value == "" {
			continue
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: %w", d.env, err)
		}
		*d.target = parsed
	}
	if level := os.Getenv("ECHOROOM_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("ECHOROOM_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	return nil
}
