package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rshetty/quizly/internal/llm"
	"github.com/rshetty/quizly/internal/quiz"
	"github.com/rshetty/quizly/internal/quizgen"
)

// Config holds the application settings. Values are layered: defaults,
// then the YAML config file, then environment variables.
type Config struct {
	// Grade is the default grade level for new quizzes ("11" or "12").
	Grade string `yaml:"grade"`

	// QuestionCount is the number of questions requested per quiz.
	QuestionCount int `yaml:"question_count"`

	// LogFile is where structured logs are written. The TUI owns the
	// terminal, so logs never go to stderr while it runs.
	LogFile string `yaml:"log_file"`

	// SkipSignIn jumps straight to the home screen.
	SkipSignIn bool `yaml:"skip_sign_in"`

	// LLM is the provider configuration, sourced from the environment
	// only (API keys do not belong in config files).
	LLM llm.Config `yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Grade:         quiz.DefaultGrade.String(),
		QuestionCount: quizgen.DefaultQuestionCount,
	}
}

// Path returns the config file location: $QUIZLY_CONFIG if set,
// otherwise ~/.config/quizly/config.yaml.
func Path() (string, error) {
	if p := os.Getenv("QUIZLY_CONFIG"); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "quizly", "config.yaml"), nil
}

// Load builds the effective configuration. A missing config file or
// .env file is not an error; a malformed config file is.
func Load() (Config, error) {
	// .env first so its variables are visible to the env layer below.
	_ = godotenv.Load()

	cfg := Default()

	path, err := Path()
	if err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	cfg.LLM = llm.ConfigFromEnv()
	if os.Getenv("QUIZLY_LLM_PROVIDER") == "" {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg.LLM = discovered
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if g := os.Getenv("QUIZLY_GRADE"); g != "" {
		cfg.Grade = g
	}
	if n := os.Getenv("QUIZLY_QUESTIONS"); n != "" {
		if count, err := strconv.Atoi(n); err == nil {
			cfg.QuestionCount = count
		}
	}
	if f := os.Getenv("QUIZLY_LOG_FILE"); f != "" {
		cfg.LogFile = f
	}
	if s := os.Getenv("QUIZLY_SKIP_SIGNIN"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			cfg.SkipSignIn = v
		}
	}
}

func (c Config) validate() error {
	if _, err := c.DefaultGrade(); err != nil {
		return err
	}
	if c.QuestionCount <= 0 {
		return fmt.Errorf("question_count must be positive, got %d", c.QuestionCount)
	}
	return nil
}

// DefaultGrade parses the configured grade level.
func (c Config) DefaultGrade() (quiz.Grade, error) {
	return quiz.ParseGrade(c.Grade)
}

// GenerationConfig returns the quizgen settings derived from this config.
func (c Config) GenerationConfig() quizgen.Config {
	gen := quizgen.DefaultConfig()
	gen.QuestionCount = c.QuestionCount
	return gen
}
