package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshetty/quizly/internal/quiz"
)

func TestDefaults(t *testing.T) {
	t.Setenv("QUIZLY_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "11", cfg.Grade)
	assert.Equal(t, 20, cfg.QuestionCount)
	assert.False(t, cfg.SkipSignIn)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grade: \"12\"\nquestion_count: 10\nskip_sign_in: true\n"), 0o600))
	t.Setenv("QUIZLY_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "12", cfg.Grade)
	assert.Equal(t, 10, cfg.QuestionCount)
	assert.True(t, cfg.SkipSignIn)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grade: \"12\"\n"), 0o600))
	t.Setenv("QUIZLY_CONFIG", path)
	t.Setenv("QUIZLY_GRADE", "11")
	t.Setenv("QUIZLY_QUESTIONS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "11", cfg.Grade)
	assert.Equal(t, 5, cfg.QuestionCount)
}

func TestMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grade: [broken\n"), 0o600))
	t.Setenv("QUIZLY_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestInvalidGradeFails(t *testing.T) {
	t.Setenv("QUIZLY_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("QUIZLY_GRADE", "9")

	_, err := Load()
	require.Error(t, err)
}

func TestDefaultGradeParses(t *testing.T) {
	cfg := Default()
	g, err := cfg.DefaultGrade()
	require.NoError(t, err)
	assert.Equal(t, quiz.Grade11, g)
}

func TestGenerationConfigCarriesCount(t *testing.T) {
	cfg := Default()
	cfg.QuestionCount = 12

	gen := cfg.GenerationConfig()
	assert.Equal(t, 12, gen.QuestionCount)
}
