package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rshetty/quizly/internal/app"
	"github.com/rshetty/quizly/internal/config"
	"github.com/rshetty/quizly/internal/llm"
	"github.com/rshetty/quizly/internal/logging"
	"github.com/rshetty/quizly/internal/quiz"
	"github.com/rshetty/quizly/internal/quizgen"
)

var rootCmd = &cobra.Command{
	Use:   "quizly",
	Short: "AI quiz app for grades 11-12",
	Long:  "Quizly — terminal app that turns any topic into a twenty-question multiple-choice quiz for senior secondary students.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		logger = zap.NewNop()
		closeLog = func() {}
	}
	defer closeLog()

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("no LLM provider configured: %w\n\nSet ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY, or OPENROUTER_API_KEY,\nor configure QUIZLY_LLM_PROVIDER explicitly", err)
	}

	grade, err := cfg.DefaultGrade()
	if err != nil {
		return err
	}

	ledger := quiz.NewLedger()
	session := quiz.NewSessionWithGrade(ledger, grade)

	logger.Info("starting quizly",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", provider.ModelID()),
		zap.String("grade", grade.String()),
		zap.Int("questions", cfg.QuestionCount))

	return app.Run(app.Options{
		Session:    session,
		Ledger:     ledger,
		Generator:  quizgen.New(provider, cfg.GenerationConfig()),
		Logger:     logger,
		SkipSignIn: cfg.SkipSignIn,
	})
}
