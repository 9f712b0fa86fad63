package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rshetty/quizly/internal/config"
	"github.com/rshetty/quizly/internal/llm"
	"github.com/rshetty/quizly/internal/quiz"
	"github.com/rshetty/quizly/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a quiz and print it as JSON",
	Long:  "Generates a quiz for the given topic without the TUI. Useful for piping into other tools or inspecting generator output.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		gradeFlag, _ := cmd.Flags().GetString("grade")
		if gradeFlag == "" {
			gradeFlag = cfg.Grade
		}
		grade, err := quiz.ParseGrade(gradeFlag)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = cfg.QuestionCount
		}

		provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, zap.NewNop())
		if err != nil {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}

		generator := quizgen.New(provider, cfg.GenerationConfig())
		questions, err := generator.Generate(cmd.Context(), quizgen.Request{
			Topic: topic,
			Grade: grade,
			Count: count,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	},
}

func init() {
	generateCmd.Flags().String("grade", "", "grade level (11 or 12)")
	generateCmd.Flags().Int("count", 0, "number of questions (default from config)")
}
