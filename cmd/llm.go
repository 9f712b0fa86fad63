package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rshetty/quizly/internal/config"
	"github.com/rshetty/quizly/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the configured LLM provider",
}

// pingSchema is a deliberately tiny structured response used to probe
// the provider end to end.
var pingSchema = &llm.Schema{
	Name:        "ping",
	Description: "A connectivity check",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ok": map[string]any{"type": "boolean"},
		},
		"required":             []any{"ok"},
		"additionalProperties": false,
	},
}

var llmDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Verify that the provider responds to a structured request",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, zap.NewNop())
		if err != nil {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}

		fmt.Printf("Provider:  %s\n", cfg.LLM.Provider)
		fmt.Printf("Model:     %s\n", provider.ModelID())

		start := time.Now()
		resp, err := provider.Generate(cmd.Context(), llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: `Reply with {"ok": true}.`},
			},
			Schema:    pingSchema,
			MaxTokens: 64,
		})
		if err != nil {
			return fmt.Errorf("provider check failed: %w", err)
		}

		var body struct {
			OK bool `json:"ok"`
		}
		if err := json.Unmarshal(resp.Content, &body); err != nil {
			return fmt.Errorf("provider returned unparseable content: %w", err)
		}

		fmt.Printf("Served by: %s\n", resp.Model)
		fmt.Printf("Latency:   %dms\n", time.Since(start).Milliseconds())
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		fmt.Println("OK")
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmDoctorCmd)
}
