package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/biisimvar/profile-wizard/internal/bio"
	"github.com/biisimvar/profile-wizard/internal/config"
	"github.com/biisimvar/profile-wizard/internal/llm"
)

var elaborateCmd = &cobra.Command{
	Use:   "elaborate [raw bio]",
	Short: "Rewrite a raw jobseeker bio from the command line",
	Long:  "Rewrites a raw biography into clean first-person Turkish prose. The bio is read from the argument, or from stdin when no argument is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runElaborate,
}

func init() {
	rootCmd.AddCommand(elaborateCmd)
}

func runElaborate(_ *cobra.Command, args []string) error {
	var rawBio string
	if len(args) == 1 {
		rawBio = args[0]
	} else {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		rawBio = string(content)
	}
	if strings.TrimSpace(rawBio) == "" {
		return fmt.Errorf("raw bio is required (pass as argument or via stdin)")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cfg.APIKey() == "" {
		return fmt.Errorf("API key is required (set OPENAI_API_KEY or GEMINI_API_KEY)")
	}

	client, err := llm.New(context.Background(), cfg.LLMConfig())
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	rewriter := bio.NewRewriter(client, zap.NewNop(), cfg.BioSentenceCap)
	improved, err := rewriter.Elaborate(context.Background(), rawBio)
	if err != nil {
		return fmt.Errorf("failed to elaborate bio: %w", err)
	}

	fmt.Println(improved)
	return nil
}
