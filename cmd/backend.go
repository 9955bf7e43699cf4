package cmd

import (
	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/llm"
	"github.com/spf13/cobra"
)

// newBackend builds the LLM client from the provider/model flags, falling
// back to the settings file for anything not set on the command line.
func newBackend(cmd *cobra.Command, settings common.Settings) (llm.LLM, error) {
	provider := settings.Provider
	if cmd.Flags().Changed("provider") {
		provider, _ = cmd.Flags().GetString("provider")
	}

	model := settings.Model
	if cmd.Flags().Changed("model") {
		model, _ = cmd.Flags().GetString("model")
	}

	return llm.NewLLM(provider, model)
}

func addBackendFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("provider", "p", common.ProviderClaude,
		"LLM provider to use (claude, gemini, openai)")
	cmd.Flags().StringP("model", "m", "",
		"LLM model to use (provider default if not set)")
}
