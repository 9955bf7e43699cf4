package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/repodocs/repodoc/analytics"
	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/documenter"
	"github.com/repodocs/repodoc/gather"
	"github.com/repodocs/repodoc/llm"
	"github.com/repodocs/repodoc/prompt"
	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo <directory>",
	Short: "Document a repository directory",
	Long: `Walk a repository, concatenate its source files and generate markdown
documentation by prompting an LLM. Content larger than the provider's chunk
budget is split and documented in parts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := common.WithYamlFile()

		backend, err := newBackend(cmd, settings)
		if err != nil {
			return err
		}

		usage := openUsage(settings)
		defer closeUsage(usage)

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = filepath.Join(args[0], "repo_doc.md")
		}

		return documentRepository(cmd, settings, backend, usage, args[0], output)
	},
}

// documentRepository runs gather -> document -> save for one directory
func documentRepository(cmd *cobra.Command, settings common.Settings, backend llm.LLM, usage *analytics.Logger, root, output string) error {
	content, err := gather.Repository(root, settings.Gather)
	if err != nil {
		return err
	}
	if content == "" {
		return fmt.Errorf("no eligible source files found in %s", root)
	}

	doc := documenter.New(backend, prompt.ForRepository(settings))
	documentation, err := doc.Document(content)
	if err != nil {
		return fmt.Errorf("failed to generate documentation: %w", err)
	}

	if err := os.WriteFile(output, []byte(documentation), 0o644); err != nil {
		return fmt.Errorf("failed to save documentation: %w", err)
	}

	totalTokens := doc.TokenCount(content, documentation)
	recordUsage(cmd.Context(), usage, analytics.Operation{
		SourceFile:    root,
		OperationType: analytics.OperationRepoDoc,
		FileSize:      len(content),
		TokenCount:    totalTokens,
		EstimatedCost: analytics.EstimateCost(backend.Model(), totalTokens),
	})

	fmt.Printf("Documentation saved to: %s\n", output)
	return nil
}

func init() {
	rootCmd.AddCommand(repoCmd)
	addBackendFlags(repoCmd)
	repoCmd.Flags().StringP("output", "o", "", "Output markdown path (default <directory>/repo_doc.md)")
}
