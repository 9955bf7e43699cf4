package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/gather"
	"github.com/spf13/cobra"
)

var githubCmd = &cobra.Command{
	Use:   "github <owner/repo>",
	Short: "Document a GitHub repository",
	Long: `Download a GitHub repository's zip archive and document it like the repo
command. Private repositories need a token in the GITHUB_TOKEN environment
variable; public ones work without it within GitHub's rate limits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, repo, ok := strings.Cut(args[0], "/")
		if !ok || owner == "" || repo == "" {
			return fmt.Errorf("repository must be given as owner/repo, got %q", args[0])
		}

		settings := common.WithYamlFile()

		backend, err := newBackend(cmd, settings)
		if err != nil {
			return err
		}

		usage := openUsage(settings)
		defer closeUsage(usage)

		ref, _ := cmd.Flags().GetString("ref")
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = repo + "_doc.md"
		}

		tempDir, err := os.MkdirTemp("", "repodoc-github-*")
		if err != nil {
			return fmt.Errorf("failed to create temp directory: %w", err)
		}
		defer os.RemoveAll(tempDir)

		fetcher := gather.NewGitHubFetcher(os.Getenv("GITHUB_TOKEN"))
		archive, err := fetcher.Zipball(cmd.Context(), owner, repo, ref, tempDir)
		if err != nil {
			return err
		}

		// GitHub zipballs nest everything under a single top-level directory
		repoPath := filepath.Join(tempDir, "repo")
		if err := gather.ExtractZip(archive, repoPath); err != nil {
			return err
		}

		return documentRepository(cmd, settings, backend, usage, repoPath, output)
	},
}

func init() {
	rootCmd.AddCommand(githubCmd)
	addBackendFlags(githubCmd)
	githubCmd.Flags().StringP("ref", "r", "", "Git ref to download (default branch if not set)")
	githubCmd.Flags().StringP("output", "o", "", "Output markdown path (default <repo>_doc.md)")
}
