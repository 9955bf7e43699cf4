package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/repodocs/repodoc/analytics"
	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/gather"
	"github.com/repodocs/repodoc/llm"
	"github.com/repodocs/repodoc/logger"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <zip-directory> <output-directory>",
	Short: "Document every zipped repository in a directory",
	Long: `Process a directory of repository zip archives: each archive is extracted
to a temporary directory, documented like the repo command, and the result is
written to <output-directory>/<archive>_doc.md. A failing archive is logged
and skipped so the rest of the batch still runs.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		zipDir, outDir := args[0], args[1]
		settings := common.WithYamlFile()

		backend, err := newBackend(cmd, settings)
		if err != nil {
			return err
		}

		usage := openUsage(settings)
		defer closeUsage(usage)

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		archives, err := gather.Zips(zipDir)
		if err != nil {
			return err
		}
		if len(archives) == 0 {
			return fmt.Errorf("no zip archives found in %s", zipDir)
		}

		failed := 0
		for _, archive := range archives {
			name := strings.TrimSuffix(filepath.Base(archive), ".zip")
			output := filepath.Join(outDir, name+"_doc.md")

			fmt.Printf("\nProcessing %s...\n", filepath.Base(archive))
			fmt.Printf("Documentation will be saved to: %s\n", output)

			if err := documentArchive(cmd, settings, backend, usage, archive, name, output); err != nil {
				logger.Errorf("Error processing %s: %v", filepath.Base(archive), err)
				failed++
				continue
			}
			fmt.Printf("Successfully documented %s\n", filepath.Base(archive))
		}

		fmt.Println("\nAll repositories processed!")
		if failed > 0 {
			return fmt.Errorf("%d of %d archives failed", failed, len(archives))
		}
		return nil
	},
}

func documentArchive(cmd *cobra.Command, settings common.Settings, backend llm.LLM, usage *analytics.Logger, archive, name, output string) error {
	tempDir, err := os.MkdirTemp("", "repodoc-batch-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	repoPath := filepath.Join(tempDir, "repo_"+name)
	if err := gather.ExtractZip(archive, repoPath); err != nil {
		return err
	}

	return documentRepository(cmd, settings, backend, usage, repoPath, output)
}

func init() {
	rootCmd.AddCommand(batchCmd)
	addBackendFlags(batchCmd)
}
