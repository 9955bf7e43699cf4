package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/repodocs/repodoc/analytics"
	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/documenter"
	"github.com/repodocs/repodoc/gather"
	"github.com/repodocs/repodoc/prompt"
	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Document a single TypeScript file",
	Long: `Add TypeDoc/JSDoc documentation to a TypeScript file by prompting an LLM.
The documented version is written next to the original as <name>_documented.<ext>.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]
		if !strings.HasSuffix(filePath, ".ts") && !strings.HasSuffix(filePath, ".tsx") {
			return fmt.Errorf("please provide a TypeScript file (.ts or .tsx): %s", filePath)
		}

		settings := common.WithYamlFile()

		backend, err := newBackend(cmd, settings)
		if err != nil {
			return err
		}

		usage := openUsage(settings)
		defer closeUsage(usage)

		code, err := gather.File(filePath)
		if err != nil {
			return err
		}

		doc := documenter.New(backend, prompt.ForFile(settings))
		documented, err := doc.Document(code)
		if err != nil {
			return err
		}

		outputPath := documentedPath(filePath)
		if err := os.WriteFile(outputPath, []byte(documented), 0o644); err != nil {
			return fmt.Errorf("failed to save documented file: %w", err)
		}

		totalTokens := doc.TokenCount(code, documented)
		recordUsage(cmd.Context(), usage, analytics.Operation{
			SourceFile:    filePath,
			OperationType: analytics.OperationFileDoc,
			FileSize:      len(code),
			TokenCount:    totalTokens,
			EstimatedCost: analytics.EstimateCost(backend.Model(), totalTokens),
		})

		fmt.Println("\nProcessed successfully!")
		fmt.Printf("Original file: %s\n", filePath)
		fmt.Printf("Documented file saved to: %s\n", outputPath)
		fmt.Printf("Total tokens used: %d\n", totalTokens)
		return nil
	},
}

// documentedPath turns src/app.ts into src/app_documented.ts
func documentedPath(filePath string) string {
	for _, ext := range []string{".tsx", ".ts"} {
		if strings.HasSuffix(filePath, ext) {
			return strings.TrimSuffix(filePath, ext) + "_documented" + ext
		}
	}
	return filePath + "_documented"
}

func init() {
	rootCmd.AddCommand(fileCmd)
	addBackendFlags(fileCmd)
}
