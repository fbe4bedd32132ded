package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func init() {
	genDocsCmd.Flags().String("dir", "./docs", "Directory to write the markdown files to")
	rootCmd.AddCommand(genDocsCmd)
}

var genDocsCmd = &cobra.Command{
	Use:    "gendocs",
	Short:  "Generate markdown documentation for kubeai-doctor",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create docs directory: %w", err)
		}

		rootCmd.DisableAutoGenTag = true
		if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
			return fmt.Errorf("failed to generate markdown docs: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", dir)
		return nil
	},
}
