package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkapp-dev/mkapp/internal/catalog"
	"github.com/mkapp-dev/mkapp/internal/config"
	"github.com/mkapp-dev/mkapp/internal/manifest"
	"github.com/mkapp-dev/mkapp/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the shipped template tree",
	Long: `Verify that every catalog template has an on-disk template-<id> directory
whose package.json parses and satisfies the manifest schema. Intended for
template maintainers; the scaffolding flow itself never validates templates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		templatesRoot, err := scaffold.TemplatesRoot()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Checking templates under %s\n\n", templatesRoot)

		problems := 0
		for _, id := range catalog.TemplateIDs() {
			problems += checkTemplate(cmd, templatesRoot, id)
		}

		if problems > 0 {
			return fmt.Errorf("%d template problem(s) found", problems)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nAll templates look good.")
		return nil
	},
}

// checkTemplate reports problems for one template id and returns their count.
func checkTemplate(cmd *cobra.Command, templatesRoot, id string) int {
	out := cmd.OutOrStdout()
	dir := filepath.Join(templatesRoot, scaffold.TemplateDirPrefix+id)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(out, "  %-12s missing directory %s\n", id, dir)
		return 1
	}

	manifestPath := filepath.Join(dir, manifest.FileName)
	if _, err := manifest.ParseFile(manifestPath); err != nil {
		fmt.Fprintf(out, "  %-12s %v\n", id, err)
		return 1
	}

	result, err := manifest.ValidateFile(manifestPath)
	if err != nil {
		fmt.Fprintf(out, "  %-12s %v\n", id, err)
		return 1
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  %-12s %s: %s\n", id, issue.Path, issue.Message)
		}
		return len(result.Issues)
	}

	fmt.Fprintf(out, "  %-12s ok\n", id)
	return 0
}
