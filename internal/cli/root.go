package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mkapp-dev/mkapp/internal/branding"
	"github.com/mkapp-dev/mkapp/internal/config"
	"github.com/mkapp-dev/mkapp/internal/naming"
	"github.com/mkapp-dev/mkapp/internal/pkgmanager"
	"github.com/mkapp-dev/mkapp/internal/prompt"
	"github.com/mkapp-dev/mkapp/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var createTemplate string

func init() {
	rootCmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Template id (see 'mkapp list')")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [directory]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a new web project from a shipped template.

Run it bare for the interactive flow, or pass a target directory and a
--template id to skip the questions. Nothing is written to disk until every
question is answered.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

func runCreate(cmd *cobra.Command, args []string) error {
	config.Load()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	targetDir := ""
	if len(args) > 0 {
		targetDir = naming.FormatTargetDir(args[0])
	}

	out := cmd.OutOrStdout()
	workflow := prompt.NewWorkflow(prompt.New(cmd.InOrStdin(), out), prompt.Options{
		TargetDir:   targetDir,
		Template:    createTemplate,
		DefaultName: config.Get(config.KeyDefaultName),
		WorkDir:     workDir,
	})

	resolved, err := workflow.Run()
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	templatesRoot, err := scaffold.TemplatesRoot()
	if err != nil {
		return err
	}

	result, err := scaffold.Materialize(scaffold.Request{
		TargetDir:   resolved.TargetDir,
		WorkDir:     workDir,
		TemplateID:  resolved.TemplateID,
		PackageName: resolved.PackageName,
		Overwrite:   resolved.Overwrite,
	}, templatesRoot)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nScaffolded project in %s.\n", result.Root)
	fmt.Fprintln(out, "\nDone. Now run:")
	fmt.Fprintln(out)
	for _, step := range result.NextSteps(pkgmanager.FromEnv()) {
		fmt.Fprintf(out, "  %s\n", step)
	}
	fmt.Fprintln(out)
	return nil
}
