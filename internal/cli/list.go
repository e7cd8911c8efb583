package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mkapp-dev/mkapp/internal/catalog"
	"github.com/mkapp-dev/mkapp/internal/prompt"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long:  `List the template catalog: every layout, its variants, and the template ids accepted by --template.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one template id for display.
type listEntry struct {
	Layout   string `json:"layout"`
	Variant  string `json:"variant,omitempty"`
	Template string `json:"template"`
}

func runList(cmd *cobra.Command, args []string) error {
	var entries []listEntry
	for _, l := range catalog.Layouts() {
		if len(l.Variants) == 0 {
			entries = append(entries, listEntry{Layout: l.Display, Template: l.ID})
			continue
		}
		for _, v := range l.Variants {
			entries = append(entries, listEntry{Layout: l.Display, Variant: v.Display, Template: v.ID})
		}
	}

	if listJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling template list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	// Color the layout column only when stdout is a terminal.
	styled := prompt.IsInteractive(os.Stdout)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LAYOUT\tVARIANT\tTEMPLATE")
	for _, l := range catalog.Layouts() {
		display := l.Display
		if styled {
			display = l.Style.Render(display)
		}
		if len(l.Variants) == 0 {
			fmt.Fprintf(w, "%s\t-\t%s\n", display, l.ID)
			continue
		}
		for _, v := range l.Variants {
			fmt.Fprintf(w, "%s\t%s\t%s\n", display, v.Display, v.ID)
		}
	}
	return w.Flush()
}
