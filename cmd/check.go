package cmd

import (
	"fmt"
	"io"
	"os"

	"speedtab/core/config"
	"speedtab/core/markup"
	"speedtab/feature/tab/tabconfig"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a tab configuration file",
	Long:  `Parses a tab configuration file and prints the resolved title and footer of the default entry and of every server.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := config.LoadConfig(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path = cfg.Tab.Path()
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		return checkDocument(raw, cmd.OutOrStdout())
	},
}

// checkDocument parses raw and writes one block per resolved entry to w.
func checkDocument(raw []byte, w io.Writer) error {
	snap, err := tabconfig.Parse(raw)
	if err != nil {
		return err
	}

	parser := markup.NewParser()
	render := func(s string) string {
		text, err := parser.Parse(markup.TranslateLegacy(s))
		if err != nil {
			return s + "  (invalid markup: " + err.Error() + ")"
		}
		if text.IsEmpty() {
			return "(empty)"
		}
		return text.String()
	}

	fmt.Fprintln(w, "=== default ===")
	fmt.Fprintf(w, "Title:  %s\n", render(snap.DefaultTitle()))
	fmt.Fprintf(w, "Footer: %s\n", render(snap.DefaultFooter()))

	for _, server := range snap.Servers() {
		fmt.Fprintf(w, "=== %s ===\n", server)
		fmt.Fprintf(w, "Title:  %s\n", render(snap.Title(server)))
		fmt.Fprintf(w, "Footer: %s\n", render(snap.Footer(server)))
	}
	return nil
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
