package cli

import (
	"github.com/spf13/cobra"

	"github.com/flowmark/flowmark/pkg/flowchart"
	pkgio "github.com/flowmark/flowmark/pkg/io"
)

// checkCommand creates the check command for validating flowchart markup.
// It parses the input and, on success, prints diagram statistics. Parse
// failures are reported with the offending line number from the parser.
func (c *CLI) checkCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate flowchart markup and report statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := pkgio.ImportFile(args[0])
			if err != nil {
				printError("%s: %v", describeInput(args[0]), err)
				return err
			}
			if quiet {
				return nil
			}

			printSuccess("%s is valid", describeInput(args[0]))
			title := f.Title
			if title == "" {
				title = StyleDim.Render("(untitled)")
			}
			printDetail("Title: %s", title)
			printDetail("Direction: %s", f.Direction)
			printStats(countNodes(f), f.CountLinks(), countSubgraphs(f), false)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress statistics, only set the exit code")

	return cmd
}

// countNodes counts declared nodes across the diagram and all nested subgraphs.
func countNodes(f *flowchart.Flowchart) int {
	n := len(f.Nodes())
	for _, sg := range f.Subgraphs() {
		n += countNodes(sg)
	}
	return n
}

// countSubgraphs counts subgraphs at every nesting level.
func countSubgraphs(f *flowchart.Flowchart) int {
	n := len(f.Subgraphs())
	for _, sg := range f.Subgraphs() {
		n += countSubgraphs(sg)
	}
	return n
}

// describeInput names the input for log messages, mapping "-" to "stdin".
func describeInput(path string) string {
	if path == pkgio.StdinPath {
		return "stdin"
	}
	return path
}
