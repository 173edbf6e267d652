package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/flowmark/flowmark/pkg/io"
	"github.com/flowmark/flowmark/pkg/render"
)

// exportCommand creates the export command for emitting the Graphviz DOT
// translation of a diagram. Useful for piping into other Graphviz tooling.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export flowchart markup as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := pkgio.ImportFile(args[0])
			if err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if _, err := out.Write([]byte(render.ToDOT(f))); err != nil {
				return err
			}
			if output != "" && output != "-" {
				c.Logger.Infof("Wrote %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
