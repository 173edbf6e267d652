package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgio "github.com/flowmark/flowmark/pkg/io"
)

// errNotFormatted signals that --check found a file needing reformatting.
// It carries no message because the command prints its own diagnostics.
var errNotFormatted = fmt.Errorf("input is not canonically formatted")

// fmtOpts holds the command-line flags for the fmt command.
type fmtOpts struct {
	output string // output file path ("" or "-" for stdout)
	write  bool   // rewrite the input file in place
	check  bool   // exit non-zero if the input is not canonical
}

// fmtCommand creates the fmt command for reformatting flowchart markup.
// Parsing and re-serializing produces the canonical form: stable section
// ordering, two-space indentation, and inline link styles where the source
// used positional ones directly after the link.
func (c *CLI) fmtCommand() *cobra.Command {
	var opts fmtOpts

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reformat flowchart markup to canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFmt(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "rewrite the input file in place")
	cmd.Flags().BoolVar(&opts.check, "check", false, "exit non-zero if the input is not canonically formatted")

	return cmd
}

func (c *CLI) runFmt(input string, opts *fmtOpts) error {
	f, err := pkgio.ImportFile(input)
	if err != nil {
		return err
	}
	formatted := f.Render()

	if opts.check {
		if input == pkgio.StdinPath {
			return fmt.Errorf("cannot use --check with stdin input")
		}
		original, err := os.ReadFile(input)
		if err != nil {
			return err
		}
		if string(original) == formatted {
			printSuccess("%s is canonically formatted", input)
			return nil
		}
		printWarning("%s needs reformatting", input)
		printNextStep("Reformat it with", fmt.Sprintf("flowmark fmt -w %s", input))
		return errNotFormatted
	}

	if opts.write {
		if input == pkgio.StdinPath {
			return fmt.Errorf("cannot use --write with stdin input")
		}
		if err := os.WriteFile(input, []byte(formatted), 0o644); err != nil {
			return err
		}
		c.Logger.Infof("Reformatted %s", input)
		return nil
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write([]byte(formatted)); err != nil {
		return err
	}
	if opts.output != "" && opts.output != "-" {
		c.Logger.Infof("Wrote %s", opts.output)
	}
	return nil
}
