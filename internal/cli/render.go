package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	pkgio "github.com/flowmark/flowmark/pkg/io"
	"github.com/flowmark/flowmark/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path (default: input base + .svg)
	remote  bool   // render via the remote Kroki service instead of local Graphviz
	noCache bool   // bypass the artifact cache
}

// renderCommand creates the render command for generating SVG diagrams.
// Rendering is local by default (Graphviz via a DOT translation); --remote
// sends the markup to a Kroki instance for a native rendering. Artifacts are
// cached keyed on the markup text.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render flowchart markup to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .svg)")
	cmd.Flags().BoolVar(&opts.remote, "remote", false, "render via the remote Kroki service")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	f, err := pkgio.ImportFile(input)
	if err != nil {
		return err
	}
	markup := f.Render()
	logger.Debugf("Parsed %s: %d links", describeInput(input), f.CountLinks())

	renderer := c.newRenderer(opts)

	spinner := newSpinnerWithContext(ctx, "Rendering diagram")
	spinner.Start()

	prog := newProgress(logger)
	data, cached, err := renderer.RenderWithInfo(ctx, markup)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Render failed: %v", err))
		return err
	}
	spinner.Stop()
	prog.done("Rendered diagram")

	outputPath := opts.output
	if outputPath == "" {
		outputPath = svgPath(input)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return err
	}

	printSuccess("Rendered %s", describeInput(input))
	printFile(outputPath)
	printStats(countNodes(f), f.CountLinks(), countSubgraphs(f), cached)
	return nil
}

// newRenderer builds the renderer stack from flags and configuration:
// the engine picked by --remote / config, wrapped with the artifact cache.
func (c *CLI) newRenderer(opts *renderOpts) *render.Cached {
	var engine render.Renderer
	if opts.remote || c.Config.Render.Remote {
		engine = render.NewKroki(c.Config.Render.KrokiURL)
	} else {
		engine = render.Graphviz{}
	}
	return render.WithCache(engine, c.newCache(opts.noCache), time.Duration(c.Config.Cache.TTL))
}

// svgPath derives the default output path from the input file name.
// Stdin input renders to "diagram.svg" in the working directory.
func svgPath(input string) string {
	if input == pkgio.StdinPath {
		return "diagram.svg"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}
