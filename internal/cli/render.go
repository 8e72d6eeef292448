package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbourre/lanparty/pkg/clique"
	"github.com/nbourre/lanparty/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags   analysisFlags
		ropts   pipeline.RenderOptions
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render <edges.txt>",
		Short: "Draw the network with the LAN party highlighted",
		Long: `Draw the network with the LAN party highlighted.

The largest clique is filled and its connections drawn bold. Computers whose
name starts with --mark get a double outline. DOT and SVG are produced
in-process; PDF and PNG need rsvg-convert from librsvg.

Output defaults to <input>.<format> next to the input; use -o - for stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ropts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("mark") {
				ropts.MarkPrefix = c.Config.Prefix
			}
			return c.runRender(cmd, args[0], c.options(cmd, flags), ropts, output, noCache)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>, - for stdout)")
	cmd.Flags().StringVarP(&ropts.Format, "format", "f", pipeline.DefaultFormat, "output format: dot, svg, pdf, png")
	cmd.Flags().StringVar(&ropts.MarkPrefix, "mark", "", "double-outline computers whose name starts with this (default: configured prefix)")
	cmd.Flags().StringVar(&ropts.Title, "title", "", "diagram title")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts pipeline.Options, ropts pipeline.RenderOptions, output string, noCache bool) error {
	g, err := loadGraph(input)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	res, err := runner.Analyze(ctx, g, opts)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	if res.Report.LargestClique != "" {
		ropts.Highlight = strings.Split(res.Report.LargestClique, clique.Separator)
	}

	spinner := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Rendering %s...", ropts.Format))
	spinner.Start()
	prog := newProgress(loggerFromContext(ctx))

	data, cacheHit, err := runner.Render(ctx, g, ropts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	if output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if output == "" {
		output = defaultOutput(input, ropts.Format)
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	prog.done("Rendered " + ropts.Format)
	errOut := cmd.ErrOrStderr()
	printSuccess(errOut, "Rendered LAN party %s", StylePassword.Render(res.Report.LargestClique))
	printFile(errOut, output)
	printStats(errOut, res.Report.Nodes, res.Report.Edges, cacheHit)
	return nil
}

// defaultOutput replaces the extension of input with format. Stdin input
// becomes "network.<format>".
func defaultOutput(input, format string) string {
	if input == "-" {
		return "network." + format
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
