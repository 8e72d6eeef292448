package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbourre/lanparty/pkg/errors"
	pkgio "github.com/nbourre/lanparty/pkg/io"
	"github.com/nbourre/lanparty/pkg/pipeline"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// solveCommand creates the solve command, which answers both questions in
// one run.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		flags   analysisFlags
		format  string
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "solve <edges.txt>",
		Short: "Count prefix triangles and find the LAN party password",
		Long: `Count prefix triangles and find the LAN party password.

Part 1 is the number of sets of three mutually connected computers with at
least one name starting with --prefix. Part 2 is the largest set of
mutually connected computers, its names sorted and joined with commas.

Pass "-" to read the network map from stdin. Results are cached locally,
keyed by the network's edges, prefix and driver.`,
		Example: `  lanparty solve input.txt
  lanparty solve input.txt --prefix k --format json
  cat input.txt | lanparty solve - --driver single`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd, flags)
			opts.Refresh = refresh
			return c.runSolve(cmd, args[0], opts, format, output, noCache)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the JSON report to this file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached result exists")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, input string, opts pipeline.Options, format, output string, noCache bool) error {
	if format != formatText && format != formatJSON {
		return errors.New(errors.ErrCodeInvalidFormat, "format must be %q or %q, got %q", formatText, formatJSON, format)
	}

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
	rep := res.Report

	if output != "" {
		if err := pkgio.ExportReport(rep, output); err != nil {
			return err
		}
		printFile(cmd.ErrOrStderr(), output)
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		return pkgio.WriteReport(rep, out)
	}

	fmt.Fprintf(out, "Part 1 answer: %d\n", rep.TriangleCount)
	fmt.Fprintf(out, "Part 2 answer: %s\n", rep.LargestClique)
	printStats(cmd.ErrOrStderr(), rep.Nodes, rep.Edges, res.CacheHit)
	return nil
}
