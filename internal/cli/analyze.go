package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbourre/lanparty/pkg/clique"
	"github.com/nbourre/lanparty/pkg/pipeline"
)

// trianglesCommand creates the triangles command.
func (c *CLI) trianglesCommand() *cobra.Command {
	var (
		flags analysisFlags
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "triangles <edges.txt>",
		Short: "Count or list triangles with a member matching a prefix",
		Long: `Count or list triangles with a member matching a prefix.

A triangle is three computers that are all connected to each other. Only
triangles where at least one name starts with --prefix are counted; pass
--prefix "" to count every triangle. With --list each triangle is printed
on its own line as sorted, comma-joined names.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTriangles(cmd, args[0], c.options(cmd, flags), list)
		},
	}

	cmd.Flags().StringVarP(&flags.prefix, "prefix", "p", pipeline.DefaultPrefix, "count triangles with a member whose name starts with this")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "print each triangle instead of the count")

	return cmd
}

func (c *CLI) runTriangles(cmd *cobra.Command, input string, opts pipeline.Options, list bool) error {
	g, err := loadGraph(input)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	tris := clique.NewAnalyzer(g, clique.WithLogger(c.Logger)).Triangles(clique.AnyHasPrefix(opts.Prefix))
	prog.done(fmt.Sprintf("Found %d triangles", len(tris)))

	out := cmd.OutOrStdout()
	if !list {
		fmt.Fprintln(out, len(tris))
		return nil
	}
	for _, t := range tris {
		fmt.Fprintln(out, t)
	}
	return nil
}

// cliqueCommand creates the clique command.
func (c *CLI) cliqueCommand() *cobra.Command {
	var (
		flags analysisFlags
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "clique <edges.txt>",
		Short: "Print the largest clique (the LAN party password)",
		Long: `Print the largest clique (the LAN party password).

A clique is a set of computers that are all connected to each other. The
largest one is printed as sorted, comma-joined names; when several share
the largest size, the alphabetically first wins. With --all every maximal
clique is printed, largest first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runClique(cmd, args[0], c.options(cmd, flags), all)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every maximal clique")

	return cmd
}

func (c *CLI) runClique(cmd *cobra.Command, input string, opts pipeline.Options, all bool) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	g, err := loadGraph(input)
	if err != nil {
		return err
	}

	aopts := []clique.Option{clique.WithDriver(opts.Driver), clique.WithLogger(c.Logger)}
	if opts.Workers > 0 {
		aopts = append(aopts, clique.WithWorkers(opts.Workers))
	}
	a := clique.NewAnalyzer(g, aopts...)

	cliques, err := a.MaximalCliques(cmd.Context())
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	out := cmd.OutOrStdout()
	if !all {
		if len(cliques) > 0 {
			fmt.Fprintln(out, cliques[0])
		} else {
			fmt.Fprintln(out)
		}
		return nil
	}
	for _, k := range cliques {
		fmt.Fprintln(out, k)
	}
	return nil
}
