package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msartori/causalgo/pkg/data"
	"github.com/msartori/causalgo/pkg/discovery"
	"github.com/msartori/causalgo/pkg/errors"
	"github.com/msartori/causalgo/pkg/graph"
	"github.com/msartori/causalgo/pkg/prior"
	"github.com/msartori/causalgo/pkg/render/nodelink"
	"github.com/msartori/causalgo/pkg/score"
)

const (
	scoreBIC = "bic" // Bayesian information criterion (default)
	scoreAIC = "aic" // Akaike information criterion
	scoreLL  = "ll"  // raw log-likelihood, needs an in-degree bound

	defaultPNGScale = 2.0 // 2x resolution for high-DPI displays
)

// learnOpts holds the command-line flags for the learn command.
type learnOpts struct {
	output      string  // output file path; extension selects the format
	scoreName   string  // scoring criterion: "bic", "aic", "ll"
	penalty     float64 // penalty coefficient for bic/aic
	maxIter     int     // iteration cap; negative means unbounded
	maxInDegree int     // parent bound per vertex; 0 means unbounded
	seed        int64   // shuffle seed for candidate enumeration order
	seedSet     bool    // whether --seed was given
	workers     int     // scan parallelism
	priorPath   string  // TOML file with forbidden/required edges
	scale       float64 // PNG scale factor
	detailed    bool    // include in/out degree in node labels
	leftToRight bool    // horizontal diagram layout
	tui         bool    // interactive progress view
}

// newLearnCmd creates the learn command, which runs greedy hill climbing on
// a CSV dataset and optionally writes the learned graph to a file.
//
// The dataset must be a CSV with a header row of variable names; every cell
// is a categorical state. Prior knowledge comes from a TOML file with
// forbidden and required label pairs.
func newLearnCmd() *cobra.Command {
	opts := learnOpts{
		scoreName: scoreBIC,
		penalty:   1.0,
		maxIter:   -1,
		workers:   1,
		scale:     defaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "learn [dataset.csv]",
		Short: "Learn a network structure from a categorical dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			if err := validateScoreName(opts.scoreName); err != nil {
				return err
			}
			return runLearn(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file: .dot, .svg, .pdf, or .png (default: DOT on stdout)")
	cmd.Flags().StringVarP(&opts.scoreName, "score", "s", opts.scoreName, "scoring criterion: bic (default), aic, ll")
	cmd.Flags().Float64Var(&opts.penalty, "penalty", opts.penalty, "penalty coefficient for bic/aic")
	cmd.Flags().IntVar(&opts.maxIter, "max-iter", opts.maxIter, "maximum number of accepted operations (negative: unbounded)")
	cmd.Flags().IntVar(&opts.maxInDegree, "max-in-degree", 0, "maximum parents per variable (0: unbounded)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "shuffle candidate order with this seed")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", opts.workers, "parallel workers for the candidate scan")
	cmd.Flags().StringVarP(&opts.priorPath, "prior", "p", "", "TOML file with forbidden/required edges")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include in/out degree in node labels")
	cmd.Flags().BoolVar(&opts.leftToRight, "left-to-right", false, "lay the diagram out horizontally")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "show interactive progress")

	return cmd
}

// validateScoreName checks that the score flag names a known criterion.
func validateScoreName(s string) error {
	switch s {
	case scoreBIC, scoreAIC, scoreLL:
		return nil
	}
	return fmt.Errorf("invalid score: %s (must be 'bic', 'aic', or 'll')", s)
}

// buildCriterion constructs the scoring criterion from the flags.
func buildCriterion(opts *learnOpts, d *data.Categorical) score.Criterion {
	switch opts.scoreName {
	case scoreAIC:
		return score.NewAIC(d).WithPenaltyCoeff(opts.penalty)
	case scoreLL:
		return score.NewLogLikelihood(d)
	default:
		return score.NewBIC(d).WithPenaltyCoeff(opts.penalty)
	}
}

func runLearn(ctx context.Context, path string, opts *learnOpts) error {
	logger := loggerFromContext(ctx)
	runID := uuid.NewString()[:8]
	logger.Debug("starting run", "id", runID, "dataset", path, "score", opts.scoreName)

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open dataset %s", path)
	}
	defer f.Close()

	d, err := data.FromCSV(f)
	if err != nil {
		return err
	}
	k, err := loadPrior(opts.priorPath, d.Labels())
	if err != nil {
		return err
	}
	printInfo("%s: %d observations, %d variables", filepath.Base(path), d.Len(), d.Order())

	if opts.scoreName == scoreLL && opts.maxInDegree == 0 {
		printWarning("log-likelihood always rewards extra parents; consider --max-in-degree")
	}

	crit := buildCriterion(opts, d)
	hc := discovery.NewHillClimbing(crit).
		WithWorkers(opts.workers).
		WithLogger(logger)
	if opts.maxIter >= 0 {
		hc = hc.WithMaxIterations(opts.maxIter)
	}
	if opts.maxInDegree > 0 {
		hc = hc.WithMaxInDegree(opts.maxInDegree)
	}
	if opts.seedSet {
		hc = hc.WithShuffle(opts.seed)
	}

	prog := newProgress(logger)
	var g *graph.Directed
	var iterations int
	if opts.tui {
		g, iterations, err = runLearnTUI(hc, d, k, path)
	} else {
		sp := newSpinnerWithContext(ctx, "Learning structure...")
		sp.start()
		g, err = hc.WithProgress(func(p discovery.Progress) {
			iterations = p.Iteration
			sp.setStatus("· iter %d · score %.4f", p.Iteration, p.Score)
		}).Call(d, k)
		sp.stop()
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Learned %d edges over %d variables", g.Size(), g.Order()))
	printSuccess("Structure learned")
	printStats(g.Order(), g.Size(), iterations, crit.Score(g))
	if order, ok := g.TopologicalSort(); ok {
		names := make([]string, len(order))
		for i, x := range order {
			names[i] = g.Label(x)
		}
		printKeyValue("Order", strings.Join(names, " < "))
	}

	if opts.output == "" {
		// No output file: emit the DOT source on stdout so the result can
		// be piped into external Graphviz tooling.
		fmt.Println()
		fmt.Print(learnedDOT(g, k, opts))
		return nil
	}
	if err := writeOutput(g, k, opts); err != nil {
		return err
	}
	printFile(opts.output)
	return nil
}

// learnedDOT builds the DOT source of the learned graph, bolding edges that
// were required by the prior.
func learnedDOT(g *graph.Directed, k *prior.ForbiddenRequired, opts *learnOpts) string {
	required := make([]graph.Edge, 0, len(k.Required()))
	for _, e := range k.Required() {
		required = append(required, graph.Edge{From: e.From, To: e.To})
	}
	return nodelink.ToDOT(g, nodelink.Options{
		Required:    required,
		Detailed:    opts.detailed,
		LeftToRight: opts.leftToRight,
	})
}

// writeOutput renders the learned graph to the output path, picking the
// format from the file extension. Required edges from the prior are drawn
// bold so constrained structure stands out.
func writeOutput(g *graph.Directed, k *prior.ForbiddenRequired, opts *learnOpts) error {
	dot := learnedDOT(g, k, opts)

	var out []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case ".dot":
		out = []byte(dot)
	case ".svg":
		out, err = nodelink.RenderSVG(dot)
	case ".pdf":
		out, err = nodelink.RenderPDF(dot)
	case ".png":
		out, err = nodelink.RenderPNG(dot, opts.scale)
	default:
		return errors.New(errors.ErrCodeUnsupported,
			"unsupported output extension %q (must be .dot, .svg, .pdf, or .png)", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(opts.output, out, 0o644)
}
