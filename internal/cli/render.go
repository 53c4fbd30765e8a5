package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msartori/causalgo/pkg/errors"
	"github.com/msartori/causalgo/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string  // output file path; extension selects the format
	scale  float64 // PNG scale factor
}

// newRenderCmd creates the render command for converting a saved DOT graph
// to SVG, PDF, or PNG. This complements the learn command's --output flag
// for workflows that keep the DOT source under version control and render
// it separately.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{scale: defaultPNGScale}

	cmd := &cobra.Command{
		Use:   "render [graph.dot]",
		Short: "Render a DOT graph file to SVG, PDF, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				opts.output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
			}
			return runRender(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file: .svg, .pdf, or .png (default: input with .svg)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

func runRender(path string, opts *renderOpts) error {
	dot, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read DOT file %s", path)
	}

	var out []byte
	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case ".svg":
		out, err = nodelink.RenderSVG(string(dot))
	case ".pdf":
		out, err = nodelink.RenderPDF(string(dot))
	case ".png":
		out, err = nodelink.RenderPNG(string(dot), opts.scale)
	default:
		return errors.New(errors.ErrCodeUnsupported,
			"unsupported output extension %q (must be .svg, .pdf, or .png)", ext)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return err
	}
	printSuccess("Rendered %s", filepath.Base(path))
	printFile(opts.output)
	return nil
}
