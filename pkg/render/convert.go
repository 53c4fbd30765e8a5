package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/msartori/causalgo/pkg/errors"
)

// converter is the external tool used to rasterize SVG diagrams.
const converter = "rsvg-convert"

// ToPDF converts an SVG diagram to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts an SVG diagram to PNG at the given scale factor. A scale of
// 2.0 doubles the resolution for high-DPI displays.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// convert pipes the SVG through rsvg-convert. Graphviz emits plain SVG, so
// no particular librsvg version is needed.
func convert(svg []byte, format string, extra ...string) ([]byte, error) {
	if _, err := exec.LookPath(converter); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err,
			"%s export needs %s; install librsvg (macOS: brew install librsvg, Debian/Ubuntu: apt install librsvg2-bin)",
			format, converter)
	}

	cmd := exec.Command(converter, append([]string{"-f", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s diagram export failed: %s", format, stderr.String())
	}
	return out.Bytes(), nil
}
