package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/treestack/pkg/errors"
)

// rsvgBinary is the converter used for raster and PDF output.
var rsvgBinary = "rsvg-convert"

// ToPDF converts an SVG document to PDF with rsvg-convert
// (brew install librsvg, apt install librsvg2-bin).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convertSVG(ctx, svg, "pdf")
}

// ToPNG converts an SVG document to PNG. A scale of 2 doubles the resolution.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convertSVG(ctx, svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

func convertSVG(ctx context.Context, svg []byte, format string, extra ...string) ([]byte, error) {
	bin, err := exec.LookPath(rsvgBinary)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "%s output needs %s (librsvg)", format, rsvgBinary)
	}

	cmd := exec.CommandContext(ctx, bin, append([]string{"--format", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", rsvgBinary, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
