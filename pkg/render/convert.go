package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/genogrid/pkg/errors"
)

// Output formats a Rasterizer can produce.
const (
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// DefaultDPI is used when RasterOptions.DPI is zero.
const DefaultDPI = 96.0

// RasterOptions describes the bitmap (or PDF) a Rasterizer should produce.
// Zero Width or Height keeps the document's own size.
type RasterOptions struct {
	Format string
	Width  int
	Height int
	DPI    float64
}

// Rasterizer converts an SVG document on disk into another format.
type Rasterizer interface {
	Rasterize(ctx context.Context, svgPath string, opts RasterOptions) ([]byte, error)
}

// Rsvg rasterizes with the rsvg-convert command line tool.
type Rsvg struct {
	// Binary is the executable to run. Defaults to "rsvg-convert" on PATH.
	Binary string
	Logger *log.Logger
}

// NewRsvg returns an Rsvg using rsvg-convert from PATH.
func NewRsvg() *Rsvg {
	return &Rsvg{Binary: "rsvg-convert"}
}

// Rasterize runs rsvg-convert on svgPath and returns its stdout.
func (r *Rsvg) Rasterize(ctx context.Context, svgPath string, opts RasterOptions) ([]byte, error) {
	bin := r.Binary
	if bin == "" {
		bin = "rsvg-convert"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRasterizerUnavailable, err,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", formatOrDefault(opts.Format))
	}

	args := rsvgArgs(svgPath, opts)
	r.logger().Debug("rasterizing", "bin", bin, "args", args)

	cmd := exec.CommandContext(ctx, bin, args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeRasterFailed, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}

func (r *Rsvg) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// rsvgArgs builds the rsvg-convert command line for opts.
func rsvgArgs(svgPath string, opts RasterOptions) []string {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	d := strconv.FormatFloat(dpi, 'f', -1, 64)
	args := []string{"--format", formatOrDefault(opts.Format), "--dpi-x", d, "--dpi-y", d}
	if opts.Width > 0 {
		args = append(args, "--width", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		args = append(args, "--height", strconv.Itoa(opts.Height))
	}
	return append(args, svgPath)
}

func formatOrDefault(f string) string {
	if f == "" {
		return FormatPNG
	}
	return f
}

// WriteTemp writes svg to a uniquely named file in the temp directory.
// The returned cleanup func removes it.
func WriteTemp(svg []byte) (path string, cleanup func(), err error) {
	path = filepath.Join(os.TempDir(), fmt.Sprintf("genogrid-%s.svg", uuid.NewString()))
	if err := os.WriteFile(path, svg, 0o600); err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeInternal, err, "write intermediate document")
	}
	return path, func() { _ = os.Remove(path) }, nil
}

// Convert writes svg to a temp file, rasterizes it and removes the file.
func Convert(ctx context.Context, r Rasterizer, svg []byte, opts RasterOptions) ([]byte, error) {
	path, cleanup, err := WriteTemp(svg)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return r.Rasterize(ctx, path, opts)
}

// ToPNG converts svg to PNG with r.
func ToPNG(ctx context.Context, r Rasterizer, svg []byte, opts RasterOptions) ([]byte, error) {
	opts.Format = FormatPNG
	return Convert(ctx, r, svg, opts)
}

// ToPDF converts svg to PDF with r.
func ToPDF(ctx context.Context, r Rasterizer, svg []byte, opts RasterOptions) ([]byte, error) {
	opts.Format = FormatPDF
	return Convert(ctx, r, svg, opts)
}
