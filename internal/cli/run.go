package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treestack/pkg/errors"
	"github.com/matzehuels/treestack/pkg/observability"
	"github.com/matzehuels/treestack/pkg/render"
	"github.com/matzehuels/treestack/pkg/render/nodelink"
	"github.com/matzehuels/treestack/pkg/session"
)

// Visualization types and output formats.
const (
	vizScene    = "scene"    // stack column beside the laid-out tree
	vizNodeLink = "nodelink" // tree only, laid out by Graphviz

	formatSVG  = "svg"
	formatJSON = "json"
	formatDOT  = "dot"
	formatPDF  = "pdf"
	formatPNG  = "png"
)

var (
	validTypes   = map[string]bool{vizScene: true, vizNodeLink: true}
	validFormats = map[string]bool{formatSVG: true, formatJSON: true, formatDOT: true, formatPDF: true, formatPNG: true}
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	tree      string   // tree kind, overrides config
	output    string   // output file (single type/format) or base path
	vizTypes  []string // scene, nodelink
	formats   []string // svg, json, dot, pdf, png
	detailed  bool     // handle and height in nodelink labels
	keepGoing bool     // continue after a rejected command
	pngScale  float64
}

// runCommand creates the run command, the headless counterpart of the TUI.
func (c *CLI) runCommand() *cobra.Command {
	var vizTypesStr, formatsStr string
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a script of stack commands and render the result",
		Long: `Run executes one command per line (push N, pop, peek, clear; '#' starts a
comment) against a fresh session, prints the operation log and final state,
and optionally renders the final state to files.

Reads the script from stdin when no file is given or the file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.vizTypes = c.config.Render.Types
			if vizTypesStr != "" {
				opts.vizTypes = splitList(vizTypesStr)
			}
			opts.formats = c.config.Render.Formats
			if formatsStr != "" {
				opts.formats = splitList(formatsStr)
			}
			if !cmd.Flags().Changed("detailed") {
				opts.detailed = c.config.Render.Detailed
			}
			if !cmd.Flags().Changed("png-scale") {
				opts.pngScale = c.config.Render.PNGScale
			}
			if err := validateTypes(opts.vizTypes); err != nil {
				return err
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}

			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			// Rendering is opt-in: a bare run only prints.
			doRender := opts.output != "" || vizTypesStr != "" || formatsStr != ""
			return c.runScript(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), input, doRender, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.tree, "tree", "", "tree kind: bst, complete (default from config, else bst)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): scene (default), nodelink (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show handles and heights (nodelink)")
	cmd.Flags().BoolVarP(&opts.keepGoing, "keep-going", "k", false, "continue after a rejected command")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", defaultPNGScale, "PNG scale factor")

	return cmd
}

// validateTypes checks that all requested visualization types are valid.
func validateTypes(types []string) error {
	for _, t := range types {
		if !validTypes[t] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid type: %s (must be 'scene' or 'nodelink')", t)
		}
	}
	return nil
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'json', 'dot', 'pdf', or 'png')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// Known format extensions are stripped; stdin scripts default to the app name.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps every type/format combination to a file path. A single
// combination writes to -o verbatim; otherwise names are base[_type].format.
func outputPaths(output, input string, types, formats []string) map[[2]string]string {
	paths := make(map[[2]string]string, len(types)*len(formats))
	if output != "" && len(types) == 1 && len(formats) == 1 {
		paths[[2]string{types[0], formats[0]}] = output
		return paths
	}
	base := basePath(output, input)
	for _, t := range types {
		for _, f := range formats {
			if len(types) == 1 {
				paths[[2]string{t, f}] = fmt.Sprintf("%s.%s", base, f)
			} else {
				paths[[2]string{t, f}] = fmt.Sprintf("%s_%s.%s", base, t, f)
			}
		}
	}
	return paths
}

// runScript executes the script, prints the log and the final state, and
// writes renders when requested.
func (c *CLI) runScript(ctx context.Context, stdin io.Reader, w io.Writer, input string, doRender bool, opts *runOpts) error {
	logger := loggerFromContext(ctx)

	r := stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	script, err := session.ParseScript(r)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", input)
	}
	logger.Debugf("Parsed %d instructions", len(script))

	sessOpts, err := c.config.sessionOptions(opts.tree)
	if err != nil {
		return err
	}
	s := session.New(sessOpts...)

	prog := newProgress(logger)
	var rejected int
	for _, in := range script {
		res, err := s.Exec(ctx, in)
		if err != nil {
			printError(w, "line %d: %s: %s", in.Line, in, errors.UserMessage(err))
			if !opts.keepGoing {
				return fmt.Errorf("line %d: %w", in.Line, err)
			}
			rejected++
			continue
		}
		printInfo(w, "%s", res.Log)
	}
	prog.done(fmt.Sprintf("Ran %d commands", len(script)))
	if rejected > 0 {
		logger.Warnf("%d commands rejected", rejected)
	}

	printState(w, s)

	if !doRender {
		return nil
	}
	return writeRenders(ctx, w, s, input, opts)
}

// printState prints the final stack and tree.
func printState(w io.Writer, s *session.Session) {
	entries := s.Entries()
	values := make([]string, len(entries))
	for i, e := range entries {
		values[i] = strconv.Itoa(e.Value)
	}
	t := s.Tree()

	fmt.Fprintln(w)
	printKeyValue(w, "Stack", "["+strings.Join(values, " ")+"] ← top")
	printKeyValue(w, "Tree", fmt.Sprintf("%s, %d nodes, height %d", s.Kind(), t.Len(), t.Height()))
	printKeyValue(w, "In-order", fmt.Sprint(t.InOrder()))
	printKeyValue(w, "Level-order", fmt.Sprint(t.LevelOrder()))
}

// writeRenders renders every requested type/format and writes the files.
func writeRenders(ctx context.Context, w io.Writer, s *session.Session, input string, opts *runOpts) (err error) {
	logger := loggerFromContext(ctx)
	hooks := observability.Render()

	start := time.Now()
	hooks.OnRenderStart(ctx, opts.formats)
	defer func() { hooks.OnRenderComplete(ctx, opts.formats, time.Since(start), err) }()

	paths := outputPaths(opts.output, input, opts.vizTypes, opts.formats)
	fmt.Fprintln(w)
	for _, vizType := range opts.vizTypes {
		for _, format := range opts.formats {
			data, err := renderSession(ctx, s, vizType, format, opts)
			if stderrors.Is(err, errSkipFormat) {
				logger.Debugf("Skipping %s/%s (unsupported combination)", vizType, format)
				continue
			}
			if err != nil {
				return fmt.Errorf("%s/%s: %w", vizType, format, err)
			}

			path := paths[[2]string{vizType, format}]
			if err := writeOutput(path, data); err != nil {
				return err
			}
			logger.Debugf("Generated %s: %d bytes", path, len(data))
			printFile(w, path)
		}
	}
	printSuccess(w, "Rendered %s", s.Kind())
	return nil
}

// writeOutput validates path and writes data to it.
func writeOutput(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// errSkipFormat marks an unsupported type/format combination.
var errSkipFormat = stderrors.New("skip unsupported format")

// renderSession dispatches to the renderer for vizType.
func renderSession(ctx context.Context, s *session.Session, vizType, format string, opts *runOpts) ([]byte, error) {
	switch vizType {
	case vizScene:
		return renderScene(ctx, s, format, opts)
	case vizNodeLink:
		return renderNodeLink(ctx, s, format, opts)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown visualization type: %s", vizType)
	}
}

// renderScene draws the stack and tree together. DOT is skipped: it only
// describes the tree.
func renderScene(ctx context.Context, s *session.Session, format string, opts *runOpts) ([]byte, error) {
	sc := render.NewScene(s)
	title := fmt.Sprintf("%s stack (%d entries)", sc.TreeLabel(), s.Len())

	switch format {
	case formatSVG:
		return render.RenderSVG(sc, render.WithTitle(title)), nil
	case formatJSON:
		return render.RenderJSON(render.Document{
			SessionID: s.ID,
			CreatedAt: time.Now().UTC(),
			Log:       s.Log(),
			Scene:     sc,
		})
	case formatPDF:
		return render.ToPDF(ctx, render.RenderSVG(sc, render.WithTitle(title)))
	case formatPNG:
		return render.ToPNG(ctx, render.RenderSVG(sc, render.WithTitle(title)), opts.pngScale)
	case formatDOT:
		return nil, errSkipFormat
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// renderNodeLink draws the tree alone through Graphviz. JSON is skipped.
func renderNodeLink(ctx context.Context, s *session.Session, format string, opts *runOpts) ([]byte, error) {
	nlOpts := nodelink.Options{Detailed: opts.detailed}
	if entries := s.Entries(); len(entries) > 0 {
		nlOpts.Highlight = entries[len(entries)-1].Node
	}
	dot := nodelink.ToDOT(s.Tree(), nlOpts)

	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case formatPDF:
		return nodelink.RenderPDF(ctx, dot)
	case formatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.pngScale)
	case formatJSON:
		return nil, errSkipFormat
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}
