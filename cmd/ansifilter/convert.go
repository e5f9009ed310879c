package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	ansihtml "github.com/danielgatis/go-ansihtml"
	"github.com/danielgatis/go-ansihtml/internal/highlight"
	"github.com/danielgatis/go-ansihtml/internal/source"
	"github.com/danielgatis/go-ansihtml/internal/watch"
)

// errStdinTerminal is returned when there is nothing to read.
var errStdinTerminal = errors.New("no input files given and stdin is a terminal")

// converter renders inputs to HTML documents according to Options.
type converter struct {
	opts   Options
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer

	highlighter *highlight.Highlighter
}

func newConverter(opts Options, logger *zap.Logger, stdin io.Reader, stdout io.Writer) (*converter, error) {
	c := &converter{
		opts:   opts,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
	}

	if opts.Syntax != "" {
		h, err := highlight.New(opts.Syntax, opts.SyntaxStyle)
		if err != nil {
			return nil, fmt.Errorf("invalid --syntax: %w", err)
		}
		c.highlighter = h
	}
	return c, nil
}

// run converts the inputs named by args, then watches them if requested.
func (c *converter) run(ctx context.Context, args []string) error {
	inputs, err := source.Expand(args)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		if source.IsTerminal(c.stdin) {
			return errStdinTerminal
		}
		inputs = []source.Input{source.Stdin()}
	}

	if c.opts.Output != "" && len(inputs) > 1 {
		return fmt.Errorf("--output takes a single input, got %d; use --outdir", len(inputs))
	}

	if c.opts.Watch {
		return c.watch(ctx, inputs)
	}

	return c.convertAll(inputs)
}

// convertAll converts every input, continuing past failures.
func (c *converter) convertAll(inputs []source.Input) error {
	var errs []error
	for _, in := range inputs {
		if err := c.convert(in); err != nil {
			c.logger.Error("Conversion failed", zap.String("input", in.Name), zap.Error(err))
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 && len(inputs) > 1 {
		return fmt.Errorf("%d of %d inputs failed: %w", len(errs), len(inputs), errors.Join(errs...))
	}
	return errors.Join(errs...)
}

// convert renders one input to its destination.
func (c *converter) convert(in source.Input) error {
	rc, err := source.Open(in, c.stdin)
	if err != nil {
		return err
	}
	defer rc.Close()

	var r io.Reader = rc
	if c.highlighter != nil {
		r, err = c.highlight(in, rc)
		if err != nil {
			return err
		}
	}

	w, dest, closeOut, err := c.openOutput(in)
	if err != nil {
		return err
	}

	gen := ansihtml.New(c.opts.generatorOptions(in.Title())...)
	runErr := gen.Run(r, w)
	closeErr := closeOut()
	if runErr != nil {
		return fmt.Errorf("convert %s: %w", in.Name, runErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", dest, closeErr)
	}

	c.logger.Debug("Converted",
		zap.String("input", in.Name),
		zap.String("output", dest),
		zap.String("encoding", gen.Encoding().Mode().String()))
	return nil
}

// highlight colors the whole input with the configured lexer.
func (c *converter) highlight(in source.Input, r io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", in.Name, err)
	}

	var b strings.Builder
	if err := c.highlighter.Highlight(&b, in.Title(), string(data)); err != nil {
		return nil, fmt.Errorf("highlight %s: %w", in.Name, err)
	}
	return strings.NewReader(b.String()), nil
}

// openOutput returns the writer for in's document, its display name and a close function.
func (c *converter) openOutput(in source.Input) (io.Writer, string, func() error, error) {
	path := c.opts.Output
	if c.opts.OutDir != "" {
		if err := os.MkdirAll(c.opts.OutDir, 0o755); err != nil {
			return nil, "", nil, fmt.Errorf("create output directory: %w", err)
		}
		path = filepath.Join(c.opts.OutDir, in.OutputName())
	}

	if path == "" || path == "-" {
		return c.stdout, "stdout", func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("create output: %w", err)
	}
	return f, path, f.Close, nil
}

// watch converts inputs once, then again whenever one of them changes.
func (c *converter) watch(ctx context.Context, inputs []source.Input) error {
	if c.opts.Output == "" && c.opts.OutDir == "" {
		return errors.New("--watch needs --output or --outdir")
	}

	byPath := make(map[string]source.Input, len(inputs))
	paths := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if in.IsStdin() {
			return errors.New("--watch cannot read stdin")
		}
		byPath[in.Path] = in
		paths = append(paths, in.Path)
	}

	if err := c.convertAll(inputs); err != nil {
		c.logger.Warn("Initial conversion failed", zap.Error(err))
	}

	w, err := watch.New(paths, watch.Config{
		Logger: c.logger,
		OnChange: func(path string) {
			in := byPath[path]
			if err := c.convert(in); err != nil {
				c.logger.Error("Conversion failed", zap.String("input", in.Name), zap.Error(err))
				return
			}
			c.logger.Info("Reconverted", zap.String("input", in.Name))
		},
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
