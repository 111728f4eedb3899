package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/cours-de-latin/conjugatio"
	"github.com/cours-de-latin/conjugatio/internal/config"
	"github.com/cours-de-latin/conjugatio/internal/ctxlog"
	"github.com/cours-de-latin/conjugatio/page"
	"github.com/cours-de-latin/conjugatio/pref"
	"github.com/cours-de-latin/conjugatio/render"
)

var formats = []string{"html", "json", "text"}

type options struct {
	configPath string
	format     string
	viewOnly   bool
	interact   bool
	logLevel   string
	path       string
}

func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	flagSet := flag.NewFlagSet("reformat", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
reformat - rewrite the Latin conjugation table of a saved Wiktionary page.

Usage:
  reformat [options] PAGE.html

Arguments:
  PAGE.html
    Saved page to read, or - for standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	opts := &options{}
	flagSet.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file.")
	flagSet.StringVar(&opts.format, "format", "html", "Output format. Options: 'html', 'json' or 'text'.")
	flagSet.BoolVar(&opts.viewOnly, "view", false, "Write only the improved view, without the page and toggle.")
	flagSet.BoolVar(&opts.interact, "i", false, "Prompt for the output options.")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &exitError{Code: exitUsage, Message: err.Error()}
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return nil, false, usageError("expected exactly one page argument, got %d", flagSet.NArg())
	}
	opts.path = flagSet.Arg(0)
	opts.format = strings.ToLower(opts.format)
	if err := checkFormat(opts.format); err != nil {
		return nil, false, err
	}
	return opts, false, nil
}

func checkFormat(format string) error {
	for _, f := range formats {
		if f == format {
			return nil
		}
	}
	return usageError("invalid format %q: must be 'html', 'json' or 'text'", format)
}

// run holds the command logic with its inputs and outputs injected.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string, prompt prompter) error {
	opts, shouldExit, err := parseArgs(args, stderr)
	if err != nil || shouldExit {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return &exitError{Code: exitUsage, Message: err.Error()}
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return &exitError{Code: exitUsage, Message: err.Error()}
	}
	logger := cfg.Log.NewLogger(stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	if opts.interact {
		if err := ask(ctx, prompt, opts); err != nil {
			return &exitError{Code: exitFailure, Message: err.Error()}
		}
	}

	source, err := openSource(opts.path, stdin)
	if err != nil {
		return &exitError{Code: exitFailure, Message: err.Error()}
	}
	out, err := reformat(ctx, cfg, opts, source)
	if err != nil {
		return classify(err)
	}
	if _, err := stdout.Write(out); err != nil {
		return &exitError{Code: exitFailure, Message: err.Error()}
	}
	return nil
}

func ask(ctx context.Context, prompt prompter, opts *options) error {
	format, err := prompt.Select(ctx, "Output format", formats, opts.format)
	if err != nil {
		return err
	}
	opts.format = format
	if format == "html" {
		viewOnly, err := prompt.Confirm(ctx, "Write only the improved view?", opts.viewOnly)
		if err != nil {
			return err
		}
		opts.viewOnly = viewOnly
	}
	return nil
}

func openSource(path string, stdin io.Reader) (page.Source, error) {
	if path != "-" {
		return page.File(path), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return page.Bytes(data), nil
}

func reformat(ctx context.Context, cfg config.Config, opts *options, source page.Source) ([]byte, error) {
	if opts.format == "html" && !opts.viewOnly {
		renderer, err := newRenderer(cfg)
		if err != nil {
			return nil, err
		}
		store, err := pref.Open(cfg.Preferences.Path)
		if err != nil {
			return nil, err
		}
		res, err := page.New(source, renderer, store, page.WithDefaultView(cfg.Preferences.DefaultNewView)).Run(ctx)
		if err != nil {
			return nil, err
		}
		return res.HTML, nil
	}

	rd, err := source.Document(ctx)
	if err != nil {
		return nil, err
	}
	table, diags, err := conjugatio.Parse(rd)
	if err != nil {
		return nil, err
	}
	log := ctxlog.FromContext(ctx)
	for _, d := range diags {
		log.Debug("Row skipped.", "row", d.Row, "kind", d.Kind, "detail", d.Detail)
	}

	switch opts.format {
	case "json":
		if diags == nil {
			diags = []conjugatio.Diagnostic{}
		}
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err := enc.Encode(struct {
			Table       *conjugatio.ConjugationTable `json:"table"`
			Diagnostics []conjugatio.Diagnostic      `json:"diagnostics"`
		}{table, diags})
		return buf.Bytes(), err
	case "text":
		out, err := render.NewText().Render(ctx, render.BuildView(table))
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		renderer, err := newRenderer(cfg)
		if err != nil {
			return nil, err
		}
		return renderer.Render(ctx, render.BuildView(table))
	}
}

func newRenderer(cfg config.Config) (*render.HTML, error) {
	opts := []render.Option{render.WithTemplatesDir(cfg.Render.Templates)}
	if !cfg.Render.Sanitize {
		opts = append(opts, render.WithoutSanitizer())
	}
	return render.New(opts...)
}

// classify maps a reformatting error to its exit code.
func classify(err error) error {
	var locErr *conjugatio.LocateError
	if errors.As(err, &locErr) || errors.Is(err, page.ErrAlreadyReformatted) {
		return &exitError{Code: exitNotFound, Message: err.Error()}
	}
	return &exitError{Code: exitFailure, Message: err.Error()}
}
