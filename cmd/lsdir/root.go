package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/lsdir/internal/config"
	"github.com/Cyclone1070/lsdir/internal/logging"
	"github.com/Cyclone1070/lsdir/internal/tool/directory"
	"github.com/Cyclone1070/lsdir/internal/tool/service/fs"
	"github.com/Cyclone1070/lsdir/internal/ui/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit statuses.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks failures caused by how lsdir was invoked rather than by
// the filesystem.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type options struct {
	configPath       string
	hideHidden       bool
	respectGitignore bool
	format           string
	color            string
	verbose          bool
}

// newRootCmd builds the lsdir command writing listings to stdout and debug
// logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lsdir [dir]",
		Short: "Print the entries of a directory, one per line",
		Long: `lsdir prints the name of every entry of a directory, one per line,
in the order the operating system returns them. Without an argument it lists
the current working directory.

Defaults can be set in ~/.config/lsdir/config.json or config.yaml.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return runList(cmd, opts, dir, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/lsdir/config.{json,yaml})")
	flags.BoolVar(&opts.hideHidden, "hide-hidden", false, "omit entries whose name starts with '.'")
	flags.BoolVar(&opts.respectGitignore, "gitignore", false, "omit entries matched by the directory's .gitignore")
	flags.StringVar(&opts.format, "format", config.FormatPlain, "output format: plain or json")
	flags.StringVar(&opts.color, "color", config.ColorAuto, "colour directory names: auto, always or never")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")

	return cmd
}

func runList(cmd *cobra.Command, opts *options, dir string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return &usageError{err: err}
	}

	logger := logging.New(opts.verbose, stderr)
	defer func() { _ = logger.Sync() }()
	logger.Debug("configuration resolved",
		zap.Bool("show_hidden", cfg.List.ShowHidden),
		zap.Bool("respect_gitignore", cfg.List.RespectGitignore),
		zap.String("format", cfg.List.Format),
		zap.String("color", cfg.List.Color),
	)

	tool := directory.NewListDirectoryTool(fs.NewOSFileSystem(), logger)
	resp, err := tool.Run(cmd.Context(), directory.ListDirectoryRequest{
		Path:             dir,
		ShowHidden:       cfg.List.ShowHidden,
		RespectGitignore: cfg.List.RespectGitignore,
	})
	if err != nil {
		return err
	}

	printer := render.NewPrinter(stdout, cfg.List.Format, render.ShouldColor(cfg.List.Color, stdout))
	return printer.Print(resp.Entries)
}

// loadConfig merges defaults, the config file and explicitly set flags.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	loader := config.NewLoader()

	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = loader.LoadFile(opts.configPath)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("hide-hidden") {
		cfg.List.ShowHidden = !opts.hideHidden
	}
	if flags.Changed("gitignore") {
		cfg.List.RespectGitignore = opts.respectGitignore
	}
	if flags.Changed("format") {
		cfg.List.Format = opts.format
	}
	if flags.Changed("color") {
		cfg.List.Color = opts.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run executes lsdir with args and returns the process exit status. Any
// error is reported as a single line on stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(stderr, "lsdir: %s\n", oneLine(err.Error()))

	var uerr *usageError
	if errors.As(err, &uerr) {
		return exitUsage
	}
	return exitFailure
}

// oneLine folds a possibly multi-line error message onto a single line.
func oneLine(msg string) string {
	var parts []string
	for _, line := range strings.Split(msg, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
