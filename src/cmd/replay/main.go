package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"screen-edge-offsets/src/logutil"
	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/script"
	"screen-edge-offsets/src/session"
)

const (
	maxFileSizeMB = 10
	maxFileSize   = maxFileSizeMB * 1024 * 1024
)

type cliOptions struct {
	filePath   string
	workArea   string
	redraw     string
	jsonOutput bool
	verbose    bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return runWithArgs(os.Args, os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		args = []string{"replay"}
	}

	opts := &cliOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(normalizeLegacyArgs(args)[1:])
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(context.Background())
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "replay",
		Short:         "Replay a recorded selection script and print the edge offsets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithOptions(cmd, *opts)
		},
	}

	cmd.Flags().StringVar(&opts.filePath, "file", "", "Path to event script (use '-' for stdin)")
	cmd.Flags().StringVar(&opts.workArea, "work-area", "1920x1080", "Initial work area as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&opts.redraw, "redraw", "change", "Redraw mode: change or timer")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output to stderr")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runWithOptions(cmd *cobra.Command, opts cliOptions) error {
	// Configure logging BEFORE any other operations.
	if opts.verbose {
		logutil.SetupWriter(cmd.ErrOrStderr())
		fmt.Fprintf(cmd.ErrOrStderr(), "[verbose] Starting replay\n")
	} else {
		logutil.SetupWriter(nil)
	}

	wa, err := parseWorkArea(opts.workArea)
	if err != nil {
		return err
	}

	data, err := readScript(cmd.InOrStdin(), opts.filePath)
	if err != nil {
		return err
	}

	steps, err := script.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}
	if opts.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[verbose] Parsed %d events, work area %s\n", len(steps), wa)
	}

	initial := monitor.Display{ID: 1, Work: monitor.Rect{Right: wa.Width, Bottom: wa.Height}}
	player, err := script.NewPlayer(initial, session.ParseRedrawMode(opts.redraw))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	_, err = session.Execute(cmd.Context(), session.Options{
		Select: player.Selector(steps),
		Target: session.StdoutTarget{Writer: cmd.OutOrStdout(), JSON: opts.jsonOutput},
	})
	if errors.Is(err, session.ErrSelectionCancelled) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Selection cancelled")
		return nil
	}
	return err
}

func readScript(stdin io.Reader, filePath string) ([]byte, error) {
	var data []byte
	var err error
	if filePath == "-" {
		data, err = io.ReadAll(io.LimitReader(stdin, maxFileSize+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
		}
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("input file is empty")
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("input file exceeds maximum size of %d MB", maxFileSizeMB)
	}
	return data, nil
}

func parseWorkArea(value string) (monitor.WorkArea, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(value)), "x")
	if !ok {
		return monitor.WorkArea{}, fmt.Errorf("invalid work area %q, expected WIDTHxHEIGHT", value)
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return monitor.WorkArea{}, fmt.Errorf("invalid work area %q, expected positive WIDTHxHEIGHT", value)
	}
	return monitor.WorkArea{Width: width, Height: height}, nil
}

func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	normalized := make([]string, len(args))
	copy(normalized, args)

	for i := 1; i < len(normalized); i++ {
		arg := normalized[i]
		for _, name := range []string{"file", "work-area", "redraw", "json", "verbose"} {
			switch {
			case arg == "-"+name:
				normalized[i] = "--" + name
			case strings.HasPrefix(arg, "-"+name+"="):
				normalized[i] = "-" + arg
			}
		}
	}

	return normalized
}
