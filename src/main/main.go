package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"screen-edge-offsets/src/clipboard"
	"screen-edge-offsets/src/config"
	"screen-edge-offsets/src/hook"
	"screen-edge-offsets/src/logutil"
	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/notification"
	"screen-edge-offsets/src/overlay"
	"screen-edge-offsets/src/runtimeinit"
	"screen-edge-offsets/src/session"
)

type mainOptions struct {
	output  string
	redraw  string
	backend string
	copy    bool
	copySet bool
}

func (o mainOptions) loadOptions() config.LoadOptions {
	lo := config.LoadOptions{
		OutputOverride:     o.output,
		RedrawModeOverride: o.redraw,
		BackendOverride:    o.backend,
	}
	if o.copySet {
		c := o.copy
		lo.CopyOverride = &c
	}
	return lo
}

// parseFlags accepts both -flag and GNU-style --flag (the flag package treats them alike).
func parseFlags(args []string, stderr io.Writer) (mainOptions, error) {
	var opts mainOptions
	fs := flag.NewFlagSet("screen-edge-offsets", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.output, "output", "", "Result output: dialog, stdout or json (overrides OUTPUT)")
	fs.StringVar(&opts.redraw, "redraw", "", "Redraw mode: change or timer (overrides REDRAW_MODE)")
	fs.StringVar(&opts.backend, "backend", "", "Input backend: overlay or hook (overrides INPUT_BACKEND)")
	fs.BoolVar(&opts.copy, "copy", false, "Also copy the result to the clipboard (overrides COPY_TO_CLIPBOARD)")
	if err := fs.Parse(args); err != nil {
		return mainOptions{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "copy" {
			opts.copySet = true
		}
	})
	return opts, nil
}

func main() {
	// The overlay window and its message loop must stay on one OS thread.
	runtime.LockOSThread()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	cfg, err := runtimeinit.Bootstrap(runtimeinit.Options{
		LoadOptions:        opts.loadOptions(),
		SetupLogging:       logutil.Setup,
		ShowBlockingErrors: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	log.Printf("Screen Edge Offsets starting")
	monitor.LogDisplays()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = session.Execute(ctx, session.Options{
		Select: newSelector(cfg),
		Target: buildTarget(cfg, os.Stdout),
	})
	code := exitCode(err)
	if code != 0 {
		log.Printf("Selection failed: %v", err)
		fmt.Fprintf(os.Stderr, "Selection failed: %v\n", err)
		if cfg.Output == config.OutputDialog {
			notification.ShowBlockingError(notification.Title, fmt.Sprintf("Selection failed: %v", err))
		}
	}
	return code
}

func newSelector(cfg *config.Config) session.Selector {
	mode := session.ParseRedrawMode(cfg.RedrawMode)
	if cfg.InputBackend == config.BackendHook {
		return hook.NewSelector(mode)
	}
	return overlay.NewSelector(overlay.Options{Mode: mode, RefreshHz: cfg.RefreshHz})
}

// buildTarget copies to the clipboard before the dialog blocks.
func buildTarget(cfg *config.Config, stdout io.Writer) session.ResultTarget {
	var primary session.ResultTarget
	switch cfg.Output {
	case config.OutputStdout:
		primary = session.StdoutTarget{Writer: stdout}
	case config.OutputJSON:
		primary = session.StdoutTarget{Writer: stdout, JSON: true}
	default:
		primary = session.DialogTarget{Show: notification.ShowResult}
	}
	if !cfg.CopyToClipboard {
		return primary
	}
	return session.Fanout{session.ClipboardTarget{Write: clipboard.Write}, primary}
}

// exitCode maps the outcome to the process status: a result or a user
// cancel is a normal exit.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, session.ErrSelectionCancelled), errors.Is(err, context.Canceled):
		return 0
	default:
		return 1
	}
}
