package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"screen-edge-offsets/src/edges"
)

// ErrSelectionCancelled is returned by Execute when the user cancels.
var ErrSelectionCancelled = errors.New("selection cancelled")

// Selector runs one interactive selection. It returns (distances, cancelled, error);
// when cancelled is true the distances are undefined and err is nil.
type Selector interface {
	Select(ctx context.Context) (edges.Distances, bool, error)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(ctx context.Context) (edges.Distances, bool, error)

func (f SelectorFunc) Select(ctx context.Context) (edges.Distances, bool, error) { return f(ctx) }

// ResultTarget receives the outcome of a run.
type ResultTarget interface {
	OnSuccess(d edges.Distances) error
	OnFailure(err error) error
}

// Options configures Execute.
type Options struct {
	Select Selector
	Target ResultTarget
}

// Result is what a successful run produced.
type Result struct {
	Distances edges.Distances
}

// Execute runs a selection and hands the result to the target exactly once.
func Execute(ctx context.Context, opts Options) (Result, error) {
	if opts.Select == nil {
		return Result{}, errors.New("Select is required")
	}
	if opts.Target == nil {
		return Result{}, errors.New("Target is required")
	}

	d, cancelled, err := opts.Select.Select(ctx)
	if err != nil {
		_ = opts.Target.OnFailure(err)
		return Result{}, err
	}
	if cancelled {
		_ = opts.Target.OnFailure(ErrSelectionCancelled)
		return Result{}, ErrSelectionCancelled
	}

	if err := opts.Target.OnSuccess(d); err != nil {
		_ = opts.Target.OnFailure(err)
		return Result{}, err
	}

	return Result{Distances: d}, nil
}

// DialogTarget presents the result in a blocking dialog.
type DialogTarget struct {
	Show func(d edges.Distances) error
}

func (t DialogTarget) OnSuccess(d edges.Distances) error {
	if t.Show == nil {
		return errors.New("dialog target missing presenter")
	}
	return t.Show(d)
}

func (DialogTarget) OnFailure(err error) error {
	return nil
}

// StdoutTarget prints the result, as JSON when JSON is set.
type StdoutTarget struct {
	Writer io.Writer
	JSON   bool
}

func (t StdoutTarget) OnSuccess(d edges.Distances) error {
	w := t.Writer
	if w == nil {
		w = os.Stdout
	}
	if t.JSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(d); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(w, d.Message())
	return err
}

func (StdoutTarget) OnFailure(err error) error {
	return nil
}

// ClipboardTarget copies the one-line form of the result.
type ClipboardTarget struct {
	Write func(text string) error
}

func (t ClipboardTarget) OnSuccess(d edges.Distances) error {
	if t.Write == nil {
		return errors.New("clipboard target missing writer")
	}
	if err := t.Write(d.String()); err != nil {
		return fmt.Errorf("clipboard error: %w", err)
	}
	return nil
}

func (ClipboardTarget) OnFailure(err error) error {
	return nil
}

// Fanout delivers to every target and joins their errors.
type Fanout []ResultTarget

func (f Fanout) OnSuccess(d edges.Distances) error {
	var errs []error
	for _, t := range f {
		if err := t.OnSuccess(d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) OnFailure(err error) error {
	var errs []error
	for _, t := range f {
		if ferr := t.OnFailure(err); ferr != nil {
			errs = append(errs, ferr)
		}
	}
	return errors.Join(errs...)
}
