package script

import (
	"context"
	"errors"
	"log"

	"screen-edge-offsets/src/edges"
	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/session"
)

// ErrIncomplete is returned when a script ends before the selection finished.
var ErrIncomplete = errors.New("script ended before the selection finished")

// Provider is a monitor provider whose display is switched by script steps.
type Provider struct {
	display monitor.Display
}

func (p *Provider) DisplayFor(monitor.Handle) (monitor.Display, error) {
	return monitor.StaticProvider{Display: p.display}.DisplayFor(0)
}

// Player feeds steps into a fresh session.
type Player struct {
	provider *Provider
	state    *session.State
}

// NewPlayer starts a session on the given display.
func NewPlayer(initial monitor.Display, mode session.RedrawMode) (*Player, error) {
	p := &Provider{display: initial}
	st := session.New(p, 0, mode)
	if err := st.Init(); err != nil {
		return nil, err
	}
	return &Player{provider: p, state: st}, nil
}

// State exposes the session for inspection.
func (p *Player) State() *session.State { return p.state }

// Play handles steps in order and stops at the first terminal outcome.
func (p *Player) Play(ctx context.Context, steps []Step) (session.Outcome, error) {
	var out session.Outcome
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if step.Display != nil {
			p.provider.display = *step.Display
		}
		out = p.state.Handle(step.Event)
		if out.Reposition {
			log.Printf("SCRIPT: line %d moved to work area %s", step.Line, p.state.WorkArea())
		}
		if out.Done {
			return out, nil
		}
	}
	return out, ErrIncomplete
}

// Selector adapts a script to session.Selector.
func (p *Player) Selector(steps []Step) session.Selector {
	return session.SelectorFunc(func(ctx context.Context) (edges.Distances, bool, error) {
		out, err := p.Play(ctx, steps)
		if err != nil {
			return edges.Distances{}, false, err
		}
		return out.Result, out.Cancelled, nil
	})
}
