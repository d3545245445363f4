// Package script replays recorded input through a selection session.
//
// A script is JSON lines, one event per line:
//
//	{"type":"down","x":100,"y":100}
//	{"type":"move","x":1820,"y":980}
//	{"type":"up","x":1820,"y":980,"button":"left"}
//	{"type":"key","key":"escape"}
//	{"type":"display","id":2,"left":1920,"top":0,"width":2560,"height":1440}
//
// Blank lines and lines starting with # are ignored.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"screen-edge-offsets/src/messages"
	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/selection"
)

var ErrMalformed = errors.New("malformed script line")

// Step is one parsed line. Display is set for "display" lines, which switch
// the scripted monitor before the accompanying DisplayChangeCheck is handled.
type Step struct {
	Line    int
	Event   messages.Event
	Display *monitor.Display
}

// Parse reads a whole script.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		step, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		step.Line = n
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

func parseLine(line string) (Step, error) {
	if !gjson.Valid(line) {
		return Step{}, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	v := gjson.Parse(line)

	typ := strings.ToLower(v.Get("type").String())
	switch typ {
	case "down", "move", "up":
		if !v.Get("x").Exists() || !v.Get("y").Exists() {
			return Step{}, fmt.Errorf("%w: %q event needs x and y", ErrMalformed, typ)
		}
		p := selection.Point{X: int(v.Get("x").Int()), Y: int(v.Get("y").Int())}
		btn, err := parseButton(v.Get("button"))
		if err != nil {
			return Step{}, err
		}
		switch typ {
		case "down":
			return Step{Event: messages.PointerDown{Point: p, Button: btn}}, nil
		case "move":
			return Step{Event: messages.PointerMove{Point: p}}, nil
		default:
			return Step{Event: messages.PointerUp{Point: p, Button: btn}}, nil
		}

	case "key", "keydown", "keyup":
		k, err := parseKey(v.Get("key"))
		if err != nil {
			return Step{}, err
		}
		alt := v.Get("alt").Bool()
		if typ == "keyup" {
			return Step{Event: messages.KeyUp{Key: k, Alt: alt}}, nil
		}
		return Step{Event: messages.KeyDown{Key: k, Alt: alt, Repeat: v.Get("repeat").Bool()}}, nil

	case "close":
		return Step{Event: messages.Close{}}, nil
	case "leave":
		return Step{Event: messages.DisplayChangeCheck{}}, nil
	case "tick":
		return Step{Event: messages.Tick{}}, nil

	case "display":
		w, h := int(v.Get("width").Int()), int(v.Get("height").Int())
		if w <= 0 || h <= 0 {
			return Step{}, fmt.Errorf("%w: display needs positive width and height", ErrMalformed)
		}
		left, top := int(v.Get("left").Int()), int(v.Get("top").Int())
		d := monitor.Display{
			ID:   uintptr(v.Get("id").Uint()),
			Work: monitor.Rect{Left: left, Top: top, Right: left + w, Bottom: top + h},
		}
		return Step{Event: messages.DisplayChangeCheck{}, Display: &d}, nil

	case "":
		return Step{}, fmt.Errorf("%w: missing type", ErrMalformed)
	default:
		return Step{}, fmt.Errorf("%w: unknown type %q", ErrMalformed, typ)
	}
}

func parseButton(v gjson.Result) (messages.Button, error) {
	if !v.Exists() {
		return messages.ButtonPrimary, nil
	}
	switch strings.ToLower(v.String()) {
	case "left", "primary":
		return messages.ButtonPrimary, nil
	case "right", "secondary":
		return messages.ButtonSecondary, nil
	case "middle", "other":
		return messages.ButtonOther, nil
	default:
		return 0, fmt.Errorf("%w: unknown button %q", ErrMalformed, v.String())
	}
}

func parseKey(v gjson.Result) (messages.Key, error) {
	switch strings.ToLower(v.String()) {
	case "escape", "esc":
		return messages.KeyEscape, nil
	case "f4":
		return messages.KeyF4, nil
	case "":
		return 0, fmt.Errorf("%w: key event needs a key", ErrMalformed)
	default:
		return messages.KeyOther, nil
	}
}
