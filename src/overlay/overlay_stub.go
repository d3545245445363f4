//go:build !windows

package overlay

import (
	"context"

	"screen-edge-offsets/src/edges"
)

type stubSelector struct{}

func newPlatformSelector(Options) Selector { return stubSelector{} }

func (stubSelector) Select(context.Context) (edges.Distances, bool, error) {
	return edges.Distances{}, false, ErrUnsupportedPlatform
}
