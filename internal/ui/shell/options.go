package shell

import (
	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/ui/layout"
)

type addOptions struct {
	rank    *int
	dock    port.DockOptions
	hasDock bool
}

// AddOption customizes an Add* call.
type AddOption func(*addOptions)

// WithRank sets the side bar rank. Lower ranks come first.
func WithRank(rank int) AddOption {
	return func(o *addOptions) {
		o.rank = &rank
	}
}

// WithDockMode places a main area widget relative to ref, or to the current
// tab group when ref is nil.
func WithDockMode(mode port.DockMode, ref layout.Widget) AddOption {
	return func(o *addOptions) {
		o.dock = port.DockOptions{Mode: mode, Ref: ref}
		o.hasDock = true
	}
}

func collectOptions(opts []AddOption) addOptions {
	var o addOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.hasDock {
		o.dock.Mode = port.DockModeTabAfter
	}
	return o
}
