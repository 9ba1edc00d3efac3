package focus

import (
	"context"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// Registrar re-registers every widget of a restored dock tree with the focus
// tracker and the saveable collaborator.
type Registrar struct {
	tracker  port.FocusTracker
	saveable port.Saveable
	resolver port.WidgetResolver
}

// NewRegistrar creates a registrar. saveable may be nil.
func NewRegistrar(tracker port.FocusTracker, saveable port.Saveable, resolver port.WidgetResolver) *Registrar {
	return &Registrar{tracker: tracker, saveable: saveable, resolver: resolver}
}

// Register walks root and registers the widgets of every tab area. It
// returns how many widgets were registered. Unknown node kinds and
// unresolvable ids are skipped.
func (r *Registrar) Register(ctx context.Context, root *entity.DockNode) int {
	if root == nil {
		return 0
	}
	return r.walk(ctx, root)
}

func (r *Registrar) walk(ctx context.Context, node *entity.DockNode) int {
	log := logging.FromContext(ctx)
	if node == nil {
		return 0
	}

	switch node.Kind {
	case entity.DockNodeTabArea:
		count := 0
		for _, id := range node.Widgets {
			w, ok := r.resolver.ResolveWidget(ctx, id)
			if !ok {
				log.Debug().Str("widget_id", string(id)).Msg("registrar: unresolved widget skipped")
				continue
			}
			r.tracker.Add(w)
			if r.saveable != nil {
				r.saveable.Apply(w)
			}
			count++
		}
		return count
	case entity.DockNodeSplitArea:
		count := 0
		for _, child := range node.Children {
			count += r.walk(ctx, child)
		}
		return count
	default:
		log.Debug().Str("kind", string(node.Kind)).Msg("registrar: unknown layout node skipped")
		return 0
	}
}
