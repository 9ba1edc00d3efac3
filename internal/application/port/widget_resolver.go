package port

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/ui/layout"
)

// WidgetResolver maps persisted widget ids back to live widgets.
type WidgetResolver interface {
	ResolveWidget(ctx context.Context, id entity.WidgetID) (layout.Widget, bool)
}

// WidgetResolverFunc adapts a function to WidgetResolver.
type WidgetResolverFunc func(ctx context.Context, id entity.WidgetID) (layout.Widget, bool)

// ResolveWidget implements WidgetResolver.
func (f WidgetResolverFunc) ResolveWidget(ctx context.Context, id entity.WidgetID) (layout.Widget, bool) {
	return f(ctx, id)
}

// ChainResolvers returns a resolver trying each resolver in order.
func ChainResolvers(resolvers ...WidgetResolver) WidgetResolver {
	return WidgetResolverFunc(func(ctx context.Context, id entity.WidgetID) (layout.Widget, bool) {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			if w, ok := r.ResolveWidget(ctx, id); ok {
				return w, true
			}
		}
		return nil, false
	})
}
