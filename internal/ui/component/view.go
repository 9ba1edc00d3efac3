package component

import (
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/ui/layout"
)

// View is a read-only widget, typically placed in a side bar.
type View struct {
	*layout.BaseWidget
}

// NewView creates a view widget.
func NewView(id entity.WidgetID, label string) *View {
	v := &View{BaseWidget: layout.NewBaseWidget(id, label)}
	v.Bind(v)
	return v
}
