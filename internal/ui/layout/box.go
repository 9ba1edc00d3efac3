package layout

import "slices"

// BoxPanel is a plain ordered container, used for the top area.
type BoxPanel struct {
	widgets []Widget
}

// NewBoxPanel creates an empty box.
func NewBoxPanel() *BoxPanel {
	return &BoxPanel{}
}

// Append detaches w from its previous container and adds it at the end.
func (bp *BoxPanel) Append(w Widget) {
	Detach(w)
	bp.widgets = append(bp.widgets, w)
	w.SetParent(bp)
	w.Show()
}

// Detach implements Container.
func (bp *BoxPanel) Detach(w Widget) {
	index := slices.IndexFunc(bp.widgets, func(candidate Widget) bool { return candidate == w })
	if index < 0 {
		return
	}
	bp.widgets = slices.Delete(bp.widgets, index, index+1)
	w.SetParent(nil)
}

// Widgets returns a snapshot of the contained widgets.
func (bp *BoxPanel) Widgets() []Widget {
	return slices.Clone(bp.widgets)
}

// Len returns the number of contained widgets.
func (bp *BoxPanel) Len() int {
	return len(bp.widgets)
}
