package layout

import (
	"slices"
	"strings"
)

// Title is the tab-facing part of a widget: a label and a set of classes.
// Class operations are idempotent.
type Title struct {
	label   string
	caption string
	owner   Widget
	classes []string
}

// NewTitle creates a title owned by owner.
func NewTitle(owner Widget, label string) *Title {
	return &Title{owner: owner, label: label}
}

func (t *Title) Label() string { return t.label }

func (t *Title) SetLabel(label string) { t.label = label }

func (t *Title) Caption() string { return t.caption }

func (t *Title) SetCaption(caption string) { t.caption = caption }

// Owner returns the widget the title belongs to.
func (t *Title) Owner() Widget { return t.owner }

// AddClass adds class unless present. Returns true if it was added.
func (t *Title) AddClass(class string) bool {
	if class == "" || t.HasClass(class) {
		return false
	}
	t.classes = append(t.classes, class)
	return true
}

// RemoveClass removes class if present. Returns true if it was removed.
func (t *Title) RemoveClass(class string) bool {
	i := slices.Index(t.classes, class)
	if i < 0 {
		return false
	}
	t.classes = slices.Delete(t.classes, i, i+1)
	return true
}

// ToggleClass adds or removes class depending on on.
func (t *Title) ToggleClass(class string, on bool) {
	if on {
		t.AddClass(class)
		return
	}
	t.RemoveClass(class)
}

func (t *Title) HasClass(class string) bool {
	return slices.Contains(t.classes, class)
}

// Classes returns a copy of the class list in insertion order.
func (t *Title) Classes() []string {
	return slices.Clone(t.classes)
}

// ClassName joins the classes with spaces.
func (t *Title) ClassName() string {
	return strings.Join(t.classes, " ")
}
