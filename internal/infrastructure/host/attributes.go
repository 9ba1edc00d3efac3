// Package host adapts the side bar markers to the environment hosting the
// shell. Attributes keeps them as keyed string attributes, the way a
// document root carries data attributes.
package host

import (
	"maps"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
)

var _ port.HostEnvironment = (*Attributes)(nil)

// Attributes is an in-memory attribute bag implementing port.HostEnvironment.
type Attributes struct {
	values   map[string]string
	onChange func(key, value string, present bool)
}

// NewAttributes creates an empty attribute bag.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]string)}
}

// MarkerKey returns the attribute key used for side.
func MarkerKey(side entity.Side) string {
	return string(side) + "SidePanel"
}

// SetMarker implements port.HostEnvironment.
func (a *Attributes) SetMarker(side entity.Side, id entity.WidgetID) {
	a.Set(MarkerKey(side), string(id))
}

// ClearMarker implements port.HostEnvironment.
func (a *Attributes) ClearMarker(side entity.Side) {
	a.Remove(MarkerKey(side))
}

// Marker returns the widget id currently marked for side.
func (a *Attributes) Marker(side entity.Side) (entity.WidgetID, bool) {
	value, ok := a.values[MarkerKey(side)]
	return entity.WidgetID(value), ok
}

// Set stores value under key.
func (a *Attributes) Set(key, value string) {
	if current, ok := a.values[key]; ok && current == value {
		return
	}
	a.values[key] = value
	if a.onChange != nil {
		a.onChange(key, value, true)
	}
}

// Remove deletes key.
func (a *Attributes) Remove(key string) {
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	if a.onChange != nil {
		a.onChange(key, "", false)
	}
}

// Get returns the value under key.
func (a *Attributes) Get(key string) (string, bool) {
	value, ok := a.values[key]
	return value, ok
}

// All returns a copy of every attribute.
func (a *Attributes) All() map[string]string {
	return maps.Clone(a.values)
}

// SetOnChange installs a callback fired when an attribute is set or removed.
func (a *Attributes) SetOnChange(fn func(key, value string, present bool)) {
	a.onChange = fn
}
