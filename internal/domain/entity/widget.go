// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// WidgetID uniquely identifies a widget within the shell.
type WidgetID string

// Side identifies one of the two collapsible side bars.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Area names the regions of the shell a widget can be placed in.
type Area int

const (
	AreaNone Area = iota
	AreaMain
	AreaTop
	AreaLeft
	AreaRight
)

// String returns the lowercase area name used in logs and the CLI.
func (a Area) String() string {
	switch a {
	case AreaMain:
		return "main"
	case AreaTop:
		return "top"
	case AreaLeft:
		return "left"
	case AreaRight:
		return "right"
	default:
		return "none"
	}
}

// AreaForSide maps a side bar side to its area.
func AreaForSide(side Side) Area {
	if side == SideRight {
		return AreaRight
	}
	return AreaLeft
}

// Orientation indicates how a split area arranges its children.
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal" // Left/right split
	OrientationVertical   Orientation = "vertical"   // Top/bottom split
)
