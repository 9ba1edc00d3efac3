package port

import "github.com/bnema/workbench/internal/domain/entity"

// HostEnvironment receives the side bar markers signalling which side-bar
// widget is expanded.
type HostEnvironment interface {
	SetMarker(side entity.Side, id entity.WidgetID)
	ClearMarker(side entity.Side)
}
