// Package shell assembles the workbench layout: a top panel, the left side
// bar, the dock area, the right side bar and the status bar. It exposes the
// add, activate and close operations and the layout persistence contract.
package shell

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/host"
	"github.com/bnema/workbench/internal/infrastructure/saveable"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/dock"
	"github.com/bnema/workbench/internal/ui/focus"
	"github.com/bnema/workbench/internal/ui/layout"
	"github.com/bnema/workbench/internal/ui/sidebar"
	"github.com/bnema/workbench/internal/ui/signal"
	"github.com/bnema/workbench/internal/ui/statusbar"
)

// Deps holds the shell collaborators. Nil fields get in-package defaults.
type Deps struct {
	Dock      port.DockArea
	Tracker   port.FocusTracker
	Saveable  port.Saveable
	Host      port.HostEnvironment
	StatusBar *statusbar.Bar

	// Resolver recreates widgets the shell has not seen when a layout is
	// restored. Widgets added to the shell always resolve.
	Resolver port.WidgetResolver

	// DefaultRank applies to side bar widgets added without WithRank.
	// Zero means entity.DefaultRank.
	DefaultRank int
}

// Shell is the layout orchestrator. It is not safe for concurrent use.
type Shell struct {
	logger zerolog.Logger

	top       *layout.BoxPanel
	left      *sidebar.Handler
	right     *sidebar.Handler
	dock      port.DockArea
	statusBar *statusbar.Bar

	tracker   port.FocusTracker
	saveable  port.Saveable
	host      port.HostEnvironment
	registry  *layout.Registry
	resolver  port.WidgetResolver
	registrar *focus.Registrar

	navigator *usecase.NavigateTabsUseCase
	closer    *usecase.CloseTabsUseCase
	saver     *usecase.SaveWidgetsUseCase

	currentMarker *focus.MarkerManager
	activeMarker  *focus.MarkerManager

	currentChanged signal.Signal[port.FocusChange]
	activeChanged  signal.Signal[port.FocusChange]

	forget      map[entity.WidgetID]func()
	defaultRank int
}

// New builds a shell. The logger carried by ctx is used for notifications
// that arrive outside of a call.
func New(ctx context.Context, deps Deps) *Shell {
	if deps.Dock == nil {
		deps.Dock = dock.New()
	}
	if deps.Tracker == nil {
		deps.Tracker = focus.NewTracker()
	}
	if deps.Saveable == nil {
		deps.Saveable = saveable.NewService()
	}
	if deps.Host == nil {
		deps.Host = host.NewAttributes()
	}
	if deps.StatusBar == nil {
		deps.StatusBar = statusbar.New()
	}
	if deps.DefaultRank == 0 {
		deps.DefaultRank = entity.DefaultRank
	}

	s := &Shell{
		logger:        logging.FromContext(ctx).With().Str("component", "shell").Logger(),
		top:           layout.NewBoxPanel(),
		left:          sidebar.NewHandler(entity.SideLeft, deps.Host),
		right:         sidebar.NewHandler(entity.SideRight, deps.Host),
		dock:          deps.Dock,
		statusBar:     deps.StatusBar,
		tracker:       deps.Tracker,
		saveable:      deps.Saveable,
		host:          deps.Host,
		registry:      layout.NewRegistry(),
		currentMarker: focus.NewMarkerManager(layout.ClassCurrent),
		activeMarker:  focus.NewMarkerManager(layout.ClassActive),
		forget:        make(map[entity.WidgetID]func()),
		defaultRank:   deps.DefaultRank,
	}
	s.resolver = port.ChainResolvers(s.registry, deps.Resolver)
	s.registrar = focus.NewRegistrar(s.tracker, s.saveable, s.resolver)
	s.navigator = usecase.NewNavigateTabsUseCase(s.dock, s.tracker)
	s.closer = usecase.NewCloseTabsUseCase(s.navigator)
	s.saver = usecase.NewSaveWidgetsUseCase(s.saveable, s.tracker)

	s.tracker.OnCurrentChanged(s.onCurrentChanged)
	s.tracker.OnActiveChanged(s.onActiveChanged)
	return s
}

func (s *Shell) eventContext() context.Context {
	return s.logger.WithContext(context.Background())
}

func (s *Shell) onCurrentChanged(change port.FocusChange) {
	s.currentMarker.OnFocusChange(s.eventContext(), change)
	s.currentChanged.Emit(change)
}

func (s *Shell) onActiveChanged(change port.FocusChange) {
	s.activeMarker.OnFocusChange(s.eventContext(), change)
	s.activeChanged.Emit(change)
}

// OnCurrentChanged subscribes to current widget changes. Title markers are
// already updated when callback runs.
func (s *Shell) OnCurrentChanged(callback func(port.FocusChange)) func() {
	return s.currentChanged.Connect(callback)
}

// OnActiveChanged subscribes to active widget changes.
func (s *Shell) OnActiveChanged(callback func(port.FocusChange)) func() {
	return s.activeChanged.Connect(callback)
}

// validWidget logs and returns false for widgets that cannot be placed.
func (s *Shell) validWidget(ctx context.Context, w layout.Widget, area entity.Area) bool {
	if w == nil || w.ID() == "" {
		logging.FromContext(ctx).Error().
			Str("area", area.String()).
			Msg("widget must have an id")
		return false
	}
	return true
}

// remember registers w for layout restore until it is closed.
func (s *Shell) remember(w layout.Widget) {
	id := w.ID()
	if known, ok := s.registry.Lookup(id); ok && known == w {
		return
	}
	if disconnect, ok := s.forget[id]; ok {
		disconnect()
	}
	s.registry.Register(w)
	s.forget[id] = w.OnClose(func(closed layout.Widget) {
		if known, ok := s.registry.Lookup(id); ok && known == closed {
			s.registry.Unregister(id)
		}
		if disconnect, ok := s.forget[id]; ok {
			delete(s.forget, id)
			disconnect()
		}
	})
}

// AddToLeftArea adds w to the left side bar.
func (s *Shell) AddToLeftArea(ctx context.Context, w layout.Widget, opts ...AddOption) {
	s.addToSideBar(ctx, s.left, entity.AreaLeft, w, opts)
}

// AddToRightArea adds w to the right side bar.
func (s *Shell) AddToRightArea(ctx context.Context, w layout.Widget, opts ...AddOption) {
	s.addToSideBar(ctx, s.right, entity.AreaRight, w, opts)
}

func (s *Shell) addToSideBar(ctx context.Context, h *sidebar.Handler, area entity.Area, w layout.Widget, opts []AddOption) {
	if !s.validWidget(ctx, w, area) {
		return
	}
	o := collectOptions(opts)
	rank := s.defaultRank
	if o.rank != nil {
		rank = *o.rank
	}
	s.remember(w)
	h.AddWidget(ctx, w, rank)
}

// SetDefaultRank changes the rank used by later side bar adds without
// WithRank. Zero means entity.DefaultRank. Placed widgets keep their rank.
func (s *Shell) SetDefaultRank(rank int) {
	if rank == 0 {
		rank = entity.DefaultRank
	}
	s.defaultRank = rank
}

// AddToTopArea appends w to the top panel.
func (s *Shell) AddToTopArea(ctx context.Context, w layout.Widget) {
	if !s.validWidget(ctx, w, entity.AreaTop) {
		return
	}
	s.remember(w)
	s.top.Append(w)
}

// AddToMainArea docks w and starts tracking its focus and dirty state.
func (s *Shell) AddToMainArea(ctx context.Context, w layout.Widget, opts ...AddOption) {
	if !s.validWidget(ctx, w, entity.AreaMain) {
		return
	}
	o := collectOptions(opts)
	s.remember(w)
	s.dock.AddWidget(w, o.dock)
	s.tracker.Add(w)
	s.saveable.Apply(w)

	logging.FromContext(ctx).Debug().
		Str("widget_id", string(w.ID())).
		Str("mode", string(o.dock.Mode)).
		Msg("main area widget added")
}

// ActivateLeft expands and focuses the left side bar widget with id.
func (s *Shell) ActivateLeft(ctx context.Context, id entity.WidgetID) (layout.Widget, bool) {
	return s.left.Activate(ctx, id)
}

// ActivateRight expands and focuses the right side bar widget with id.
func (s *Shell) ActivateRight(ctx context.Context, id entity.WidgetID) (layout.Widget, bool) {
	return s.right.Activate(ctx, id)
}

// ActivateMain selects and focuses the docked widget with id. Unknown ids
// are ignored.
func (s *Shell) ActivateMain(ctx context.Context, id entity.WidgetID) (layout.Widget, bool) {
	for _, w := range s.dock.Widgets() {
		if w.ID() == id {
			s.dock.ActivateWidget(w)
			return w, true
		}
	}
	logging.FromContext(ctx).Debug().Str("widget_id", string(id)).Msg("activate: widget not in main area")
	return nil, false
}

// ActivateWidget activates id in whichever area holds it, trying the main
// area first.
func (s *Shell) ActivateWidget(ctx context.Context, id entity.WidgetID) (layout.Widget, bool) {
	for _, activate := range []func(context.Context, entity.WidgetID) (layout.Widget, bool){
		s.ActivateMain, s.ActivateLeft, s.ActivateRight,
	} {
		if w, ok := activate(ctx, id); ok {
			return w, true
		}
	}
	return nil, false
}

// CollapseLeft collapses the left side bar.
func (s *Shell) CollapseLeft(ctx context.Context) {
	s.left.Collapse(ctx)
}

// CollapseRight collapses the right side bar.
func (s *Shell) CollapseRight(ctx context.Context) {
	s.right.Collapse(ctx)
}

// CloseAll closes every docked widget. Returns the number closed.
func (s *Shell) CloseAll(ctx context.Context) int {
	widgets := s.dock.Widgets()
	for _, w := range widgets {
		w.Close()
	}
	logging.FromContext(ctx).Debug().Int("closed", len(widgets)).Msg("closed all main area widgets")
	return len(widgets)
}

// CurrentTabGroup returns the tab group of the current widget, or nil.
func (s *Shell) CurrentTabGroup(ctx context.Context) port.TabGroup {
	return s.navigator.CurrentTabGroup(ctx)
}

// HasSelectedTab reports whether a tab of the current group is selected.
func (s *Shell) HasSelectedTab(ctx context.Context) bool {
	return s.navigator.HasSelectedTab(ctx)
}

// ActivateNextTab moves to the next tab, crossing group boundaries.
func (s *Shell) ActivateNextTab(ctx context.Context) bool {
	return s.navigator.ActivateNext(ctx)
}

// ActivatePreviousTab moves to the previous tab, crossing group boundaries.
func (s *Shell) ActivatePreviousTab(ctx context.Context) bool {
	return s.navigator.ActivatePrevious(ctx)
}

// CloseTab closes the current tab.
func (s *Shell) CloseTab(ctx context.Context) int {
	return s.closer.CloseTab(ctx)
}

// CloseOtherTabs closes every tab of the current group but the current one.
func (s *Shell) CloseOtherTabs(ctx context.Context) int {
	return s.closer.CloseOtherTabs(ctx)
}

// CloseAllTabs closes every tab of the current group.
func (s *Shell) CloseAllTabs(ctx context.Context) int {
	return s.closer.CloseAllTabs(ctx)
}

// CloseRightTabs closes the tabs right of the current one.
func (s *Shell) CloseRightTabs(ctx context.Context) int {
	return s.closer.CloseRightTabs(ctx)
}

// CanSave reports whether the current widget has unsaved changes.
func (s *Shell) CanSave(ctx context.Context) bool {
	return s.saver.CanSave(ctx)
}

// Save saves the current widget.
func (s *Shell) Save(ctx context.Context) error {
	return s.saver.Save(ctx)
}

// CanSaveAll reports whether any tracked widget has unsaved changes.
func (s *Shell) CanSaveAll(ctx context.Context) bool {
	return s.saver.CanSaveAll(ctx)
}

// SaveAll saves every tracked widget concurrently and waits for all of them.
func (s *Shell) SaveAll(ctx context.Context) error {
	return s.saver.SaveAll(ctx)
}

// CurrentWidget returns the most recently focused main area widget.
func (s *Shell) CurrentWidget() layout.Widget {
	return s.tracker.CurrentWidget()
}

// ActiveWidget returns the main area widget holding focus.
func (s *Shell) ActiveWidget() layout.Widget {
	return s.tracker.ActiveWidget()
}

// Widgets returns the widgets placed in area, in display order.
func (s *Shell) Widgets(area entity.Area) []layout.Widget {
	switch area {
	case entity.AreaMain:
		return s.dock.Widgets()
	case entity.AreaLeft:
		return s.left.Widgets()
	case entity.AreaRight:
		return s.right.Widgets()
	case entity.AreaTop:
		return s.top.Widgets()
	default:
		return nil
	}
}

// AreaFor returns the area holding w, or entity.AreaNone.
func (s *Shell) AreaFor(w layout.Widget) entity.Area {
	if w == nil {
		return entity.AreaNone
	}
	switch {
	case s.left.Contains(w):
		return entity.AreaLeft
	case s.right.Contains(w):
		return entity.AreaRight
	}
	switch w.Parent() {
	case nil:
		return entity.AreaNone
	case layout.Container(s.dock):
		return entity.AreaMain
	case layout.Container(s.top):
		return entity.AreaTop
	}
	return entity.AreaNone
}

// LeftBar returns the left side bar handler.
func (s *Shell) LeftBar() *sidebar.Handler { return s.left }

// RightBar returns the right side bar handler.
func (s *Shell) RightBar() *sidebar.Handler { return s.right }

// Dock returns the main area.
func (s *Shell) Dock() port.DockArea { return s.dock }

// TopPanel returns the top panel.
func (s *Shell) TopPanel() *layout.BoxPanel { return s.top }

// StatusBar returns the status bar.
func (s *Shell) StatusBar() *statusbar.Bar { return s.statusBar }

// Tracker returns the focus tracker.
func (s *Shell) Tracker() port.FocusTracker { return s.tracker }

// Resolver returns the resolver used for layout restore.
func (s *Shell) Resolver() port.WidgetResolver { return s.resolver }
