package shell

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// LayoutData snapshots the arrangement of every area.
func (s *Shell) LayoutData(_ context.Context) *entity.LayoutData {
	main := &entity.DockLayoutData{Main: s.dock.SaveLayout()}
	if current := s.tracker.CurrentWidget(); current != nil && s.AreaFor(current) == entity.AreaMain {
		main.ActiveWidgets = []entity.WidgetID{current.ID()}
	}

	return &entity.LayoutData{
		Version:   entity.LayoutDataVersion,
		MainArea:  main,
		LeftBar:   s.left.LayoutData(),
		RightBar:  s.right.LayoutData(),
		StatusBar: s.statusBar.LayoutData(),
	}
}

// SetLayoutData restores a snapshot taken by LayoutData. Restored main area
// widgets are registered for focus and dirty tracking, then the listed
// active main area widgets are activated in order. nil data is ignored.
func (s *Shell) SetLayoutData(ctx context.Context, data *entity.LayoutData) {
	if data == nil {
		return
	}
	log := logging.FromContext(ctx)

	if data.MainArea != nil {
		s.dock.RestoreLayout(ctx, data.MainArea.Main, s.resolver)
		// The registrar resolves ids again; restored widgets must resolve to
		// the same instances.
		for _, w := range s.dock.Widgets() {
			s.remember(w)
		}
		registered := s.registrar.Register(ctx, data.MainArea.Main)
		for _, id := range data.MainArea.ActiveWidgets {
			s.ActivateMain(ctx, id)
		}
		log.Debug().Int("registered", registered).Msg("main area restored")
	}

	s.left.SetLayoutData(ctx, data.LeftBar, s.resolver)
	s.right.SetLayoutData(ctx, data.RightBar, s.resolver)
	for _, w := range append(s.left.Widgets(), s.right.Widgets()...) {
		s.remember(w)
	}

	if err := s.statusBar.SetLayoutData(ctx, data.StatusBar); err != nil {
		log.Warn().Err(err).Msg("status bar layout ignored")
	}
}
