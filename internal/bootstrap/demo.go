package bootstrap

import (
	"context"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/ui/shell"
	"github.com/bnema/workbench/internal/ui/statusbar"
)

// Side bar ranks used by the demo content.
const (
	rankExplorer = 10
	rankSearch   = 20
	rankOutline  = 10
)

// PopulateDemo fills an empty shell with sample views and editors.
func (wb *Workbench) PopulateDemo(ctx context.Context) {
	s := wb.Shell
	f := wb.Factory

	s.AddToTopArea(ctx, f.NewView("Menu"))
	s.AddToLeftArea(ctx, f.NewView("Search"), shell.WithRank(rankSearch))
	s.AddToLeftArea(ctx, f.NewView("Explorer"), shell.WithRank(rankExplorer))
	s.AddToRightArea(ctx, f.NewView("Outline"), shell.WithRank(rankOutline))

	readme := f.NewEditor("README.md", "# workbench\n")
	s.AddToMainArea(ctx, readme)
	s.AddToMainArea(ctx, f.NewEditor("main.go", "package main\n"))
	s.AddToMainArea(ctx, f.NewEditor("shell.go", "package shell\n"))
	s.AddToMainArea(ctx, f.NewEditor("notes.txt", ""), shell.WithDockMode(port.DockModeSplitRight, nil))
	s.AddToMainArea(ctx, f.NewView("Terminal"), shell.WithDockMode(port.DockModeSplitBottom, readme))

	s.StatusBar().SetElement(statusbar.Entry{ID: "layout", Text: wb.layoutName, Priority: 10})
	s.ActivateWidget(ctx, readme.ID())
}
