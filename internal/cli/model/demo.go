// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/bootstrap"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/infrastructure/snapshot"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/component"
	"github.com/bnema/workbench/internal/ui/layout"
	"github.com/bnema/workbench/internal/ui/shell"
	"github.com/bnema/workbench/internal/ui/sidebar"
	"github.com/bnema/workbench/internal/ui/statusbar"
)

const (
	sideBarWidth   = 22
	maxEditorLines = 6
)

// DemoModel is the Bubble Tea model driving an interactive workbench shell.
type DemoModel struct {
	// UI components
	help help.Model
	keys demoKeyMap

	// State
	width       int
	height      int
	err         error
	newEditors  int
	editsByHand int

	// Dependencies
	ctx      context.Context
	wb       *bootstrap.Workbench
	autosave *snapshot.Service
	theme    *styles.Theme
}

// demoKeyMap defines keybindings for the demo shell.
type demoKeyMap struct {
	NextTab      key.Binding
	PrevTab      key.Binding
	CloseTab     key.Binding
	CloseOthers  key.Binding
	CloseRight   key.Binding
	CloseAllTabs key.Binding
	ToggleLeft   key.Binding
	ToggleRight  key.Binding
	NewEditor    key.Binding
	SplitEditor  key.Binding
	Edit         key.Binding
	Save         key.Binding
	SaveAll      key.Binding
	SaveLayout   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k demoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.CloseTab, k.ToggleLeft, k.ToggleRight, k.SaveLayout, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k demoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.NewEditor, k.SplitEditor},
		{k.CloseTab, k.CloseOthers, k.CloseRight, k.CloseAllTabs},
		{k.ToggleLeft, k.ToggleRight, k.Edit},
		{k.Save, k.SaveAll, k.SaveLayout},
		{k.Help, k.Quit},
	}
}

func defaultDemoKeyMap() demoKeyMap {
	return demoKeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab/]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("S-tab/[", "previous tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "close tab"),
		),
		CloseOthers: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "close others"),
		),
		CloseRight: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "close to the right"),
		),
		CloseAllTabs: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "close group"),
		),
		ToggleLeft: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "left bar"),
		),
		ToggleRight: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "right bar"),
		),
		NewEditor: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new editor"),
		),
		SplitEditor: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "split right"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		SaveAll: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "save all"),
		),
		SaveLayout: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DemoModelConfig holds configuration for the demo model.
type DemoModelConfig struct {
	Workbench *bootstrap.Workbench
	// Autosave receives a layout capture after every key press. Optional.
	Autosave *snapshot.Service
}

// NewDemoModel creates a model driving cfg.Workbench.
func NewDemoModel(ctx context.Context, theme *styles.Theme, cfg DemoModelConfig) DemoModel {
	return DemoModel{
		help:     styles.NewHelp(theme),
		keys:     defaultDemoKeyMap(),
		width:    100,
		height:   30,
		ctx:      ctx,
		wb:       cfg.Workbench,
		autosave: cfg.Autosave,
		theme:    theme,
	}
}

// layoutSavedMsg is sent when a layout snapshot has been persisted.
type layoutSavedMsg struct {
	name string
	err  error
}

// ConfigReloadedMsg carries a configuration reloaded from disk. It is applied
// on the program goroutine, which owns the shell.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Init implements tea.Model.
func (m DemoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case layoutSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.setStatus(fmt.Sprintf("layout %q saved", msg.name))
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		if m.autosave != nil && !key.Matches(msg, m.keys.Quit, m.keys.Help) {
			m.autosave.Schedule(m.wb.Shell.LayoutData(m.ctx))
		}
		return next, cmd
	}

	return m, nil
}

func (m DemoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.wb.Shell
	ctx := m.ctx

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextTab):
		if !s.ActivateNextTab(ctx) {
			m.setStatus("no tab selected")
		}

	case key.Matches(msg, m.keys.PrevTab):
		if !s.ActivatePreviousTab(ctx) {
			m.setStatus("no tab selected")
		}

	case key.Matches(msg, m.keys.CloseTab):
		m.setStatus(closedStatus(s.CloseTab(ctx)))

	case key.Matches(msg, m.keys.CloseOthers):
		m.setStatus(closedStatus(s.CloseOtherTabs(ctx)))

	case key.Matches(msg, m.keys.CloseRight):
		m.setStatus(closedStatus(s.CloseRightTabs(ctx)))

	case key.Matches(msg, m.keys.CloseAllTabs):
		m.setStatus(closedStatus(s.CloseAllTabs(ctx)))

	case key.Matches(msg, m.keys.ToggleLeft):
		cycleSideBar(ctx, s.LeftBar())

	case key.Matches(msg, m.keys.ToggleRight):
		cycleSideBar(ctx, s.RightBar())

	case key.Matches(msg, m.keys.NewEditor):
		m.newEditors++
		s.AddToMainArea(ctx, m.wb.Factory.NewEditor(fmt.Sprintf("untitled-%d.txt", m.newEditors), ""))

	case key.Matches(msg, m.keys.SplitEditor):
		m.newEditors++
		editor := m.wb.Factory.NewEditor(fmt.Sprintf("untitled-%d.txt", m.newEditors), "")
		s.AddToMainArea(ctx, editor, shell.WithDockMode(port.DockModeSplitRight, nil))

	case key.Matches(msg, m.keys.Edit):
		editor, ok := s.CurrentWidget().(*component.Editor)
		if !ok {
			m.setStatus("current widget is not an editor")
			break
		}
		m.editsByHand++
		editor.SetContent(editor.Content() + fmt.Sprintf("edit %d\n", m.editsByHand))

	case key.Matches(msg, m.keys.Save):
		if !s.CanSave(ctx) {
			m.setStatus("nothing to save")
			break
		}
		m.err = s.Save(ctx)
		if m.err == nil {
			m.setStatus("saved")
		}

	case key.Matches(msg, m.keys.SaveAll):
		if !s.CanSaveAll(ctx) {
			m.setStatus("nothing to save")
			break
		}
		m.err = s.SaveAll(ctx)
		if m.err == nil {
			m.setStatus("saved all")
		}

	case key.Matches(msg, m.keys.SaveLayout):
		return m, m.saveLayoutCmd()
	}

	return m, nil
}

// applyConfig updates the running shell and autosave from a reloaded config.
func (m *DemoModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.wb.ApplyConfig(m.ctx, cfg)
	if m.autosave != nil {
		m.autosave.SetInterval(cfg.Shell.AutosaveIntervalMs)
	}
	m.setStatus("config reloaded")
}

// saveLayoutCmd captures the layout now and persists it in the background.
func (m DemoModel) saveLayoutCmd() tea.Cmd {
	ctx := m.ctx
	wb := m.wb
	data := wb.Shell.LayoutData(ctx)
	name := wb.LayoutName()

	return func() tea.Msg {
		err := wb.SaveData(ctx, name, data)
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Str("layout", name).Msg("failed to save layout")
		}
		return layoutSavedMsg{name: name, err: err}
	}
}

// setStatus shows text on the right end of the status bar.
func (m *DemoModel) setStatus(text string) {
	m.wb.Shell.StatusBar().SetElement(statusbar.Entry{
		ID:        "message",
		Text:      text,
		Alignment: statusbar.AlignRight,
	})
}

func closedStatus(n int) string {
	if n == 1 {
		return "closed 1 tab"
	}
	return fmt.Sprintf("closed %d tabs", n)
}

// cycleSideBar expands the next widget of h, collapsing after the last one.
func cycleSideBar(ctx context.Context, h *sidebar.Handler) {
	if h.Len() == 0 {
		return
	}
	next := 0
	if current := h.CurrentWidget(); current != nil {
		next = slices.Index(h.Widgets(), current) + 1
	}
	if next >= h.Len() {
		h.Collapse(ctx)
		return
	}
	h.SelectTab(ctx, next)
}

// View implements tea.Model.
func (m DemoModel) View() string {
	s := m.wb.Shell
	sections := make([]string, 0, 5)

	if top := m.renderTop(); top != "" {
		sections = append(sections, top)
	}

	columns := make([]string, 0, 3)
	if left := m.renderSideBar(s.LeftBar()); left != "" {
		columns = append(columns, left)
	}
	columns = append(columns, m.renderDock())
	if right := m.renderSideBar(s.RightBar()); right != "" {
		columns = append(columns, right)
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	if s.StatusBar().IsVisible() {
		sections = append(sections, m.renderStatusBar())
	}
	if m.err != nil {
		sections = append(sections, m.theme.ErrorStyle.Render(styles.IconX+" "+m.err.Error()))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DemoModel) renderTop() string {
	widgets := m.wb.Shell.Widgets(entity.AreaTop)
	if len(widgets) == 0 {
		return ""
	}
	labels := make([]string, 0, len(widgets))
	for _, w := range widgets {
		labels = append(labels, m.theme.Subtitle.Render(w.Title().Label()))
	}
	return strings.Join(labels, "  ")
}

func (m DemoModel) renderSideBar(h *sidebar.Handler) string {
	if h.Len() == 0 {
		return ""
	}

	current := h.CurrentWidget()
	lines := make([]string, 0, h.Len()+2)
	lines = append(lines, m.theme.Subtle.Render(styles.IconSidebar+" "+string(h.Side())))
	for _, title := range h.Titles() {
		if current != nil && title.Owner() == current {
			lines = append(lines, m.theme.ActiveTab.Render(title.Label()))
			continue
		}
		lines = append(lines, m.theme.InactiveTab.Render(title.Label()))
	}
	if current != nil {
		lines = append(lines, "", m.theme.Normal.Render(fmt.Sprintf("[%s]", current.Title().Label())))
	}

	return m.theme.Panel.Width(sideBarWidth).Render(strings.Join(lines, "\n"))
}

func (m DemoModel) renderDock() string {
	dock := m.wb.Shell.Dock()
	if dock.IsEmpty() {
		return m.theme.Panel.Render(m.theme.Subtle.Render("no open editors"))
	}

	groups := dock.TabBars()
	next := 0
	return m.renderDockNode(dock.SaveLayout(), groups, &next)
}

// renderDockNode renders node, consuming tab groups in tree order.
func (m DemoModel) renderDockNode(node *entity.DockNode, groups []port.TabGroup, next *int) string {
	if node == nil {
		return ""
	}

	if node.Kind == entity.DockNodeTabArea {
		if *next >= len(groups) {
			return ""
		}
		group := groups[*next]
		*next++
		return m.renderTabGroup(group)
	}

	parts := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		if part := m.renderDockNode(child, groups, next); part != "" {
			parts = append(parts, part)
		}
	}
	if node.Orientation == entity.OrientationVertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m DemoModel) renderTabGroup(group port.TabGroup) string {
	focused := m.wb.Shell.CurrentWidget()
	panel := m.theme.Panel

	tabs := make([]string, 0, len(group.Titles()))
	for i, title := range group.Titles() {
		label := title.Label()
		if title.HasClass(layout.ClassDirty) {
			label += " " + styles.IconDot
		}
		if i == group.CurrentIndex() {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.InactiveTab.Render(label))
		}
		if focused != nil && title.Owner() == focused {
			panel = m.theme.PanelFocused
		}
	}

	body := ""
	if current := group.CurrentTitle(); current != nil {
		body = widgetBody(current.Owner())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)),
		m.theme.Normal.Render(body),
	)
	return panel.Render(content)
}

func widgetBody(w layout.Widget) string {
	editor, ok := w.(*component.Editor)
	if !ok {
		return fmt.Sprintf("(%s)", w.Title().Label())
	}
	lines := strings.Split(strings.TrimRight(editor.Content(), "\n"), "\n")
	if len(lines) > maxEditorLines {
		lines = append(lines[:maxEditorLines], "...")
	}
	return strings.Join(lines, "\n")
}

func (m DemoModel) renderStatusBar() string {
	bar := m.wb.Shell.StatusBar()

	render := func(entries []statusbar.Entry) string {
		texts := make([]string, 0, len(entries))
		for _, e := range entries {
			texts = append(texts, e.Text)
		}
		return strings.Join(texts, " | ")
	}

	left := render(bar.Entries(statusbar.AlignLeft))
	right := render(bar.Entries(statusbar.AlignRight))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)

	return m.theme.StatusBar.Render(" " + left + strings.Repeat(" ", gap) + right + " ")
}
