package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/domain/entity"
)

// LayoutRenderer renders stored layouts for CLI output.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new layout renderer.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderList renders a list of stored layouts.
func (r *LayoutRenderer) RenderList(infos []entity.LayoutInfo, now time.Time) string {
	if len(infos) == 0 {
		return r.theme.Subtle.Render("No saved layouts")
	}

	var b strings.Builder
	b.WriteString(r.theme.Title.Render(fmt.Sprintf("%s Layouts (%d)", IconLayout, len(infos))))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, info := range infos {
		nameWidth = max(nameWidth, lipgloss.Width(info.Name))
	}

	for _, info := range infos {
		name := r.theme.Highlight.Width(nameWidth).Render(info.Name)
		count := r.theme.BadgeMuted.Render(fmt.Sprintf("%d widgets", info.WidgetCount))
		updated := r.theme.Subtle.Render(relativeTime(info.UpdatedAt, now))
		version := ""
		if info.Version != entity.LayoutDataVersion {
			version = " " + r.theme.WarningStyle.Render(fmt.Sprintf("v%d", info.Version))
		}
		fmt.Fprintf(&b, "  %s  %s  %s%s\n", name, count, updated, version)
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderLayout renders one layout as an indented tree.
func (r *LayoutRenderer) RenderLayout(name string, data *entity.LayoutData) string {
	var b strings.Builder
	b.WriteString(r.theme.Title.Render(fmt.Sprintf("%s %s", IconLayout, name)))
	b.WriteString(" ")
	b.WriteString(r.theme.BadgeMuted.Render(fmt.Sprintf("v%d", data.Version)))
	b.WriteString("\n")

	r.renderSideBar(&b, "left", data.LeftBar)

	b.WriteString(r.theme.Subtitle.Render("main"))
	b.WriteString("\n")
	if data.MainArea == nil || data.MainArea.Main == nil {
		b.WriteString("  " + r.theme.Subtle.Render("(empty)") + "\n")
	} else {
		active := make(map[entity.WidgetID]bool, len(data.MainArea.ActiveWidgets))
		for _, id := range data.MainArea.ActiveWidgets {
			active[id] = true
		}
		r.renderNode(&b, data.MainArea.Main, 1, active)
	}

	r.renderSideBar(&b, "right", data.RightBar)

	if len(data.StatusBar) > 0 {
		b.WriteString(r.theme.Subtitle.Render("status bar"))
		b.WriteString("\n  ")
		b.WriteString(r.theme.Subtle.Render(string(data.StatusBar)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *LayoutRenderer) renderSideBar(b *strings.Builder, side string, bar *entity.SideBarData) {
	if bar == nil || len(bar.Widgets) == 0 {
		return
	}
	b.WriteString(r.theme.Subtitle.Render(side))
	b.WriteString("\n")

	active := make(map[entity.WidgetID]bool, len(bar.ActiveWidgets))
	for _, id := range bar.ActiveWidgets {
		active[id] = true
	}
	for _, id := range bar.Widgets {
		r.renderWidget(b, id, 1, active[id])
	}
}

func (r *LayoutRenderer) renderNode(b *strings.Builder, node *entity.DockNode, depth int, active map[entity.WidgetID]bool) {
	if node == nil {
		return
	}
	indent := strings.Repeat("  ", depth)

	switch node.Kind {
	case entity.DockNodeTabArea:
		b.WriteString(indent + r.theme.Normal.Render(IconTab+" tabs") + "\n")
		for i, id := range node.Widgets {
			r.renderWidget(b, id, depth+1, active[id] || i == node.CurrentIndex && len(active) == 0)
		}
	case entity.DockNodeSplitArea:
		label := fmt.Sprintf("split %s", node.Orientation)
		if len(node.Sizes) == len(node.Children) && len(node.Sizes) > 0 {
			parts := make([]string, len(node.Sizes))
			for i, size := range node.Sizes {
				parts[i] = fmt.Sprintf("%.0f%%", size*100)
			}
			label += " " + r.theme.Subtle.Render("["+strings.Join(parts, " ")+"]")
		}
		b.WriteString(indent + r.theme.Normal.Render(label) + "\n")
		for _, child := range node.Children {
			r.renderNode(b, child, depth+1, active)
		}
	default:
		b.WriteString(indent + r.theme.WarningStyle.Render(fmt.Sprintf("%s unknown node %q", IconWarning, node.Kind)) + "\n")
	}
}

func (r *LayoutRenderer) renderWidget(b *strings.Builder, id entity.WidgetID, depth int, active bool) {
	marker := r.theme.Subtle.Render(IconCircle)
	text := r.theme.Normal.Render(string(id))
	if active {
		marker = r.theme.Highlight.Render(IconDot)
		text = r.theme.Highlight.Render(string(id))
	}
	b.WriteString(strings.Repeat("  ", depth) + marker + " " + text + "\n")
}

// RenderDeleted renders a layout deletion confirmation.
func (r *LayoutRenderer) RenderDeleted(name string) string {
	return r.theme.SuccessStyle.Render(fmt.Sprintf("%s Deleted layout %q", IconTrash, name))
}

// RenderImported renders a layout import confirmation.
func (r *LayoutRenderer) RenderImported(name string, widgets int) string {
	return r.theme.SuccessStyle.Render(fmt.Sprintf("%s Imported layout %q (%d widgets)", IconCheck, name, widgets))
}

// RenderSaved renders a layout save confirmation.
func (r *LayoutRenderer) RenderSaved(name string) string {
	return r.theme.SuccessStyle.Render(fmt.Sprintf("%s Saved layout %q", IconCheck, name))
}

// RenderError renders an error message.
func (r *LayoutRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render(fmt.Sprintf("%s %v", IconX, err))
}

func relativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
