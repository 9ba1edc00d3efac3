package layout

import (
	"slices"

	"github.com/bnema/workbench/internal/ui/signal"
)

// RemoveBehavior decides what becomes current when the current tab is removed.
type RemoveBehavior int

const (
	// SelectNone leaves the strip without a current tab.
	SelectNone RemoveBehavior = iota
	// SelectAdjacent selects the tab that took the removed tab's place, or the
	// new last tab when the removed one was last.
	SelectAdjacent
)

// TabStripOptions configures a TabStrip.
type TabStripOptions struct {
	RemoveBehavior RemoveBehavior
	// SelectOnInsert makes every inserted tab current.
	SelectOnInsert bool
}

// CurrentChange describes a change of the current tab.
type CurrentChange struct {
	PreviousIndex int
	PreviousTitle *Title
	CurrentIndex  int
	CurrentTitle  *Title
}

// TabStrip is an ordered list of titles with at most one current title.
// The current index is -1 when nothing is selected.
type TabStrip struct {
	opts         TabStripOptions
	titles       []*Title
	currentIndex int
	visible      bool

	currentChanged signal.Signal[CurrentChange]
}

// NewTabStrip creates an empty, visible tab strip.
func NewTabStrip(opts TabStripOptions) *TabStrip {
	return &TabStrip{opts: opts, currentIndex: -1, visible: true}
}

// Titles returns a snapshot of the titles in display order.
func (s *TabStrip) Titles() []*Title {
	return slices.Clone(s.titles)
}

// Len returns the number of tabs.
func (s *TabStrip) Len() int {
	return len(s.titles)
}

// IndexOf returns the index of title, or -1.
func (s *TabStrip) IndexOf(title *Title) int {
	return slices.Index(s.titles, title)
}

// CurrentIndex returns the index of the current tab, or -1.
func (s *TabStrip) CurrentIndex() int {
	return s.currentIndex
}

// CurrentTitle returns the current title, or nil.
func (s *TabStrip) CurrentTitle() *Title {
	if s.currentIndex < 0 || s.currentIndex >= len(s.titles) {
		return nil
	}
	return s.titles[s.currentIndex]
}

// SetCurrentIndex selects the tab at index. An out of range index clears
// the selection.
func (s *TabStrip) SetCurrentIndex(index int) {
	if index < 0 || index >= len(s.titles) {
		index = -1
	}
	if index == s.currentIndex {
		return
	}
	prevIndex := s.currentIndex
	prevTitle := s.CurrentTitle()
	s.currentIndex = index
	s.currentChanged.Emit(CurrentChange{
		PreviousIndex: prevIndex,
		PreviousTitle: prevTitle,
		CurrentIndex:  index,
		CurrentTitle:  s.CurrentTitle(),
	})
}

// SetCurrentTitle selects title; nil or an unknown title clears the selection.
func (s *TabStrip) SetCurrentTitle(title *Title) {
	s.SetCurrentIndex(s.IndexOf(title))
}

// InsertTab inserts title at index (clamped). If the title is already in the
// strip it is moved. Returns the final index.
func (s *TabStrip) InsertTab(index int, title *Title) int {
	if existing := s.IndexOf(title); existing >= 0 {
		s.RemoveTab(title)
	}
	index = max(0, min(index, len(s.titles)))
	s.titles = slices.Insert(s.titles, index, title)

	if s.currentIndex >= index {
		s.currentIndex++
	}
	if s.opts.SelectOnInsert {
		s.SetCurrentIndex(index)
	}
	return index
}

// AddTab appends title.
func (s *TabStrip) AddTab(title *Title) int {
	return s.InsertTab(len(s.titles), title)
}

// RemoveTab removes title. Returns false if it is not in the strip.
func (s *TabStrip) RemoveTab(title *Title) bool {
	index := s.IndexOf(title)
	if index < 0 {
		return false
	}
	s.titles = slices.Delete(s.titles, index, index+1)

	switch {
	case index < s.currentIndex:
		s.currentIndex--
	case index == s.currentIndex:
		next := -1
		if s.opts.RemoveBehavior == SelectAdjacent && len(s.titles) > 0 {
			next = min(index, len(s.titles)-1)
		}
		s.currentIndex = next
		s.currentChanged.Emit(CurrentChange{
			PreviousIndex: index,
			PreviousTitle: title,
			CurrentIndex:  next,
			CurrentTitle:  s.CurrentTitle(),
		})
	}
	return true
}

// OnCurrentChanged registers a callback for current tab changes.
func (s *TabStrip) OnCurrentChanged(callback func(CurrentChange)) func() {
	return s.currentChanged.Connect(callback)
}

func (s *TabStrip) Show() { s.visible = true }

func (s *TabStrip) Hide() { s.visible = false }

func (s *TabStrip) IsVisible() bool { return s.visible }
