// Package statusbar implements the status region at the bottom of the shell.
package statusbar

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// Alignment places an entry on the left or right end of the bar.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Entry is a single status bar element. Higher priority entries are shown
// closer to the bar's outer edge.
type Entry struct {
	ID        string
	Text      string
	Tooltip   string
	Alignment Alignment
	Priority  int
}

// state is the persisted part of the bar.
type state struct {
	Hidden bool `json:"hidden"`
}

// Bar holds status entries ordered by priority per alignment.
type Bar struct {
	entries map[string]Entry
	hidden  bool
}

// New creates an empty, visible status bar.
func New() *Bar {
	return &Bar{entries: make(map[string]Entry)}
}

// SetElement adds or replaces the entry with entry.ID.
func (b *Bar) SetElement(entry Entry) {
	if entry.ID == "" {
		return
	}
	b.entries[entry.ID] = entry
}

// RemoveElement deletes the entry with id.
func (b *Bar) RemoveElement(id string) {
	delete(b.entries, id)
}

// Entries returns the entries for alignment, highest priority first; equal
// priorities keep id order.
func (b *Bar) Entries(alignment Alignment) []Entry {
	var ranked entity.RankedCollection[Entry]
	for _, id := range b.sortedIDs() {
		entry := b.entries[id]
		if entry.Alignment != alignment {
			continue
		}
		ranked.Insert(entry, -entry.Priority)
	}
	return ranked.Values()
}

// Len returns the number of entries.
func (b *Bar) Len() int {
	return len(b.entries)
}

func (b *Bar) Show() { b.hidden = false }

func (b *Bar) Hide() { b.hidden = true }

func (b *Bar) IsVisible() bool { return !b.hidden }

// LayoutData serializes the persisted state of the bar.
func (b *Bar) LayoutData() json.RawMessage {
	raw, err := json.Marshal(state{Hidden: b.hidden})
	if err != nil {
		return nil
	}
	return raw
}

// SetLayoutData restores state written by LayoutData. Empty input is
// ignored; malformed input is reported and ignored.
func (b *Bar) SetLayoutData(ctx context.Context, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var s state
	if err := json.Unmarshal(raw, &s); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("ignoring malformed status bar layout")
		return fmt.Errorf("decode status bar layout: %w", err)
	}
	b.hidden = s.Hidden
	return nil
}

func (b *Bar) sortedIDs() []string {
	ids := make([]string, 0, len(b.entries))
	for id := range b.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
