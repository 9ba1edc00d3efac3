package entity

import (
	"slices"
	"sort"
)

// DefaultRank is the rank used when the caller does not supply one.
const DefaultRank = 100

// RankItem pairs a value with its sort key. Lower ranks sort first.
type RankItem[T any] struct {
	Value T
	Rank  int
}

// RankedCollection keeps items sorted by rank. Items with equal rank keep
// their insertion order: a new item goes after every existing item of the
// same rank.
type RankedCollection[T any] struct {
	items []RankItem[T]
}

// Insert adds value at the upper bound of rank and returns its index.
func (c *RankedCollection[T]) Insert(value T, rank int) int {
	index := sort.Search(len(c.items), func(i int) bool {
		return c.items[i].Rank > rank
	})
	c.items = slices.Insert(c.items, index, RankItem[T]{Value: value, Rank: rank})
	return index
}

// RemoveAt deletes the item at index. Returns false if index is out of range.
func (c *RankedCollection[T]) RemoveAt(index int) (RankItem[T], bool) {
	if index < 0 || index >= len(c.items) {
		var zero RankItem[T]
		return zero, false
	}
	item := c.items[index]
	c.items = slices.Delete(c.items, index, index+1)
	return item, true
}

// IndexFunc returns the index of the first item whose value satisfies fn, or -1.
func (c *RankedCollection[T]) IndexFunc(fn func(T) bool) int {
	return slices.IndexFunc(c.items, func(item RankItem[T]) bool {
		return fn(item.Value)
	})
}

// At returns the item at index. It panics if index is out of range.
func (c *RankedCollection[T]) At(index int) RankItem[T] {
	return c.items[index]
}

// Len returns the number of items.
func (c *RankedCollection[T]) Len() int {
	return len(c.items)
}

// Items returns a copy of the items in rank order.
func (c *RankedCollection[T]) Items() []RankItem[T] {
	return slices.Clone(c.items)
}

// Values returns the values in rank order.
func (c *RankedCollection[T]) Values() []T {
	values := make([]T, 0, len(c.items))
	for _, item := range c.items {
		values = append(values, item.Value)
	}
	return values
}

// Ranks returns the ranks in order.
func (c *RankedCollection[T]) Ranks() []int {
	ranks := make([]int, 0, len(c.items))
	for _, item := range c.items {
		ranks = append(ranks, item.Rank)
	}
	return ranks
}
