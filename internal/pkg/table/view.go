// Package table holds an in-memory, paginated, filterable view over a
// collection fetched in one query.
package table

import (
	"context"
	"sync"
)

// DefaultPageSize and PageSizes are the page-size choices a view accepts.
const DefaultPageSize = 5

var PageSizes = []int{5, 8, 10, 25, 100}

// ValidPageSize reports whether p is one of PageSizes.
func ValidPageSize(p int) bool {
	for _, s := range PageSizes {
		if s == p {
			return true
		}
	}
	return false
}

// Source is what a view reads from and deletes through.
type Source[T any] struct {
	// Load fetches every row matching the view's discriminant.
	Load func(ctx context.Context) ([]T, error)
	// Remove deletes one row by id.
	Remove func(ctx context.Context, id string) error
	// Key is the display field used for filtering.
	Key func(T) string
}

// View is the table state of one screen. Methods are safe for concurrent
// use; each runs to completion before the next starts.
type View[T any] struct {
	src Source[T]

	mu       sync.Mutex
	rows     []T
	filter   string
	page     int
	pageSize int
}

// NewView creates an empty view. Call Refresh to load it.
func NewView[T any](src Source[T]) *View[T] {
	return &View[T]{src: src, pageSize: DefaultPageSize}
}

func (v *View[T]) refreshLocked(ctx context.Context) error {
	rows, err := v.src.Load(ctx)
	if err != nil {
		return err
	}
	v.rows = rows
	v.filter = ""
	v.page = 0
	return nil
}

// Refresh re-issues the fetch, replacing rows and dropping any filter.
func (v *View[T]) Refresh(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.refreshLocked(ctx)
}

// Filter narrows the loaded rows to those whose display field equals
// value, keeping their relative order. An empty value re-issues the fetch
// instead of restoring a cached copy. Either way the page resets to 0.
func (v *View[T]) Filter(ctx context.Context, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if value == "" {
		return v.refreshLocked(ctx)
	}

	kept := make([]T, 0, len(v.rows))
	for _, r := range v.rows {
		if v.src.Key(r) == value {
			kept = append(kept, r)
		}
	}
	v.rows = kept
	v.filter = value
	v.page = 0
	return nil
}

// Options returns the distinct display values of the loaded rows in order
// of first appearance.
func (v *View[T]) Options() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range v.rows {
		k := v.src.Key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// SetPage selects the zero-based page. Negative values select page 0.
func (v *View[T]) SetPage(k int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if k < 0 {
		k = 0
	}
	v.page = k
}

// SetPageSize changes the page size and resets to page 0. Sizes outside
// PageSizes are ignored.
func (v *View[T]) SetPageSize(p int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !ValidPageSize(p) {
		return
	}
	v.pageSize = p
	v.page = 0
}

// Visible returns rows[k*P : min((k+1)*P, N)] for the current page k and
// page size P. Pages past the end are empty.
func (v *View[T]) Visible() []T {
	v.mu.Lock()
	defer v.mu.Unlock()

	n := len(v.rows)
	// compare page numbers first; k*P overflows for huge k
	if v.page >= (n+v.pageSize-1)/v.pageSize {
		return []T{}
	}
	start := v.page * v.pageSize
	end := start + v.pageSize
	if end > n {
		end = n
	}
	out := make([]T, end-start)
	copy(out, v.rows[start:end])
	return out
}

// Delete removes one row after confirmation. When confirmed is false the
// call is a no-op and reports false. Otherwise the row is deleted through
// the source and the full list is fetched again, discarding any filter.
func (v *View[T]) Delete(ctx context.Context, id string, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.src.Remove(ctx, id); err != nil {
		return false, err
	}
	if err := v.refreshLocked(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// State is a snapshot of a view for rendering.
type State[T any] struct {
	Rows       []T
	Options    []string
	Filter     string
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Snapshot returns the visible page together with its paging metadata.
func (v *View[T]) Snapshot() State[T] {
	visible := v.Visible()
	options := v.Options()

	v.mu.Lock()
	defer v.mu.Unlock()

	total := len(v.rows)
	pages := (total + v.pageSize - 1) / v.pageSize
	return State[T]{
		Rows:       visible,
		Options:    options,
		Filter:     v.filter,
		Page:       v.page,
		PageSize:   v.pageSize,
		TotalItems: total,
		TotalPages: pages,
	}
}

// Len returns the number of loaded rows.
func (v *View[T]) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.rows)
}
