package services

import (
	"context"

	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/table"
)

// TableQuery selects the filter and the page of a record table
type TableQuery struct {
	Filter string
	Page   int
	Size   int
}

// recordTable builds a fresh view per call so no row state is shared
// between requests.
type recordTable[T any] struct {
	source table.Source[T]
}

func (t recordTable[T]) view(ctx context.Context) (*table.View[T], error) {
	v := table.NewView(t.source)
	if err := v.Refresh(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

func (t recordTable[T]) list(ctx context.Context, q TableQuery) (table.State[T], error) {
	v, err := t.view(ctx)
	if err != nil {
		return table.State[T]{}, err
	}
	if q.Filter != "" {
		if err := v.Filter(ctx, q.Filter); err != nil {
			return table.State[T]{}, err
		}
	}
	if q.Size > 0 {
		v.SetPageSize(q.Size)
	}
	v.SetPage(q.Page)
	return v.Snapshot(), nil
}

// remove deletes id once confirm is true. A nil confirm asks the caller to
// confirm first; false cancels without touching the store. After a delete
// the returned state is the full re-fetched table on its first page.
func (t recordTable[T]) remove(ctx context.Context, id string, confirm *bool) (bool, table.State[T], error) {
	if confirm == nil {
		return false, table.State[T]{}, apperrors.ErrConfirmationRequired
	}

	v := table.NewView(t.source)
	deleted, err := v.Delete(ctx, id, *confirm)
	if err != nil || !deleted {
		return deleted, table.State[T]{}, err
	}
	return true, v.Snapshot(), nil
}
