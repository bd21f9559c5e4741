package freshbooks

import (
	"context"
	"fmt"
)

// Lister is anything that can fetch a page of T for an account.
type Lister[T any] interface {
	List(ctx context.Context, accountID string, builders ...QueryBuilder) (*ListResult[T], error)
}

// DefaultIteratorPerPage is the page size used when no PaginateBuilder is given.
const DefaultIteratorPerPage = MaxPerPage

// PaginationIterator walks every page of a list, one request at a time.
type PaginationIterator[T any] struct {
	ctx       context.Context
	lister    Lister[T]
	accountID string
	builders  []QueryBuilder
	perPage   int

	page  int
	items []T
	index int
	done  bool
	err   error
}

// NewPaginationIterator creates an iterator. A PaginateBuilder among builders
// sets the page size; its page number is ignored.
func NewPaginationIterator[T any](ctx context.Context, lister Lister[T], accountID string, builders ...QueryBuilder) *PaginationIterator[T] {
	iterator := &PaginationIterator[T]{
		ctx:       ctx,
		lister:    lister,
		accountID: accountID,
		perPage:   DefaultIteratorPerPage,
	}

	for _, builder := range builders {
		if paginate, ok := builder.(*PaginateBuilder); ok {
			if paginate != nil && paginate.PerPage > 0 {
				iterator.perPage = paginate.PerPage
			}

			continue
		}

		iterator.builders = append(iterator.builders, builder)
	}

	return iterator
}

// HasNext reports whether Next will return an item or an error.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.index < len(it.items) || it.err != nil {
		return true
	}

	if it.done {
		return false
	}

	it.fetchNextPage()

	return it.index < len(it.items) || it.err != nil
}

// Next returns the next item. Once a page fails the error is returned and
// iteration stops.
func (it *PaginationIterator[T]) Next() (*T, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return nil, err
	}

	item := &it.items[it.index]
	it.index++

	return item, nil
}

// All collects the remaining items.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, *item)
	}

	return all, nil
}

// ForEach calls fn for every remaining item, stopping at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(*item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *PaginationIterator[T]) fetchNextPage() {
	it.page++

	builders := append([]QueryBuilder{NewPaginateBuilder(it.page, it.perPage)}, it.builders...)

	result, err := it.lister.List(it.ctx, it.accountID, builders...)
	if err != nil {
		it.err = fmt.Errorf("fetching page %d: %w", it.page, err)

		return
	}

	it.items = result.Items
	it.index = 0

	if len(result.Items) == 0 || result.Meta.Pages == 0 || it.page >= result.Meta.Pages {
		it.done = true
	}
}
