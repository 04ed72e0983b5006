// Package pagination implements cursor-based pagination over an already
// ordered in-memory sequence. It never sorts; callers establish the
// canonical order before paginating.
package pagination

// Cursored is any item that exposes an opaque position token. Cursors
// must be unique within a sequence for HasMore to be meaningful.
type Cursored interface {
	CursorValue() string
}

// Page is one slice of the full sequence.
type Page[T Cursored] struct {
	Items   []T
	Cursor  string
	HasMore bool
}

// Paginate returns up to pageSize consecutive items starting immediately
// after the item whose cursor equals after. An empty after, or one that
// matches no item, starts the page at the beginning of the sequence.
// pageSize must be >= 1; the caller enforces that.
func Paginate[T Cursored](items []T, after string, pageSize int) Page[T] {
	start := 0
	if after != "" {
		for i, item := range items {
			if item.CursorValue() == after {
				start = i + 1
				break
			}
		}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	page := Page[T]{Items: items[start:end]}
	if len(page.Items) == 0 {
		return page
	}

	page.Cursor = page.Items[len(page.Items)-1].CursorValue()
	page.HasMore = page.Cursor != items[len(items)-1].CursorValue()
	return page
}
