package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	cursor string
}

func (i item) CursorValue() string { return i.cursor }

func makeItems(n int) []item {
	items := make([]item, n)
	for i := range items {
		items[i] = item{cursor: fmt.Sprintf("c%03d", i)}
	}
	return items
}

func TestPaginateFirstPage(t *testing.T) {
	items := makeItems(50)

	page := Paginate(items, "", 20)

	assert.Len(t, page.Items, 20)
	assert.Equal(t, items[:20], page.Items)
	assert.Equal(t, "c019", page.Cursor)
	assert.True(t, page.HasMore)
}

func TestPaginatePageLargerThanSequence(t *testing.T) {
	items := makeItems(5)

	page := Paginate(items, "", 20)

	assert.Len(t, page.Items, 5)
	assert.Equal(t, "c004", page.Cursor)
	assert.False(t, page.HasMore)
}

func TestPaginateEmptySequence(t *testing.T) {
	page := Paginate([]item{}, "", 20)

	assert.Empty(t, page.Items)
	assert.Empty(t, page.Cursor)
	assert.False(t, page.HasMore)
}

func TestPaginateUnknownCursorFallsBackToStart(t *testing.T) {
	items := makeItems(10)

	page := Paginate(items, "not-a-cursor", 3)

	require.Len(t, page.Items, 3)
	assert.Equal(t, items[0], page.Items[0])
	assert.True(t, page.HasMore)
}

func TestPaginateAfterLastItem(t *testing.T) {
	items := makeItems(10)

	page := Paginate(items, "c009", 3)

	assert.Empty(t, page.Items)
	assert.Empty(t, page.Cursor)
	assert.False(t, page.HasMore)
}

// Walking the full sequence page by page must visit every item exactly
// once, in order, and terminate when HasMore goes false.
func TestPaginateFullTraversal(t *testing.T) {
	items := makeItems(47)

	var collected []item
	after := ""
	for {
		page := Paginate(items, after, 10)
		collected = append(collected, page.Items...)
		if !page.HasMore {
			break
		}
		after = page.Cursor
	}

	assert.Equal(t, items, collected)
}

func TestPaginateExactMultipleTraversal(t *testing.T) {
	items := makeItems(30)

	var pages int
	after := ""
	var collected []item
	for {
		page := Paginate(items, after, 10)
		pages++
		collected = append(collected, page.Items...)
		if !page.HasMore {
			break
		}
		after = page.Cursor
	}

	assert.Equal(t, 3, pages)
	assert.Equal(t, items, collected)
}
