package prompt

// Page is one visible window of a paginated list.
type Page[T any] struct {
	// First reports whether the window starts at the list head.
	First bool
	// Last reports whether the window ends at the list tail.
	Last bool
	// Items holds the visible slice of the list.
	Items []T
	// Cursor is the cursor position within Items.
	Cursor int
	// Offset is the index of Items[0] in the full list.
	Offset int
	// Total is the full list length.
	Total int
}

// Paginate computes the window of size entries that contains current,
// keeping the cursor centered where the list allows and clamped to the list
// bounds at either end. A size of zero or less disables pagination and
// returns the whole list.
func Paginate[T any](size int, items []T, current int) Page[T] {
	var begin, end, cursor int
	switch {
	case size <= 0 || len(items) <= size:
		begin, end, cursor = 0, len(items), current
	case current < size/2:
		begin, end, cursor = 0, size, current
	case len(items)-current-1 < size/2:
		begin = len(items) - size
		end = len(items)
		cursor = current - begin
	default:
		begin = current - size/2
		end = current + (size - size/2)
		cursor = size / 2
	}

	return Page[T]{
		First:  begin == 0,
		Last:   end == len(items),
		Items:  items[begin:end],
		Cursor: cursor,
		Offset: begin,
		Total:  len(items),
	}
}
