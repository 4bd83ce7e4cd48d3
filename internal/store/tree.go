package store

import "github.com/alexanderramin/trackflow/internal/domain"

// locate returns the index path to the first sub-column with the given id
// in depth-first pre-order.
func locate(subs []domain.SubColumn, id string) ([]int, bool) {
	for i := range subs {
		if subs[i].ID == id {
			return []int{i}, true
		}
		if rest, ok := locate(subs[i].SubColumns, id); ok {
			return append([]int{i}, rest...), true
		}
	}
	return nil, false
}

// insertAlong returns a copy of subs with child appended to the children
// of the node at path. Only the sibling slices on the path are copied.
func insertAlong(subs []domain.SubColumn, path []int, child domain.SubColumn) []domain.SubColumn {
	next := cloneSlice(subs)
	i := path[0]
	if len(path) == 1 {
		next[i].SubColumns = appendCopy(subs[i].SubColumns, child)
		return next
	}
	next[i].SubColumns = insertAlong(subs[i].SubColumns, path[1:], child)
	return next
}

// cloneSlice copies s into a slice with no spare capacity, so appends to
// the result never touch an array shared with an older snapshot.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}
