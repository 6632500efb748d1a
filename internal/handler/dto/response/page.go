package response

import "barangay-reservation/internal/usecase/queries"

type PageResponse[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

func NewPage[T any](items []T, next *queries.Cursor) *PageResponse[T] {
	p := &PageResponse[T]{Items: items}
	if next != nil && next.After != "" {
		after := next.After
		p.NextCursor = &after
	}
	return p
}
