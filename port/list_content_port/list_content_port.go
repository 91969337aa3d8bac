package list_content_port

//go:generate go run go.uber.org/mock/mockgen -source=list_content_port.go -destination=../../mocks/mock_list_content_port.go -package=mocks ListContentPort

import (
	"context"

	"genonaut/domain"
)

// ListContentPort reads one page of the unified content view.
// Implementations return at most PageSize+1 rows so callers can detect a following page.
type ListContentPort interface {
	ListContent(ctx context.Context, query domain.ContentQuery) (*domain.ContentSlice, error)
}
