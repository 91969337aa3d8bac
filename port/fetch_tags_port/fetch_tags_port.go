package fetch_tags_port

//go:generate go run go.uber.org/mock/mockgen -source=fetch_tags_port.go -destination=../../mocks/mock_fetch_tags_port.go -package=mocks FetchTagsPort

import (
	"context"

	"genonaut/domain"
)

type FetchTagsPort interface {
	FetchTags(ctx context.Context, limit int) ([]domain.Tag, error)
}
