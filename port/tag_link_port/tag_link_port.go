package tag_link_port

//go:generate go run go.uber.org/mock/mockgen -source=tag_link_port.go -destination=../../mocks/mock_tag_link_port.go -package=mocks TagLinkPort

import (
	"context"

	"genonaut/domain"

	"github.com/google/uuid"
)

type TagLinkPort interface {
	LinkContentTags(ctx context.Context, contentID int64, source domain.SourceType, tagIDs []uuid.UUID) error
	UnlinkContentTags(ctx context.Context, contentID int64, source domain.SourceType, tagIDs []uuid.UUID) error
	ReprojectContentTags(ctx context.Context, contentID int64, source domain.SourceType) error
	ReprojectSource(ctx context.Context, source domain.SourceType) (int64, error)
}
