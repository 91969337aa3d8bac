package tag_link_gateway

import (
	"context"
	"errors"

	"genonaut/domain"
	"genonaut/driver/content_db"
	apperrors "genonaut/utils/errors"
	"genonaut/utils/logger"

	"github.com/google/uuid"
)

// TagLinkGateway implements tag_link_port.TagLinkPort.
type TagLinkGateway struct {
	contentDB *content_db.ContentDBRepository
}

func NewTagLinkGateway(repo *content_db.ContentDBRepository) *TagLinkGateway {
	return &TagLinkGateway{contentDB: repo}
}

func (g *TagLinkGateway) LinkContentTags(ctx context.Context, contentID int64, source domain.SourceType, tagIDs []uuid.UUID) error {
	if g.contentDB == nil {
		return unavailable("LinkContentTags")
	}
	return g.wrap(ctx, "LinkContentTags", g.contentDB.LinkContentTags(ctx, contentID, source, tagIDs))
}

func (g *TagLinkGateway) UnlinkContentTags(ctx context.Context, contentID int64, source domain.SourceType, tagIDs []uuid.UUID) error {
	if g.contentDB == nil {
		return unavailable("UnlinkContentTags")
	}
	return g.wrap(ctx, "UnlinkContentTags", g.contentDB.UnlinkContentTags(ctx, contentID, source, tagIDs))
}

func (g *TagLinkGateway) ReprojectContentTags(ctx context.Context, contentID int64, source domain.SourceType) error {
	if g.contentDB == nil {
		return unavailable("ReprojectContentTags")
	}
	return g.wrap(ctx, "ReprojectContentTags", g.contentDB.ReprojectContentTags(ctx, contentID, source))
}

func (g *TagLinkGateway) ReprojectSource(ctx context.Context, source domain.SourceType) (int64, error) {
	if g.contentDB == nil {
		return 0, unavailable("ReprojectSource")
	}
	updated, err := g.contentDB.ReprojectSource(ctx, source)
	if err != nil {
		return 0, g.wrap(ctx, "ReprojectSource", err)
	}
	return updated, nil
}

func (g *TagLinkGateway) wrap(ctx context.Context, operation string, err error) error {
	if err == nil {
		return nil
	}
	appErr := apperrors.FromDomainError(err, "gateway", "TagLinkGateway", operation)
	if !appErr.IsClientError() {
		logger.Logger.ErrorContext(ctx, "Error updating content tags", "operation", operation, "error", err)
	}
	return appErr
}

func unavailable(operation string) error {
	return apperrors.NewDatabaseContextError("database connection not available",
		"gateway", "TagLinkGateway", operation, errors.New("nil repository"), nil)
}
