package fetch_tags_gateway

import (
	"context"
	"errors"

	"genonaut/domain"
	"genonaut/driver/content_db"
	apperrors "genonaut/utils/errors"
	"genonaut/utils/logger"
)

type FetchTagsGateway struct {
	contentDB *content_db.ContentDBRepository
}

func NewFetchTagsGateway(repo *content_db.ContentDBRepository) *FetchTagsGateway {
	return &FetchTagsGateway{contentDB: repo}
}

func (g *FetchTagsGateway) FetchTags(ctx context.Context, limit int) ([]domain.Tag, error) {
	if g.contentDB == nil {
		return nil, apperrors.NewDatabaseContextError("database connection not available",
			"gateway", "FetchTagsGateway", "FetchTags", errors.New("nil repository"), nil)
	}

	tags, err := g.contentDB.FetchTags(ctx, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error fetching tags", "error", err)
		return nil, apperrors.FromDomainError(err, "gateway", "FetchTagsGateway", "FetchTags")
	}
	return tags, nil
}
