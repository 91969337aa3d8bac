package list_content_gateway

import (
	"context"
	"errors"

	"genonaut/domain"
	"genonaut/driver/content_db"
	apperrors "genonaut/utils/errors"
	"genonaut/utils/logger"
)

// ListContentGateway implements list_content_port.ListContentPort on top of the content database.
type ListContentGateway struct {
	contentDB *content_db.ContentDBRepository
}

func NewListContentGateway(repo *content_db.ContentDBRepository) *ListContentGateway {
	return &ListContentGateway{contentDB: repo}
}

func (g *ListContentGateway) ListContent(ctx context.Context, query domain.ContentQuery) (*domain.ContentSlice, error) {
	if g.contentDB == nil {
		return nil, apperrors.NewDatabaseContextError("database connection not available",
			"gateway", "ListContentGateway", "ListContent", errors.New("nil repository"), nil)
	}

	slice, err := g.contentDB.ListContent(ctx, query)
	if err != nil {
		appErr := apperrors.FromDomainError(err, "gateway", "ListContentGateway", "ListContent")
		if !appErr.IsClientError() {
			logger.Logger.ErrorContext(ctx, "Error listing content", "error", err, "code", appErr.Code)
		}
		return nil, appErr
	}

	return slice, nil
}
