package fetch_tags_usecase

import (
	"context"
	"fmt"

	"genonaut/domain"
	"genonaut/port/fetch_tags_port"
	apperrors "genonaut/utils/errors"
	"genonaut/utils/logger"
)

const (
	DefaultTagLimit = 100
	MaxTagLimit     = 1000
)

type FetchTagsUsecase struct {
	port fetch_tags_port.FetchTagsPort
}

func NewFetchTagsUsecase(port fetch_tags_port.FetchTagsPort) *FetchTagsUsecase {
	return &FetchTagsUsecase{port: port}
}

// Execute lists tags by name. A zero limit means DefaultTagLimit.
func (u *FetchTagsUsecase) Execute(ctx context.Context, limit int) ([]domain.Tag, error) {
	if limit == 0 {
		limit = DefaultTagLimit
	}
	if limit < 1 || limit > MaxTagLimit {
		return nil, apperrors.NewUnprocessableContextError(
			fmt.Sprintf("limit must be between 1 and %d", MaxTagLimit),
			"usecase", "FetchTagsUsecase", "Execute", nil, map[string]interface{}{"limit": limit})
	}

	tags, err := u.port.FetchTags(ctx, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch tags", "error", err)
		return nil, apperrors.FromDomainError(err, "usecase", "FetchTagsUsecase", "Execute")
	}
	return tags, nil
}
