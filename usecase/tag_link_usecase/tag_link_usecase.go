package tag_link_usecase

import (
	"context"
	"fmt"

	"genonaut/domain"
	"genonaut/port/tag_link_port"
	"genonaut/utils/constants"
	apperrors "genonaut/utils/errors"
	"genonaut/utils/logger"

	"github.com/google/uuid"
)

// TagLinkInput identifies one record and the tags to attach or detach.
type TagLinkInput struct {
	ContentID int64
	Source    string
	TagIDs    []uuid.UUID
}

// TagLinkUsecase keeps the junction table and the denormalized tag_ids projection in step.
type TagLinkUsecase struct {
	port tag_link_port.TagLinkPort
}

func NewTagLinkUsecase(port tag_link_port.TagLinkPort) *TagLinkUsecase {
	return &TagLinkUsecase{port: port}
}

func (u *TagLinkUsecase) Link(ctx context.Context, input TagLinkInput) error {
	src, tagIDs, err := validate(input)
	if err != nil {
		return err
	}

	logger.Logger.InfoContext(ctx, "linking content tags", "content_id", input.ContentID, "source", src, "count", len(tagIDs))
	if err := u.port.LinkContentTags(ctx, input.ContentID, src, tagIDs); err != nil {
		return apperrors.FromDomainError(err, "usecase", "TagLinkUsecase", "Link")
	}
	return nil
}

func (u *TagLinkUsecase) Unlink(ctx context.Context, input TagLinkInput) error {
	src, tagIDs, err := validate(input)
	if err != nil {
		return err
	}

	logger.Logger.InfoContext(ctx, "unlinking content tags", "content_id", input.ContentID, "source", src, "count", len(tagIDs))
	if err := u.port.UnlinkContentTags(ctx, input.ContentID, src, tagIDs); err != nil {
		return apperrors.FromDomainError(err, "usecase", "TagLinkUsecase", "Unlink")
	}
	return nil
}

// Reproject rebuilds tag_ids for one record from the junction table.
func (u *TagLinkUsecase) Reproject(ctx context.Context, contentID int64, source string) error {
	src, err := parseSource(contentID, source)
	if err != nil {
		return err
	}
	if err := u.port.ReprojectContentTags(ctx, contentID, src); err != nil {
		return apperrors.FromDomainError(err, "usecase", "TagLinkUsecase", "Reproject")
	}
	return nil
}

// ReprojectSource rebuilds tag_ids for every record of a source and returns the rows touched.
func (u *TagLinkUsecase) ReprojectSource(ctx context.Context, source string) (int64, error) {
	src, ok := domain.ParseSourceType(source)
	if !ok {
		return 0, invalid(fmt.Errorf("%w: unknown source %q", domain.ErrInvalidTagLink, source))
	}

	updated, err := u.port.ReprojectSource(ctx, src)
	if err != nil {
		return 0, apperrors.FromDomainError(err, "usecase", "TagLinkUsecase", "ReprojectSource")
	}
	logger.Logger.InfoContext(ctx, "reprojected content tags", "source", src, "updated", updated)
	return updated, nil
}

func validate(input TagLinkInput) (domain.SourceType, []uuid.UUID, error) {
	src, err := parseSource(input.ContentID, input.Source)
	if err != nil {
		return "", nil, err
	}
	tags := domain.NewTagFilterSpec(input.TagIDs, domain.TagMatchAny).TagIDs
	if len(tags) == 0 {
		return "", nil, invalid(fmt.Errorf("%w: at least one tag id is required", domain.ErrInvalidTagLink))
	}
	if len(tags) > constants.MaxTagFilterSize {
		return "", nil, invalid(fmt.Errorf("%w: at most %d tags per request", domain.ErrInvalidTagLink, constants.MaxTagFilterSize))
	}
	for _, id := range tags {
		if id == uuid.Nil {
			return "", nil, invalid(fmt.Errorf("%w: nil tag id", domain.ErrInvalidTagLink))
		}
	}
	return src, tags, nil
}

func parseSource(contentID int64, source string) (domain.SourceType, error) {
	if contentID <= 0 {
		return "", invalid(fmt.Errorf("%w: content id must be positive, got %d", domain.ErrInvalidTagLink, contentID))
	}
	src, ok := domain.ParseSourceType(source)
	if !ok {
		return "", invalid(fmt.Errorf("%w: unknown source %q", domain.ErrInvalidTagLink, source))
	}
	return src, nil
}

func invalid(err error) error {
	return apperrors.FromDomainError(err, "usecase", "TagLinkUsecase", "validate")
}
