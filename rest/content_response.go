package rest

import (
	"strings"
	"time"

	"genonaut/domain"

	"github.com/microcosm-cc/bluemonday"
)

var titlePolicy = bluemonday.StrictPolicy()

type ContentItemResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	ContentType   string   `json:"content_type"`
	CreatorID     string   `json:"creator_id"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
	QualityScore  float64  `json:"quality_score"`
	IsPrivate     bool     `json:"is_private"`
	SourceType    string   `json:"source_type"`
	ContentSource string   `json:"content_source"`
	TagIDs        []string `json:"tag_ids"`
}

type ContentPageResponse struct {
	Items      []ContentItemResponse `json:"items"`
	Pagination domain.PaginationMeta `json:"pagination"`
}

func newContentPageResponse(page *domain.ContentPage) ContentPageResponse {
	items := make([]ContentItemResponse, 0, len(page.Items))
	for _, record := range page.Items {
		items = append(items, newContentItemResponse(record))
	}
	return ContentPageResponse{Items: items, Pagination: page.Pagination}
}

func newContentItemResponse(r *domain.ContentRecord) ContentItemResponse {
	tagIDs := make([]string, 0, len(r.TagIDs))
	for _, id := range r.TagIDs {
		tagIDs = append(tagIDs, id.String())
	}
	return ContentItemResponse{
		ID:            r.ID,
		Title:         sanitizeTitle(r.Title),
		ContentType:   r.ContentType,
		CreatorID:     r.CreatorID.String(),
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     r.UpdatedAt.UTC().Format(time.RFC3339Nano),
		QualityScore:  r.QualityScore,
		IsPrivate:     r.IsPrivate,
		SourceType:    string(r.SourceType),
		ContentSource: string(r.SourceType.ContentSource()),
		TagIDs:        tagIDs,
	}
}

// sanitizeTitle strips markup from user-supplied titles.
func sanitizeTitle(title string) string {
	return strings.Join(strings.Fields(titlePolicy.Sanitize(title)), " ")
}
