package domain

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const viewerContextKey contextKey = "viewer_id"

// WithViewer stores the id of the user the listing is computed for.
func WithViewer(ctx context.Context, viewerID uuid.UUID) context.Context {
	return context.WithValue(ctx, viewerContextKey, viewerID)
}

// ViewerFromContext returns uuid.Nil when no viewer was attached, so "own" filters match nothing.
func ViewerFromContext(ctx context.Context) (uuid.UUID, bool) {
	viewerID, ok := ctx.Value(viewerContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return viewerID, true
}
