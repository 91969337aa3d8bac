package constants

// Pagination constants for content listing.
const (
	// DefaultPageSize is used when the request omits page_size.
	DefaultPageSize = 10

	// MaxPageSize is the largest page_size a caller may ask for.
	MaxPageSize = 100

	// DefaultAllModeSemiJoinLimit is the largest "all" tag filter planned as one EXISTS per tag.
	// Larger filters switch to a single grouped count.
	DefaultAllModeSemiJoinLimit = 8

	// MaxTagFilterSize bounds the number of tag ids accepted in one request.
	MaxTagFilterSize = 50
)

// Header names shared by the middleware and handlers.
const (
	HeaderRequestID = "X-Request-ID"
	HeaderViewerID  = "X-User-ID"
	HeaderService   = "X-Service-Token"
)
