package sources

import (
	"context"
	"errors"
)

// Source identifiers accepted on the request path.
const (
	SourceWebsitePixel = "website-pixel"
	SourceShopify      = "shopify"
	SourceFacebookPage = "facebook-page"
	SourceTwitter      = "twitter"
	SourceReviews      = "reviews"
)

// ErrUnknownSource is returned when a source id is not in the fixed vocabulary.
var ErrUnknownSource = errors.New("unknown source id")

// Provider serves raw per-source payloads. Implementations must be safe for
// concurrent use; payloads are treated as read-only by callers.
type Provider interface {
	// Fetch returns the raw payload for the given source id, or
	// ErrUnknownSource when the id is not recognized.
	Fetch(ctx context.Context, sourceID string) ([]byte, error)
}
