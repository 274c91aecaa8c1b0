package sources

import (
	"context"
	_ "embed"
)

//go:embed fixtures/web_pixel.json
var webPixelData []byte

//go:embed fixtures/shopify.json
var shopifyData []byte

//go:embed fixtures/facebook_page.json
var facebookData []byte

//go:embed fixtures/twitter.json
var twitterData []byte

//go:embed fixtures/reviews.json
var reviewsData []byte

// Static serves the canned fixture payloads bundled with the binary. It is the
// stand-in for real data-source integrations and may be shared across requests.
type Static struct {
	payloads map[string][]byte
}

// NewStatic creates a provider backed by the embedded fixture data.
func NewStatic() *Static {
	return &Static{
		payloads: map[string][]byte{
			SourceWebsitePixel: webPixelData,
			SourceShopify:      shopifyData,
			SourceFacebookPage: facebookData,
			SourceTwitter:      twitterData,
			SourceReviews:      reviewsData,
		},
	}
}

// Fetch returns the fixture payload for the given source id.
func (s *Static) Fetch(ctx context.Context, sourceID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, ok := s.payloads[sourceID]
	if !ok {
		return nil, ErrUnknownSource
	}
	return payload, nil
}
