package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/sources"
)

// sourceLoader parses one raw payload and attaches it to the bundle when the
// payload exposes its mandatory top-level fields. A payload missing those
// fields leaves the bundle untouched, never errors.
type sourceLoader func(raw []byte, out *domain.SourceSignals)

var sourceLoaders = map[string]sourceLoader{
	sources.SourceWebsitePixel: func(raw []byte, out *domain.SourceSignals) {
		var s domain.WebsitePixelSignals
		if json.Unmarshal(raw, &s) != nil {
			return
		}
		if s.Events != nil && s.TopProducts != nil {
			out.WebsitePixel = &s
		}
	},
	sources.SourceShopify: func(raw []byte, out *domain.SourceSignals) {
		var s domain.ShopifySignals
		if json.Unmarshal(raw, &s) != nil {
			return
		}
		if s.Customers != nil && s.Segments != nil {
			out.Shopify = &s
		}
	},
	sources.SourceFacebookPage: func(raw []byte, out *domain.SourceSignals) {
		var s domain.FacebookPageSignals
		if json.Unmarshal(raw, &s) != nil {
			return
		}
		if s.Posts != nil && s.TopCommenters != nil {
			out.FacebookPage = &s
		}
	},
	sources.SourceTwitter: func(raw []byte, out *domain.SourceSignals) {
		var s domain.TwitterSignals
		if json.Unmarshal(raw, &s) != nil {
			return
		}
		if s.Tweets != nil && s.Analytics != (domain.TwitterAnalytics{}) {
			out.Twitter = &s
		}
	},
	sources.SourceReviews: func(raw []byte, out *domain.SourceSignals) {
		var s domain.ReviewsSignals
		if json.Unmarshal(raw, &s) != nil {
			return
		}
		if s.OverallRating > 0 && s.TotalReviews > 0 && s.TopicAnalysis != nil {
			out.Reviews = &s
		}
	},
}

// SummarizeSources builds the signal bundle for the selected sources. Unknown
// source ids are silently ignored, and a source whose payload cannot be
// fetched or parsed is treated as unavailable rather than failing the request.
// Fetches run concurrently since sources are mutually independent; the bundle
// is returned whole once every fetch has settled. The returned errors are
// context cancellation and provider panics; a panicking provider surfaces as
// an error here so the pipeline can end with its terminal error event.
func SummarizeSources(ctx context.Context, provider sources.Provider, selected []string) (domain.SourceSignals, error) {
	var (
		signals domain.SourceSignals
		mu      sync.Mutex
	)

	g, ctx := errgroup.WithContext(ctx)

	for _, sourceID := range selected {
		loader, ok := sourceLoaders[sourceID]
		if !ok {
			continue
		}

		id := sourceID
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("source %q: panic: %v", id, r)
				}
			}()

			raw, err := provider.Fetch(ctx, id)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				// Unavailable source: absent key, not an error.
				return nil
			}

			mu.Lock()
			loader(raw, &signals)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.SourceSignals{}, err
	}
	return signals, nil
}

// SignalStrength summarizes targeting-relevant indicators across the bundle.
type SignalStrength struct {
	HasRecentActivity     bool    `json:"hasRecentActivity"`
	HasHighValueCustomers bool    `json:"hasHighValueCustomers"`
	HasEngagedAudience    bool    `json:"hasEngagedAudience"`
	HasCartAbandoners     bool    `json:"hasCartAbandoners"`
	TotalCustomers        int     `json:"totalCustomers"`
	AvgEngagement         float64 `json:"avgEngagement"`
}

// Strength computes audit indicators for a signal bundle relative to now.
func Strength(signals domain.SourceSignals, now time.Time) SignalStrength {
	var st SignalStrength

	if signals.WebsitePixel != nil {
		weekAgo := now.AddDate(0, 0, -7)
		for _, ev := range signals.WebsitePixel.Events {
			if ts, err := time.Parse(time.RFC3339, ev.Timestamp); err == nil && ts.After(weekAgo) {
				st.HasRecentActivity = true
				break
			}
		}
	}

	if signals.Shopify != nil {
		st.TotalCustomers = len(signals.Shopify.Customers)
		for _, c := range signals.Shopify.Customers {
			if c.LifetimeValue > lifetimeValueThreshold {
				st.HasHighValueCustomers = true
			}
			if hasTag(c.Tags, "cart-abandoner") {
				st.HasCartAbandoners = true
			}
		}
	}

	if signals.FacebookPage != nil && len(signals.FacebookPage.Posts) > 0 {
		total := 0
		for _, p := range signals.FacebookPage.Posts {
			total += p.Engagement
		}
		avg := float64(total) / float64(len(signals.FacebookPage.Posts))
		if avg > st.AvgEngagement {
			st.AvgEngagement = avg
		}
		st.HasEngagedAudience = avg > 100
	}

	if signals.Twitter != nil && signals.Twitter.Analytics.AvgEngagementRate > st.AvgEngagement {
		st.AvgEngagement = signals.Twitter.Analytics.AvgEngagementRate
	}

	return st
}
