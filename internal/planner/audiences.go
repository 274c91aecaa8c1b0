package planner

import (
	"strings"
	"time"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
)

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

// parseDate accepts both date-only and RFC3339 timestamps, which is what the
// fixture payloads mix.
func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

type audienceRule func(signals domain.SourceSignals, prompt string, now time.Time) *domain.Audience

func atRiskHighLTVRule(signals domain.SourceSignals, _ string, now time.Time) *domain.Audience {
	if signals.Shopify == nil {
		return nil
	}

	thirtyDaysAgo := now.AddDate(0, 0, -30)
	sixtyDaysAgo := now.AddDate(0, 0, -60)

	count := 0
	for _, c := range signals.Shopify.Customers {
		lastPurchase, ok := parseDate(c.LastPurchaseDate)
		if !ok {
			continue
		}
		if c.LifetimeValue > lifetimeValueThreshold &&
			lastPurchase.Before(thirtyDaysAgo) &&
			lastPurchase.After(sixtyDaysAgo) {
			count++
		}
	}

	if count == 0 {
		return nil
	}
	return &domain.Audience{
		Name:   "At-Risk High-LTV Customers",
		Source: []string{"shopify"},
		Criteria: map[string]interface{}{
			"lifetimeValue":         map[string]interface{}{"min": 500},
			"daysSinceLastPurchase": map[string]interface{}{"min": 30, "max": 60},
		},
		SizeEstimate: count,
		Exclusions:   []string{"recent-refunds", "unsubscribed-email"},
	}
}

func cartAbandonersRule(signals domain.SourceSignals, _ string, _ time.Time) *domain.Audience {
	if signals.Shopify == nil {
		return nil
	}

	count := 0
	for _, c := range signals.Shopify.Customers {
		if hasTag(c.Tags, "cart-abandoner") {
			count++
		}
	}

	if count == 0 {
		return nil
	}
	return &domain.Audience{
		Name:   "Recent Cart Abandoners",
		Source: []string{"shopify"},
		Criteria: map[string]interface{}{
			"tags":                 []string{"cart-abandoner"},
			"daysSinceCartAbandon": map[string]interface{}{"max": 7},
		},
		SizeEstimate: count,
		Exclusions:   []string{"completed-purchase", "unsubscribed-email"},
	}
}

func repeatPurchasersRule(signals domain.SourceSignals, _ string, _ time.Time) *domain.Audience {
	if signals.Shopify == nil {
		return nil
	}

	count := 0
	for _, c := range signals.Shopify.Customers {
		if c.TotalOrders >= 3 {
			count++
		}
	}

	if count == 0 {
		return nil
	}
	return &domain.Audience{
		Name:   "Repeat Purchasers",
		Source: []string{"shopify"},
		Criteria: map[string]interface{}{
			"totalOrders": map[string]interface{}{"min": 3},
		},
		SizeEstimate: count,
		Exclusions:   []string{"unsubscribed-email"},
	}
}

func engagedSocialRule(signals domain.SourceSignals, _ string, _ time.Time) *domain.Audience {
	if signals.FacebookPage == nil && signals.Twitter == nil {
		return nil
	}

	engaged := 0
	var srcs []string

	if signals.FacebookPage != nil {
		engaged += len(signals.FacebookPage.TopCommenters)
		srcs = append(srcs, "facebookPage")
	}

	if signals.Twitter != nil {
		recentEngagement := 0
		tweets := signals.Twitter.Tweets
		if len(tweets) > 3 {
			tweets = tweets[:3]
		}
		for _, tw := range tweets {
			recentEngagement += tw.Engagement
		}
		engaged += int(float64(recentEngagement) * 0.1)
		srcs = append(srcs, "twitter")
	}

	if engaged == 0 {
		return nil
	}
	return &domain.Audience{
		Name:   "Engaged Social Followers",
		Source: srcs,
		Criteria: map[string]interface{}{
			"engagementPeriod": "7d",
			"minInteractions":  1,
		},
		SizeEstimate: engaged,
		Exclusions:   []string{"blocked-users"},
	}
}

func websiteVisitorsRule(signals domain.SourceSignals, prompt string, _ time.Time) *domain.Audience {
	promptLower := strings.ToLower(prompt)
	if signals.WebsitePixel == nil ||
		!(strings.Contains(promptLower, "reach") || strings.Contains(promptLower, "awareness")) {
		return nil
	}

	days := make(map[string]struct{})
	for _, ev := range signals.WebsitePixel.Events {
		day, _, _ := strings.Cut(ev.Timestamp, "T")
		days[day] = struct{}{}
	}

	return &domain.Audience{
		Name:   "Recent Website Visitors",
		Source: []string{"websitePixel"},
		Criteria: map[string]interface{}{
			"daysSinceVisit": map[string]interface{}{"max": 14},
			"minPageViews":   2,
		},
		SizeEstimate: len(days) * visitorMultiplier,
		Exclusions:   []string{"purchased-recently"},
	}
}

func newCustomersRule(signals domain.SourceSignals, prompt string, _ time.Time) *domain.Audience {
	promptLower := strings.ToLower(prompt)
	if signals.Shopify == nil ||
		!(strings.Contains(promptLower, "acquisition") || strings.Contains(promptLower, "new")) {
		return nil
	}

	count := 0
	for _, c := range signals.Shopify.Customers {
		if c.TotalOrders == 1 {
			count++
		}
	}

	if count == 0 {
		return nil
	}
	return &domain.Audience{
		Name:   "New Customer Onboarding",
		Source: []string{"shopify"},
		Criteria: map[string]interface{}{
			"totalOrders":            1,
			"daysSinceFirstPurchase": map[string]interface{}{"max": 30},
		},
		SizeEstimate: count,
		Exclusions:   []string{},
	}
}

// audienceRules is evaluated in declaration order; every rule runs, all
// matches are kept.
var audienceRules = []audienceRule{
	atRiskHighLTVRule,
	cartAbandonersRule,
	repeatPurchasersRule,
	engagedSocialRule,
	websiteVisitorsRule,
	newCustomersRule,
}

// ChooseAudiences derives candidate segments from the signal bundle and the
// prompt. The result is never empty: when no rule matches, a single
// "All Customers" fallback is synthesized.
func ChooseAudiences(signals domain.SourceSignals, prompt string, now time.Time) []domain.Audience {
	var audiences []domain.Audience
	for _, rule := range audienceRules {
		if a := rule(signals, prompt, now); a != nil {
			audiences = append(audiences, *a)
		}
	}

	if len(audiences) == 0 {
		size := 100
		if signals.Shopify != nil && len(signals.Shopify.Customers) > 0 {
			size = len(signals.Shopify.Customers)
		}
		audiences = append(audiences, domain.Audience{
			Name:         "All Customers",
			Source:       []string{"shopify"},
			Criteria:     map[string]interface{}{"status": "active"},
			SizeEstimate: size,
			Exclusions:   []string{"unsubscribed-email"},
		})
	}

	return audiences
}
