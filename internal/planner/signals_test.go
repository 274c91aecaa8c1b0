package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/sources"
)

// MockProvider is a mock implementation of sources.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Fetch(ctx context.Context, sourceID string) ([]byte, error) {
	args := m.Called(ctx, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestSummarizeSources_SelectedAndValid(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Fetch", mock.Anything, sources.SourceShopify).
		Return([]byte(`{"customers":[{"id":"c1","totalOrders":3}],"segments":{"vip":1}}`), nil)
	provider.On("Fetch", mock.Anything, sources.SourceReviews).
		Return([]byte(`{"overallRating":4.2,"totalReviews":10,"topicAnalysis":{"quality":{"count":5,"avgRating":4.5,"sentiment":"positive"}}}`), nil)

	signals, err := SummarizeSources(context.Background(), provider, []string{"shopify", "reviews"})

	assert.NoError(t, err)
	assert.NotNil(t, signals.Shopify)
	assert.Len(t, signals.Shopify.Customers, 1)
	assert.NotNil(t, signals.Reviews)
	assert.Nil(t, signals.WebsitePixel)
	assert.Nil(t, signals.Twitter)
	provider.AssertExpectations(t)
}

func TestSummarizeSources_UnknownSourceIgnored(t *testing.T) {
	provider := new(MockProvider)

	signals, err := SummarizeSources(context.Background(), provider, []string{"crm", "linkedin"})

	assert.NoError(t, err)
	assert.Equal(t, domain.SourceSignals{}, signals)
	provider.AssertNotCalled(t, "Fetch")
}

func TestSummarizeSources_MissingMandatoryFieldAbsent(t *testing.T) {
	provider := new(MockProvider)
	// topProducts missing: the source is unavailable, not an error.
	provider.On("Fetch", mock.Anything, sources.SourceWebsitePixel).
		Return([]byte(`{"events":[]}`), nil)

	signals, err := SummarizeSources(context.Background(), provider, []string{"website-pixel"})

	assert.NoError(t, err)
	assert.Nil(t, signals.WebsitePixel)
}

func TestSummarizeSources_MalformedPayloadAbsent(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Fetch", mock.Anything, sources.SourceTwitter).
		Return([]byte(`not json`), nil)

	signals, err := SummarizeSources(context.Background(), provider, []string{"twitter"})

	assert.NoError(t, err)
	assert.Nil(t, signals.Twitter)
}

func TestSummarizeSources_FetchFailureAbsent(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Fetch", mock.Anything, sources.SourceShopify).
		Return(nil, errors.New("upstream unavailable"))
	provider.On("Fetch", mock.Anything, sources.SourceReviews).
		Return([]byte(`{"overallRating":4.2,"totalReviews":10,"topicAnalysis":{}}`), nil)

	signals, err := SummarizeSources(context.Background(), provider, []string{"shopify", "reviews"})

	assert.NoError(t, err)
	assert.Nil(t, signals.Shopify)
	// Empty topicAnalysis map still counts as present.
	assert.NotNil(t, signals.Reviews)
}

func TestSummarizeSources_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := new(MockProvider)
	provider.On("Fetch", mock.Anything, sources.SourceShopify).
		Return(nil, context.Canceled).Maybe()

	_, err := SummarizeSources(ctx, provider, []string{"shopify"})

	assert.ErrorIs(t, err, context.Canceled)
}

// panickingProvider stands in for a live integration that blows up mid-fetch.
type panickingProvider struct{}

func (panickingProvider) Fetch(context.Context, string) ([]byte, error) {
	panic("upstream integration exploded")
}

func TestSummarizeSources_ProviderPanicBecomesError(t *testing.T) {
	signals, err := SummarizeSources(context.Background(), panickingProvider{}, []string{"shopify", "reviews"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
	assert.Equal(t, domain.SourceSignals{}, signals)
}

func TestStrength(t *testing.T) {
	signals := domain.SourceSignals{
		WebsitePixel: &domain.WebsitePixelSignals{
			Events: []domain.PixelEvent{
				{Timestamp: testNow.AddDate(0, 0, -2).Format("2006-01-02T15:04:05Z")},
			},
		},
		Shopify: &domain.ShopifySignals{
			Customers: []domain.Customer{
				{ID: "c1", LifetimeValue: 900},
				{ID: "c2", Tags: []string{"cart-abandoner"}},
			},
		},
		FacebookPage: &domain.FacebookPageSignals{
			Posts: []domain.PagePost{{Engagement: 150}, {Engagement: 250}},
		},
	}

	st := Strength(signals, testNow)

	assert.True(t, st.HasRecentActivity)
	assert.True(t, st.HasHighValueCustomers)
	assert.True(t, st.HasCartAbandoners)
	assert.True(t, st.HasEngagedAudience)
	assert.Equal(t, 2, st.TotalCustomers)
	assert.Equal(t, 200.0, st.AvgEngagement)
}

func TestStrength_EmptyBundle(t *testing.T) {
	st := Strength(domain.SourceSignals{}, testNow)

	assert.False(t, st.HasRecentActivity)
	assert.False(t, st.HasEngagedAudience)
	assert.Zero(t, st.TotalCustomers)
	assert.Zero(t, st.AvgEngagement)
}
