package domain

// PixelEvent is one tracked website interaction.
type PixelEvent struct {
	Event     string  `json:"event"`
	ProductID string  `json:"productId"`
	Value     float64 `json:"value"`
	Timestamp string  `json:"timestamp"`
}

// TopProduct is an aggregated product popularity entry from the pixel.
type TopProduct struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Views     int    `json:"views"`
	Purchases int    `json:"purchases"`
}

// WebsitePixelSignals is the normalized website-pixel payload.
type WebsitePixelSignals struct {
	Events      []PixelEvent `json:"events"`
	TopProducts []TopProduct `json:"topProducts"`
}

// Customer is one store customer record.
type Customer struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	LastPurchaseDate string   `json:"lastPurchaseDate"`
	TotalOrders      int      `json:"totalOrders"`
	TotalSpent       float64  `json:"totalSpent"`
	LifetimeValue    float64  `json:"lifetimeValue"`
	Tags             []string `json:"tags"`
}

// ShopifySignals is the normalized store payload.
type ShopifySignals struct {
	Customers []Customer     `json:"customers"`
	Segments  map[string]int `json:"segments"`
}

// PagePost is one page post with engagement counts.
type PagePost struct {
	ID         string `json:"id"`
	Likes      int    `json:"likes"`
	Comments   int    `json:"comments"`
	Engagement int    `json:"engagement"`
}

// Commenter is a page follower ranked by comment activity.
type Commenter struct {
	Name     string `json:"name"`
	Comments int    `json:"comments"`
}

// FacebookPageSignals is the normalized page payload.
type FacebookPageSignals struct {
	Posts         []PagePost  `json:"posts"`
	TopCommenters []Commenter `json:"topCommenters"`
}

// Tweet is one post with engagement counts.
type Tweet struct {
	ID         string `json:"id"`
	Likes      int    `json:"likes"`
	Retweets   int    `json:"retweets"`
	Engagement int    `json:"engagement"`
}

// TwitterAnalytics carries account-level engagement aggregates.
type TwitterAnalytics struct {
	AvgEngagementRate float64 `json:"avgEngagementRate"`
	TotalImpressions  int     `json:"totalImpressions"`
}

// TwitterSignals is the normalized account payload.
type TwitterSignals struct {
	Tweets    []Tweet          `json:"tweets"`
	Analytics TwitterAnalytics `json:"analytics"`
}

// TopicStats aggregates review sentiment for one topic.
type TopicStats struct {
	Count     int     `json:"count"`
	AvgRating float64 `json:"avgRating"`
	Sentiment string  `json:"sentiment"`
}

// ReviewsSignals is the normalized reviews payload.
type ReviewsSignals struct {
	OverallRating float64               `json:"overallRating"`
	TotalReviews  int                   `json:"totalReviews"`
	TopicAnalysis map[string]TopicStats `json:"topicAnalysis"`
}

// SourceSignals is the uniform signal bundle built once per request. A key is
// present only when its source was selected and its payload parsed into the
// expected shape; unavailable sources are absent, never null-but-present.
type SourceSignals struct {
	WebsitePixel *WebsitePixelSignals `json:"websitePixel,omitempty"`
	Shopify      *ShopifySignals      `json:"shopify,omitempty"`
	FacebookPage *FacebookPageSignals `json:"facebookPage,omitempty"`
	Twitter      *TwitterSignals      `json:"twitter,omitempty"`
	Reviews      *ReviewsSignals      `json:"reviews,omitempty"`
}
