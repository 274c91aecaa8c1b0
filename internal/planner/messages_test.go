package planner

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
)

func pixelWithTopProduct(name string) domain.SourceSignals {
	return domain.SourceSignals{
		WebsitePixel: &domain.WebsitePixelSignals{
			Events:      []domain.PixelEvent{},
			TopProducts: []domain.TopProduct{{ID: "p1", Name: name}},
		},
	}
}

func TestExtractVariables_DiscountBranches(t *testing.T) {
	cases := []struct {
		prompt   string
		discount string
	}{
		{"urgent flash sale", "30"},
		{"black friday blowout", "25"},
		{"holiday season push", "25"},
		{"reactivation for lapsed users", "20"},
		{"plain retention", "15"},
	}

	for _, tc := range cases {
		vars := extractVariables(domain.SourceSignals{}, tc.prompt, testNow)
		assert.Equal(t, tc.discount, vars.discount, "prompt %q", tc.prompt)
	}
}

func TestExtractVariables_TopProductAndEndDate(t *testing.T) {
	vars := extractVariables(pixelWithTopProduct("Wireless Earbuds Pro"), "plain", testNow)

	assert.Equal(t, "{{firstName}}", vars.firstName)
	assert.Equal(t, "Wireless Earbuds Pro", vars.topProduct)
	assert.Equal(t, "Sep 5", vars.endDate)

	generic := extractVariables(domain.SourceSignals{}, "plain", testNow)
	assert.Equal(t, "featured product", generic.topProduct)
}

func TestBuildMessages_EmailVariants(t *testing.T) {
	executions := []domain.ChannelExecution{{
		Channel:  domain.ChannelEmail,
		Provider: "Klaviyo",
		Audience: "Repeat Purchasers",
	}}

	composed := BuildMessages(executions, domain.SourceSignals{}, "reactivation campaign", testNow)

	assert.Len(t, composed[0].Variants, 2)
	assert.Equal(t, "Primary (70%)", composed[0].Variants[0].Name)
	assert.Contains(t, composed[0].Variants[0].Subject, "we miss you")
	assert.Equal(t, "Repeat Purchasers", composed[0].Variants[0].Audience)
	assert.Equal(t, "Alternative (30%)", composed[0].Variants[1].Name)

	// Both bodies carry their CTA anchor.
	assert.Contains(t, composed[0].Variants[0].BodyHTML, `>Shop Now</a>`)
	assert.Contains(t, composed[0].Variants[1].BodyHTML, `>Get 20% Off</a>`)
}

func TestBuildMessages_SMSUnder160WithOptOut(t *testing.T) {
	executions := []domain.ChannelExecution{{Channel: domain.ChannelSMS, Audience: "Recent Cart Abandoners"}}

	for _, prompt := range []string{"cart recovery", "urgent flash sale", "plain"} {
		composed := BuildMessages(executions, pixelWithTopProduct("Travel Mug"), prompt, testNow)
		msg := composed[0].Message
		assert.LessOrEqual(t, utf8.RuneCountInString(msg), 160, "prompt %q", prompt)
		assert.True(t, strings.Contains(msg, "STOP"), "prompt %q must include opt-out text", prompt)
	}
}

func TestBuildMessages_WhatsAppParameters(t *testing.T) {
	executions := []domain.ChannelExecution{{Channel: domain.ChannelWhatsApp, Audience: "Repeat Purchasers"}}

	composed := BuildMessages(executions, pixelWithTopProduct("Smart Fitness Band"), "plain", testNow)

	assert.Equal(t, []string{"{{firstName}}", "Smart Fitness Band", "15", "Sep 5"}, composed[0].Parameters)
}

func TestBuildMessages_AdsOnlyWhenBriefsExist(t *testing.T) {
	withBriefs := []domain.ChannelExecution{{
		Channel:        domain.ChannelAds,
		Audience:       "All Customers",
		CreativeBriefs: []domain.CreativeBrief{{Headline: "skeleton"}},
	}}
	composed := BuildMessages(withBriefs, domain.SourceSignals{}, "plain", testNow)
	assert.Len(t, composed[0].CreativeBriefs, 2)
	assert.Contains(t, composed[0].CreativeBriefs[0].Headline, "15% Off")

	withoutBriefs := []domain.ChannelExecution{{Channel: domain.ChannelAds, Audience: "All Customers"}}
	composed = BuildMessages(withoutBriefs, domain.SourceSignals{}, "plain", testNow)
	assert.Nil(t, composed[0].CreativeBriefs)
}

func TestMessageUrgency(t *testing.T) {
	assert.Equal(t, "high", MessageUrgency("urgent flash sale ending soon"))
	assert.Equal(t, "medium", MessageUrgency("black friday sale"))
	assert.Equal(t, "low", MessageUrgency("quarterly newsletter"))
}
