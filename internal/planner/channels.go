package planner

import (
	"fmt"
	"strings"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
)

// filterAudiences returns the audiences whose name contains any of the given
// archetype substrings, preserving order.
func filterAudiences(audiences []domain.Audience, archetypes ...string) []domain.Audience {
	var matched []domain.Audience
	for _, a := range audiences {
		for _, arch := range archetypes {
			if strings.Contains(a.Name, arch) {
				matched = append(matched, a)
				break
			}
		}
	}
	return matched
}

type channelBuilder func(audiences []domain.Audience, timezone string) *domain.ChannelExecution

func buildEmailExecution(audiences []domain.Audience, timezone string) *domain.ChannelExecution {
	matched := filterAudiences(audiences, "Repeat Purchasers", "All Customers", "New Customer")
	if len(matched) == 0 {
		return nil
	}

	audience := matched[0].Name
	return &domain.ChannelExecution{
		Channel:                    domain.ChannelEmail,
		Provider:                   "Klaviyo",
		Schedule:                   domain.Schedule{Start: "09:00", End: "19:00", Timezone: timezone},
		FrequencyCapPerUserPerWeek: 3,
		Variants: []domain.MessageVariant{
			{
				Name:     "Primary",
				Subject:  "{{first_name}}, your perfect {{top_product}} is waiting",
				BodyHTML: "Hi {{first_name}},<br><br>Based on your recent activity, we think you'll love our {{top_product}}. Get {{discount}}% off until {{end_date}}.",
				Audience: audience,
			},
			{
				Name:     "Alternative",
				Subject:  "Limited time: {{discount}}% off {{top_product}}",
				BodyHTML: "Don't miss out {{first_name}}! Your {{top_product}} is {{discount}}% off, but only until {{end_date}}.",
				Audience: audience,
			},
		},
		Audience: audience,
		Tracking: &domain.Tracking{
			UTMSource:   "email",
			UTMCampaign: "reactivation_campaign",
			PixelEvents: []string{"email_open", "email_click"},
		},
	}
}

func buildSMSExecution(audiences []domain.Audience, timezone string) *domain.ChannelExecution {
	matched := filterAudiences(audiences, "Cart Abandoners", "At-Risk High-LTV")
	if len(matched) == 0 {
		return nil
	}

	return &domain.ChannelExecution{
		Channel:                    domain.ChannelSMS,
		Provider:                   "Twilio",
		Schedule:                   domain.Schedule{Start: "10:00", End: "20:00", Timezone: timezone},
		FrequencyCapPerUserPerWeek: 2,
		Message:                    "Hi {{first_name}}! Your cart is waiting. Complete your purchase and get {{discount}}% off. Expires {{end_date}}. Reply STOP to opt out.",
		Audience:                   matched[0].Name,
		Compliance: &domain.Compliance{
			RequiresOptIn:     true,
			IncludeOptOutText: true,
		},
	}
}

func buildWhatsAppExecution(audiences []domain.Audience, timezone string) *domain.ChannelExecution {
	matched := filterAudiences(audiences, "High-LTV", "Repeat Purchasers")
	if len(matched) == 0 {
		return nil
	}

	return &domain.ChannelExecution{
		Channel:                    domain.ChannelWhatsApp,
		Provider:                   "WhatsApp Business API",
		Schedule:                   domain.Schedule{Start: "09:00", End: "18:00", Timezone: timezone},
		FrequencyCapPerUserPerWeek: 1,
		TemplateID:                 "product_recommendation",
		Locale:                     "en",
		Parameters:                 []string{"{{first_name}}", "{{top_product}}", "{{discount}}"},
		Audience:                   matched[0].Name,
	}
}

func buildPushExecution(audiences []domain.Audience, timezone string) *domain.ChannelExecution {
	matched := filterAudiences(audiences, "Engaged", "All Customers")
	if len(matched) == 0 {
		return nil
	}

	return &domain.ChannelExecution{
		Channel:                    domain.ChannelPush,
		Provider:                   "OneSignal",
		Schedule:                   domain.Schedule{Start: "08:00", End: "21:00", Timezone: timezone},
		FrequencyCapPerUserPerWeek: 5,
		Message:                    "🔥 {{first_name}}, {{discount}}% off {{top_product}} ends soon!",
		Audience:                   matched[0].Name,
	}
}

func buildVoiceExecution(audiences []domain.Audience, timezone string) *domain.ChannelExecution {
	matched := filterAudiences(audiences, "High-LTV")
	if len(matched) == 0 {
		return nil
	}

	return &domain.ChannelExecution{
		Channel:                    domain.ChannelVoice,
		Provider:                   "Twilio Voice",
		Schedule:                   domain.Schedule{Start: "10:00", End: "17:00", Timezone: timezone},
		FrequencyCapPerUserPerWeek: 1,
		Message:                    "Hello {{first_name}}, this is a personal call from our team about an exclusive offer on {{top_product}}.",
		Audience:                   matched[0].Name,
	}
}

func buildMessengerExecution(audiences []domain.Audience, timezone string) *domain.ChannelExecution {
	matched := filterAudiences(audiences, "Engaged Social")
	if len(matched) == 0 {
		return nil
	}

	return &domain.ChannelExecution{
		Channel:                    domain.ChannelMessenger,
		Provider:                   "Facebook Messenger API",
		Schedule:                   domain.Schedule{Start: "09:00", End: "18:00", Timezone: timezone},
		FrequencyCapPerUserPerWeek: 2,
		Message:                    "Hi {{first_name}}! Thanks for engaging with our content. Here's a special {{discount}}% discount on {{top_product}}!",
		Audience:                   matched[0].Name,
	}
}

// buildAdsExecution always produces an execution, falling back to a
// zero-knowledge default audience when none was selected.
func buildAdsExecution(audiences []domain.Audience, timezone string) *domain.ChannelExecution {
	adsAudience := domain.Audience{
		Name:         "All Customers",
		Source:       []string{"shopify"},
		Criteria:     map[string]interface{}{},
		SizeEstimate: 1000,
		Exclusions:   []string{},
	}
	if len(audiences) > 0 {
		adsAudience = audiences[0]
	}

	return &domain.ChannelExecution{
		Channel:                    domain.ChannelAds,
		Provider:                   "Meta Ads Manager",
		Schedule:                   domain.Schedule{Start: "00:00", End: "23:59", Timezone: timezone},
		FrequencyCapPerUserPerWeek: 7,
		Networks: []domain.AdNetwork{
			{Name: "meta", Placements: []string{"feed", "stories", "reels"}, BudgetDaily: 50, BidStrategy: "lowest_cost"},
			{Name: "google", Placements: []string{"search", "display", "youtube"}, BudgetDaily: 30, BidStrategy: "target_cpa"},
		},
		CreativeBriefs: []domain.CreativeBrief{
			{
				Headline:    "{{discount}}% Off {{top_product}}",
				PrimaryText: "Limited time offer for {{first_name}}. Get your favorite {{top_product}} at an amazing price!",
				AssetRefs:   []string{"image_1", "video_1"},
			},
		},
		Audience: adsAudience.Name,
		AudienceMapping: map[string]map[string]string{
			adsAudience.Name: {
				"meta":   "custom_audience_001",
				"google": "remarketing_list_001",
			},
		},
	}
}

// buildDefaultExecution synthesizes a generic execution for a requested
// channel that no specialized rule matched.
func buildDefaultExecution(channelID string, audiences []domain.Audience, timezone string) domain.ChannelExecution {
	return domain.ChannelExecution{
		Channel:                    domain.Channel(channelID),
		Provider:                   fmt.Sprintf("Default %s Provider", channelID),
		Schedule:                   domain.Schedule{Start: "09:00", End: "18:00", Timezone: timezone},
		FrequencyCapPerUserPerWeek: 3,
		Message:                    "Hi {{first_name}}! Check out our latest {{top_product}} with {{discount}}% off!",
		Audience:                   audiences[0].Name,
	}
}

var channelBuilders = map[string]channelBuilder{
	"email":     buildEmailExecution,
	"sms":       buildSMSExecution,
	"whatsapp":  buildWhatsAppExecution,
	"push":      buildPushExecution,
	"ads":       buildAdsExecution,
	"voice":     buildVoiceExecution,
	"messenger": buildMessengerExecution,
}

// ChooseChannels assigns exactly one execution skeleton per selected channel.
// Specialized builders run first in selection order; a second pass fills any
// channel they left unmatched with a generic default.
func ChooseChannels(selectedChannels []string, audiences []domain.Audience, _ domain.SourceSignals, _ string, timezone string) []domain.ChannelExecution {
	var executions []domain.ChannelExecution

	for _, channelID := range selectedChannels {
		builder, ok := channelBuilders[channelID]
		if !ok {
			continue
		}
		if exec := builder(audiences, timezone); exec != nil {
			executions = append(executions, *exec)
		}
	}

	for _, channelID := range selectedChannels {
		covered := false
		for _, exec := range executions {
			if string(exec.Channel) == channelID {
				covered = true
				break
			}
		}
		if !covered && len(audiences) > 0 {
			executions = append(executions, buildDefaultExecution(channelID, audiences, timezone))
		}
	}

	return executions
}

// ChannelPriority scores channels by prompt intent, for auditing and UI hints.
func ChannelPriority(prompt string) map[string]int {
	priorities := map[string]int{
		"email":     3,
		"sms":       2,
		"whatsapp":  2,
		"push":      4,
		"voice":     1,
		"messenger": 3,
		"ads":       5,
	}

	promptLower := strings.ToLower(prompt)

	if strings.Contains(promptLower, "urgent") || strings.Contains(promptLower, "flash") {
		priorities["sms"] = 5
		priorities["whatsapp"] = 5
	}
	if strings.Contains(promptLower, "reach") || strings.Contains(promptLower, "awareness") {
		priorities["ads"] = 7
	}
	if strings.Contains(promptLower, "nurture") || strings.Contains(promptLower, "relationship") {
		priorities["email"] = 6
	}

	return priorities
}
