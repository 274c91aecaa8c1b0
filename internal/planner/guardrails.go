package planner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
)

// brandSafetyKeywords block political and controversial content globally.
var brandSafetyKeywords = []string{
	"political",
	"election",
	"vote",
	"campaign",
	"candidate",
	"democrat",
	"republican",
	"liberal",
	"conservative",
	"protest",
	"controversial",
	"scandal",
	"crisis",
}

var blocklistDomains = []string{
	"political-site.com",
	"controversy-news.com",
	"scandal-blog.com",
	"hate-speech-platform.com",
	"inappropriate-content.com",
}

// ApplyGuardrails is the total post-processing transform: attach the global
// brand-safety lists, clamp sms/voice schedules to outside quiet hours, and
// recompute the daily impression cap from the weekly frequency caps.
func ApplyGuardrails(plan domain.CampaignPlan) domain.CampaignPlan {
	updated := plan

	updated.Guardrails = domain.Guardrails{
		BrandSafety:      brandSafetyKeywords,
		BlocklistDomains: blocklistDomains,
	}

	channels := make([]domain.ChannelExecution, len(plan.Channels))
	for i, ch := range plan.Channels {
		if ch.Channel == domain.ChannelSMS || ch.Channel == domain.ChannelVoice {
			channels[i] = enforceQuietHours(ch)
		} else {
			channels[i] = ch
		}
	}
	updated.Channels = channels

	updated.GlobalPacing.DailyMaxImpressionsPerUser = maxDailyImpressions(channels)

	return updated
}

// enforceQuietHours clamps only the violating boundary; the other side is
// left as-is even if already inside the window. Documented current behavior.
func enforceQuietHours(execution domain.ChannelExecution) domain.ChannelExecution {
	updated := execution

	if scheduleHour(execution.Schedule.Start) < quietStartHour {
		updated.Schedule.Start = "08:00"
	}
	if scheduleHour(execution.Schedule.End) > quietEndHour {
		updated.Schedule.End = "21:00"
	}

	return updated
}

// maxDailyImpressions is min(ceil(sum of weekly caps / 7), 5).
func maxDailyImpressions(channels []domain.ChannelExecution) int {
	total := 0
	for _, ch := range channels {
		total += ch.FrequencyCapPerUserPerWeek
	}

	daily := (total + daysInWeek - 1) / daysInWeek
	if daily > maxDailyContacts {
		daily = maxDailyContacts
	}
	return daily
}

// CheckBrandSafety reports whether content is free of blocked keywords
// (case-insensitive substring match).
func CheckBrandSafety(content string) bool {
	contentLower := strings.ToLower(content)
	for _, keyword := range brandSafetyKeywords {
		if strings.Contains(contentLower, keyword) {
			return false
		}
	}
	return true
}

// DedupeRule limits how often a user may be contacted across the listed
// channels within a time window.
type DedupeRule struct {
	TimeWindow  string   `json:"timeWindow"`
	Channels    []string `json:"channels"`
	MaxContacts int      `json:"maxContacts"`
}

// GenerateDedupeRules emits a 24h all-channel rule plus, when any
// high-frequency channel (sms, push, voice) is present, a 1h rule over those.
func GenerateDedupeRules(channels []domain.ChannelExecution) []DedupeRule {
	all := make([]string, len(channels))
	for i, ch := range channels {
		all[i] = string(ch.Channel)
	}

	rules := []DedupeRule{
		{TimeWindow: "24h", Channels: all, MaxContacts: 1},
	}

	var highFreq []string
	for _, ch := range channels {
		switch ch.Channel {
		case domain.ChannelSMS, domain.ChannelPush, domain.ChannelVoice:
			highFreq = append(highFreq, string(ch.Channel))
		}
	}
	if len(highFreq) > 0 {
		rules = append(rules, DedupeRule{TimeWindow: "1h", Channels: highFreq, MaxContacts: 1})
	}

	return rules
}

// ComplianceIssue describes one compliance finding for an execution.
type ComplianceIssue struct {
	Issue      string `json:"issue"`
	Severity   string `json:"severity"`
	Suggestion string `json:"suggestion"`
}

// ValidateCompliance audits one execution for channel compliance problems.
func ValidateCompliance(execution domain.ChannelExecution) []ComplianceIssue {
	var issues []ComplianceIssue

	if execution.Channel == domain.ChannelSMS {
		if execution.Compliance == nil || !execution.Compliance.RequiresOptIn {
			issues = append(issues, ComplianceIssue{
				Issue:      "SMS requires explicit opt-in",
				Severity:   "error",
				Suggestion: "Add opt-in requirement to compliance settings",
			})
		}
		if execution.Compliance == nil || !execution.Compliance.IncludeOptOutText {
			issues = append(issues, ComplianceIssue{
				Issue:      "SMS must include opt-out instructions",
				Severity:   "error",
				Suggestion: "Add 'Reply STOP to opt out' to message",
			})
		}
		if utf8.RuneCountInString(execution.Message) > smsMaxLength {
			issues = append(issues, ComplianceIssue{
				Issue:      "SMS message exceeds 160 characters",
				Severity:   "warning",
				Suggestion: "Shorten message for better deliverability",
			})
		}
	}

	if execution.Channel == domain.ChannelVoice {
		startHour := scheduleHour(execution.Schedule.Start)
		endHour := scheduleHour(execution.Schedule.End)
		if startHour < voiceStartHour || endHour > voiceEndHour {
			issues = append(issues, ComplianceIssue{
				Issue:      "Voice calls outside recommended business hours",
				Severity:   "warning",
				Suggestion: "Limit voice calls to 10:00-17:00 for better reception",
			})
		}
	}

	if execution.Channel == domain.ChannelEmail && execution.FrequencyCapPerUserPerWeek > maxWeeklyEmails {
		issues = append(issues, ComplianceIssue{
			Issue:      "High email frequency may increase unsubscribes",
			Severity:   "warning",
			Suggestion: "Consider reducing frequency to ≤5 emails per week",
		})
	}

	return issues
}

// ExplainGuardrails produces human-readable decision/reason-code pairs for
// the guardrails applied to a plan.
func ExplainGuardrails(plan domain.CampaignPlan) []domain.Explanation {
	var explanations []domain.Explanation

	hasQuietHoursChannels := false
	for _, ch := range plan.Channels {
		if ch.Channel == domain.ChannelSMS || ch.Channel == domain.ChannelVoice {
			hasQuietHoursChannels = true
			break
		}
	}
	if hasQuietHoursChannels {
		explanations = append(explanations, domain.Explanation{
			Decision:  "Applied quiet hours (21:00-08:00) for SMS and Voice channels",
			BecauseOf: []string{"regulatory_compliance", "user_experience"},
		})
	}

	explanations = append(explanations,
		domain.Explanation{
			Decision:  "Applied brand safety filters to prevent political/controversial content",
			BecauseOf: []string{"brand_protection", "platform_policies"},
		},
		domain.Explanation{
			Decision:  fmt.Sprintf("Limited to %d contacts per user per day", plan.GlobalPacing.DailyMaxImpressionsPerUser),
			BecauseOf: []string{"user_experience", "deliverability_optimization"},
		},
	)

	return explanations
}
