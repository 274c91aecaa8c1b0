package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
)

// messageVariables are the four template slots injected into channel copy.
type messageVariables struct {
	firstName  string
	topProduct string
	discount   string
	endDate    string
}

// extractVariables derives template values from the signal bundle, the prompt
// and the injected clock. firstName stays a placeholder token so delivery
// systems can substitute it per recipient.
func extractVariables(signals domain.SourceSignals, prompt string, now time.Time) messageVariables {
	vars := messageVariables{firstName: "{{firstName}}"}

	promptLower := strings.ToLower(prompt)
	switch {
	case strings.Contains(promptLower, "flash") || strings.Contains(promptLower, "urgent"):
		vars.discount = "30"
	case strings.Contains(promptLower, "black friday") || strings.Contains(promptLower, "holiday"):
		vars.discount = "25"
	case strings.Contains(promptLower, "reactivation"):
		vars.discount = "20"
	default:
		vars.discount = "15"
	}

	vars.topProduct = "featured product"
	if signals.WebsitePixel != nil && len(signals.WebsitePixel.TopProducts) > 0 {
		if name := signals.WebsitePixel.TopProducts[0].Name; name != "" {
			vars.topProduct = name
		}
	}

	vars.endDate = now.AddDate(0, 0, defaultDurationDays).Format("Jan 2")

	return vars
}

// BuildMessages fills channel-specific content using extracted template
// variables and prompt-keyword branches. Plain string interpolation only.
func BuildMessages(executions []domain.ChannelExecution, signals domain.SourceSignals, prompt string, now time.Time) []domain.ChannelExecution {
	promptLower := strings.ToLower(prompt)
	vars := extractVariables(signals, prompt, now)

	composed := make([]domain.ChannelExecution, len(executions))
	for i, execution := range executions {
		updated := execution

		switch execution.Channel {
		case domain.ChannelEmail:
			updated.Variants = []domain.MessageVariant{
				{
					Name:     "Primary (70%)",
					Subject:  emailSubject(promptLower, vars, true),
					BodyHTML: emailBody(vars, true),
					Audience: execution.Audience,
				},
				{
					Name:     "Alternative (30%)",
					Subject:  emailSubject(promptLower, vars, false),
					BodyHTML: emailBody(vars, false),
					Audience: execution.Audience,
				},
			}

		case domain.ChannelSMS:
			updated.Message = smsMessage(promptLower, vars)

		case domain.ChannelWhatsApp:
			updated.Parameters = []string{vars.firstName, vars.topProduct, vars.discount, vars.endDate}

		case domain.ChannelPush:
			updated.Message = pushMessage(promptLower, vars)

		case domain.ChannelVoice:
			updated.Message = voiceScript(vars)

		case domain.ChannelMessenger:
			updated.Message = messengerMessage(vars)

		case domain.ChannelAds:
			if execution.CreativeBriefs != nil {
				updated.CreativeBriefs = []domain.CreativeBrief{
					{
						Headline:    adHeadline(promptLower, vars, true),
						PrimaryText: adBody(vars, true),
						AssetRefs:   []string{"product_image", "lifestyle_image"},
					},
					{
						Headline:    adHeadline(promptLower, vars, false),
						PrimaryText: adBody(vars, false),
						AssetRefs:   []string{"video_creative", "carousel_images"},
					},
				}
			}
		}

		composed[i] = updated
	}

	return composed
}

func emailSubject(prompt string, vars messageVariables, primary bool) string {
	if primary {
		if strings.Contains(prompt, "reactivation") {
			return fmt.Sprintf("%s, we miss you! %s%% off your favorite %s", vars.firstName, vars.discount, vars.topProduct)
		}
		if strings.Contains(prompt, "black friday") {
			return fmt.Sprintf("🖤 Black Friday: %s%% off %s - %s", vars.discount, vars.topProduct, vars.firstName)
		}
		return fmt.Sprintf("%s, your perfect %s is waiting", vars.firstName, vars.topProduct)
	}
	if strings.Contains(prompt, "urgent") || strings.Contains(prompt, "flash") {
		return fmt.Sprintf("⚡ Flash Sale: %s%% off ends %s", vars.discount, vars.endDate)
	}
	return fmt.Sprintf("Limited time: %s%% off %s", vars.discount, vars.topProduct)
}

func emailBody(vars messageVariables, primary bool) string {
	if primary {
		return fmt.Sprintf(
			`<h2>Hi %s,</h2><p>Based on your recent activity, we think you'll love our <strong>%s</strong>.</p><p>Get <strong>%s%% off</strong> until %s.</p><a href="#" style="background: #007bff; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px;">Shop Now</a>`,
			vars.firstName, vars.topProduct, vars.discount, vars.endDate)
	}
	return fmt.Sprintf(
		`<h2>Don't miss out %s!</h2><p>Your %s is <strong>%s%% off</strong>, but only until %s.</p><a href="#" style="background: #dc3545; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px;">Get %s%% Off</a>`,
		vars.firstName, vars.topProduct, vars.discount, vars.endDate, vars.discount)
}

func smsMessage(prompt string, vars messageVariables) string {
	if strings.Contains(prompt, "cart") {
		return fmt.Sprintf("Hi %s! Your cart is waiting. Complete your purchase and get %s%% off. Expires %s. Reply STOP to opt out.", vars.firstName, vars.discount, vars.endDate)
	}
	if strings.Contains(prompt, "flash") || strings.Contains(prompt, "urgent") {
		return fmt.Sprintf("🔥 FLASH SALE %s! %s%% off %s - ends %s! Shop now. Text STOP to opt out.", vars.firstName, vars.discount, vars.topProduct, vars.endDate)
	}
	return fmt.Sprintf("%s, exclusive %s%% off %s! Limited time until %s. Reply STOP to opt out.", vars.firstName, vars.discount, vars.topProduct, vars.endDate)
}

func pushMessage(prompt string, vars messageVariables) string {
	if strings.Contains(prompt, "flash") || strings.Contains(prompt, "urgent") {
		return fmt.Sprintf("🔥 %s, %s%% off %s ends soon!", vars.firstName, vars.discount, vars.topProduct)
	}
	return fmt.Sprintf("%s, your %s is %s%% off until %s! 🛍️", vars.firstName, vars.topProduct, vars.discount, vars.endDate)
}

func voiceScript(vars messageVariables) string {
	return fmt.Sprintf("Hello %s, this is a personal call from our team. We have an exclusive %s%% discount on %s just for you. This offer expires %s. Would you like to learn more?", vars.firstName, vars.discount, vars.topProduct, vars.endDate)
}

func messengerMessage(vars messageVariables) string {
	return fmt.Sprintf("Hi %s! 👋 Thanks for engaging with our content. Here's a special %s%% discount on %s - expires %s! 🎉", vars.firstName, vars.discount, vars.topProduct, vars.endDate)
}

func adHeadline(prompt string, vars messageVariables, primary bool) string {
	if primary {
		return fmt.Sprintf("%s%% Off %s", vars.discount, vars.topProduct)
	}
	if strings.Contains(prompt, "black friday") {
		return fmt.Sprintf("Black Friday: %s Sale", vars.topProduct)
	}
	return fmt.Sprintf("Limited Time: %s", vars.topProduct)
}

func adBody(vars messageVariables, primary bool) string {
	if primary {
		return fmt.Sprintf("Limited time offer for %s. Get your favorite %s at an amazing %s%% off! Don't wait - offer ends %s.", vars.firstName, vars.topProduct, vars.discount, vars.endDate)
	}
	return fmt.Sprintf("Hey %s! 🎯 Your %s is calling. Save %s%% before %s. Shop smart, save more!", vars.firstName, vars.topProduct, vars.discount, vars.endDate)
}

// MessageUrgency classifies the prompt's urgency for auditing.
func MessageUrgency(prompt string) string {
	promptLower := strings.ToLower(prompt)

	if strings.Contains(promptLower, "flash") || strings.Contains(promptLower, "urgent") || strings.Contains(promptLower, "ending soon") {
		return "high"
	}
	if strings.Contains(promptLower, "limited time") || strings.Contains(promptLower, "black friday") || strings.Contains(promptLower, "sale") {
		return "medium"
	}
	return "low"
}
