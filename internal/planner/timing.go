package planner

import (
	"strconv"
	"strings"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
)

func scheduleHour(hhmm string) int {
	h, _, _ := strings.Cut(hhmm, ":")
	hour, err := strconv.Atoi(h)
	if err != nil {
		return -1
	}
	return hour
}

// ChooseTiming replaces each execution's schedule with the channel's business
// window and adjusts frequency caps from prompt urgency. The weekend
// reduction and the flash boost are keyword-driven only (no calendar check)
// and compound: reduction first, then boost.
func ChooseTiming(executions []domain.ChannelExecution, prompt, timezone string) []domain.ChannelExecution {
	promptLower := strings.ToLower(prompt)
	isFlashSale := strings.Contains(promptLower, "flash sale") || strings.Contains(promptLower, "urgent")
	isWeekendAllowed := isFlashSale || strings.Contains(promptLower, "weekend")

	timed := make([]domain.ChannelExecution, len(executions))
	for i, execution := range executions {
		updated := execution

		switch execution.Channel {
		case domain.ChannelEmail:
			updated.Schedule = domain.Schedule{Start: "09:00", End: "11:30", Timezone: timezone}
			if strings.Contains(promptLower, "nurture") || strings.Contains(promptLower, "relationship") {
				updated.Schedule.End = "19:00"
			}

		case domain.ChannelSMS:
			updated.Schedule = domain.Schedule{Start: "10:00", End: "20:00", Timezone: timezone}
			if isFlashSale {
				updated.Schedule.Start = "09:00"
				updated.Schedule.End = "21:00"
			}

		case domain.ChannelWhatsApp, domain.ChannelMessenger:
			updated.Schedule = domain.Schedule{Start: "09:00", End: "18:00", Timezone: timezone}

		case domain.ChannelPush:
			updated.Schedule = domain.Schedule{Start: "08:00", End: "21:00", Timezone: timezone}

		case domain.ChannelVoice:
			updated.Schedule = domain.Schedule{Start: "10:00", End: "17:00", Timezone: timezone}

		default: // ads and anything unrecognized run around the clock
			updated.Schedule = domain.Schedule{Start: "00:00", End: "23:59", Timezone: timezone}
		}

		if !isWeekendAllowed {
			reduced := int(float64(updated.FrequencyCapPerUserPerWeek) * weekendReductionFactor)
			if reduced < 1 {
				reduced = 1
			}
			updated.FrequencyCapPerUserPerWeek = reduced
		}

		if isFlashSale {
			boosted := updated.FrequencyCapPerUserPerWeek + flashSaleBoost
			if boosted > daysInWeek {
				boosted = daysInWeek
			}
			updated.FrequencyCapPerUserPerWeek = boosted
		}

		timed[i] = updated
	}

	return timed
}

// ValidateTiming checks that an execution's window is well formed and legal
// for its channel type. It is an audit helper, not enforced inline.
func ValidateTiming(execution domain.ChannelExecution) bool {
	start := execution.Schedule.Start
	end := execution.Schedule.End
	if start == "" || end == "" {
		return false
	}

	startHour := scheduleHour(start)
	endHour := scheduleHour(end)
	if startHour < 0 || endHour <= startHour {
		return false
	}

	switch execution.Channel {
	case domain.ChannelSMS, domain.ChannelVoice:
		return startHour >= quietStartHour && endHour <= quietEndHour
	case domain.ChannelWhatsApp, domain.ChannelMessenger:
		return startHour >= businessStartHour && endHour <= businessEndHour
	default:
		return true
	}
}
