package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
)

func execWithCap(channel domain.Channel, weeklyCap int) domain.ChannelExecution {
	return domain.ChannelExecution{
		Channel:                    channel,
		Provider:                   "test",
		Audience:                   "All Customers",
		FrequencyCapPerUserPerWeek: weeklyCap,
	}
}

func TestChooseTiming_ChannelWindows(t *testing.T) {
	executions := []domain.ChannelExecution{
		execWithCap(domain.ChannelEmail, 3),
		execWithCap(domain.ChannelSMS, 2),
		execWithCap(domain.ChannelWhatsApp, 1),
		execWithCap(domain.ChannelPush, 5),
		execWithCap(domain.ChannelVoice, 1),
		execWithCap(domain.ChannelMessenger, 2),
		execWithCap(domain.ChannelAds, 7),
	}

	timed := ChooseTiming(executions, "steady weekend campaign", testTimezone)

	windows := map[domain.Channel][2]string{}
	for _, exec := range timed {
		windows[exec.Channel] = [2]string{exec.Schedule.Start, exec.Schedule.End}
		assert.Equal(t, testTimezone, exec.Schedule.Timezone)
	}

	assert.Equal(t, [2]string{"09:00", "11:30"}, windows[domain.ChannelEmail])
	assert.Equal(t, [2]string{"10:00", "20:00"}, windows[domain.ChannelSMS])
	assert.Equal(t, [2]string{"09:00", "18:00"}, windows[domain.ChannelWhatsApp])
	assert.Equal(t, [2]string{"08:00", "21:00"}, windows[domain.ChannelPush])
	assert.Equal(t, [2]string{"10:00", "17:00"}, windows[domain.ChannelVoice])
	assert.Equal(t, [2]string{"09:00", "18:00"}, windows[domain.ChannelMessenger])
	assert.Equal(t, [2]string{"00:00", "23:59"}, windows[domain.ChannelAds])
}

func TestChooseTiming_NurtureExtendsEmail(t *testing.T) {
	timed := ChooseTiming([]domain.ChannelExecution{execWithCap(domain.ChannelEmail, 3)}, "nurture the relationship weekend", testTimezone)

	assert.Equal(t, "09:00", timed[0].Schedule.Start)
	assert.Equal(t, "19:00", timed[0].Schedule.End)
}

func TestChooseTiming_WeekendReduction(t *testing.T) {
	// No weekend/urgent keyword: caps are halved (floor, minimum 1),
	// regardless of the actual day of week.
	timed := ChooseTiming([]domain.ChannelExecution{
		execWithCap(domain.ChannelPush, 5),
		execWithCap(domain.ChannelVoice, 1),
	}, "steady retention campaign", testTimezone)

	assert.Equal(t, 2, timed[0].FrequencyCapPerUserPerWeek)
	assert.Equal(t, 1, timed[1].FrequencyCapPerUserPerWeek)
}

func TestChooseTiming_FlashSaleBoost(t *testing.T) {
	timed := ChooseTiming([]domain.ChannelExecution{
		execWithCap(domain.ChannelSMS, 2),
		execWithCap(domain.ChannelAds, 7),
	}, "urgent flash sale this week", testTimezone)

	// Urgent prompts widen the SMS window and boost caps by 2 (capped at 7);
	// urgency also implies weekend delivery, so no reduction applies.
	assert.Equal(t, "09:00", timed[0].Schedule.Start)
	assert.Equal(t, "21:00", timed[0].Schedule.End)
	assert.Equal(t, 4, timed[0].FrequencyCapPerUserPerWeek)
	assert.Equal(t, 7, timed[1].FrequencyCapPerUserPerWeek)
}

func TestChooseTiming_ReductionAndBoostCompound(t *testing.T) {
	// Urgency alone allows weekends, so a prompt that is neither urgent nor
	// weekend shows the reduction; the urgent variant gets the boost instead.
	reduced := ChooseTiming([]domain.ChannelExecution{execWithCap(domain.ChannelEmail, 3)}, "plain", testTimezone)
	assert.Equal(t, 1, reduced[0].FrequencyCapPerUserPerWeek)

	boosted := ChooseTiming([]domain.ChannelExecution{execWithCap(domain.ChannelEmail, 3)}, "urgent", testTimezone)
	assert.Equal(t, 5, boosted[0].FrequencyCapPerUserPerWeek)
}

func TestValidateTiming(t *testing.T) {
	valid := execWithCap(domain.ChannelSMS, 2)
	valid.Schedule = domain.Schedule{Start: "10:00", End: "20:00", Timezone: testTimezone}
	assert.True(t, ValidateTiming(valid))

	backwards := execWithCap(domain.ChannelEmail, 2)
	backwards.Schedule = domain.Schedule{Start: "18:00", End: "09:00", Timezone: testTimezone}
	assert.False(t, ValidateTiming(backwards))

	quietViolation := execWithCap(domain.ChannelVoice, 1)
	quietViolation.Schedule = domain.Schedule{Start: "07:00", End: "20:00", Timezone: testTimezone}
	assert.False(t, ValidateTiming(quietViolation))

	whatsappLate := execWithCap(domain.ChannelWhatsApp, 1)
	whatsappLate.Schedule = domain.Schedule{Start: "09:00", End: "20:00", Timezone: testTimezone}
	assert.False(t, ValidateTiming(whatsappLate))

	missing := execWithCap(domain.ChannelEmail, 2)
	assert.False(t, ValidateTiming(missing))
}
