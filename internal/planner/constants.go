package planner

// Quiet-hours and business-hour boundaries (hour of day).
const (
	quietStartHour    = 8
	quietEndHour      = 21
	businessStartHour = 9
	businessEndHour   = 18
	voiceStartHour    = 10
	voiceEndHour      = 17
)

// Frequency limits.
const (
	maxWeeklyEmails        = 5
	maxDailyContacts       = 5
	weekendReductionFactor = 0.5
	flashSaleBoost         = 2
)

// Campaign settings.
const (
	defaultDurationDays    = 7
	daysInWeek             = 7
	lifetimeValueThreshold = 500
	visitorMultiplier      = 15
)

// Message limits.
const smsMaxLength = 160

// KPI adjustments for aggressive targets.
const (
	roasBoost    = 0.5
	cpaReduction = 10
	ctrBoost     = 0.005
)
