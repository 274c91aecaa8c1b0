// Package schema validates planning inputs at entry and assembled plans at
// exit. Violations are collected, never short-circuited: ValidationError
// always carries the full list of {path, message} pairs.
package schema

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
)

const (
	minDataSources = 3
	minChannels    = 4
	smsMaxLength   = 160

	// Frequency caps above this are flagged as warnings, not failures.
	warnWeeklyFrequency = 10
)

// DefaultTimezone is the fallback zone applied when a request omits one.
const DefaultTimezone = "Asia/Dhaka"

// FieldError is one violation, addressed by its field path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in one pass.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Path, fe.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

var validate = validator.New()

// structuralErrors runs declared-constraint validation and converts the
// resulting failures into field errors.
func structuralErrors(v interface{}, root string) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Path: root, Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		// Strip the root struct name so paths read like JSON pointers.
		if i := strings.Index(path, "."); i >= 0 {
			path = path[i+1:]
		}
		msg := fmt.Sprintf("failed %q constraint", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed %q=%s constraint", fe.Tag(), fe.Param())
		}
		fields = append(fields, FieldError{Path: path, Message: msg})
	}
	return fields
}

// ValidateInputs gates request inputs before the pipeline starts, applying
// the default timezone when omitted. The returned inputs are normalized.
func ValidateInputs(inputs domain.PlanningInputs) (domain.PlanningInputs, error) {
	if inputs.Timezone == "" {
		inputs.Timezone = DefaultTimezone
	}

	var errs []FieldError
	if strings.TrimSpace(inputs.Prompt) == "" {
		errs = append(errs, FieldError{Path: "prompt", Message: "prompt is required"})
	}
	if len(inputs.SelectedSources) < minDataSources {
		errs = append(errs, FieldError{Path: "selectedSources", Message: fmt.Sprintf("at least %d data sources required", minDataSources)})
	}
	if len(inputs.SelectedChannels) < minChannels {
		errs = append(errs, FieldError{Path: "selectedChannels", Message: fmt.Sprintf("at least %d channels required", minChannels)})
	}

	if len(errs) > 0 {
		return domain.PlanningInputs{}, &ValidationError{Errors: errs}
	}
	return inputs, nil
}

// ValidatePlan checks a final plan structurally and semantically. Warnings
// (currently only high frequency caps) are returned separately and never
// fail validation.
func ValidatePlan(plan *domain.CampaignPlan) ([]FieldError, error) {
	errs := structuralErrors(plan, "CampaignPlan")

	if !plan.GlobalPacing.End.After(plan.GlobalPacing.Start) {
		errs = append(errs, FieldError{
			Path:    "globalPacing.end",
			Message: "end date must be after start date",
		})
	}

	seen := make(map[domain.Channel]bool)
	for _, ch := range plan.Channels {
		if seen[ch.Channel] {
			errs = append(errs, FieldError{
				Path:    "channels",
				Message: fmt.Sprintf("duplicate executions for channel %q", ch.Channel),
			})
		}
		seen[ch.Channel] = true
	}

	for i, ch := range plan.Channels {
		if ch.Channel != domain.ChannelSMS {
			continue
		}
		if ch.Compliance == nil || !ch.Compliance.RequiresOptIn {
			errs = append(errs, FieldError{
				Path:    fmt.Sprintf("channels[%d].compliance.requiresOptIn", i),
				Message: "sms executions must require opt-in",
			})
		}
		// Characters, not bytes: emoji in a template must not trip the limit.
		if utf8.RuneCountInString(ch.Message) > smsMaxLength {
			errs = append(errs, FieldError{
				Path:    fmt.Sprintf("channels[%d].message", i),
				Message: fmt.Sprintf("sms message exceeds %d character limit", smsMaxLength),
			})
		}
	}

	var warnings []FieldError
	for i, ch := range plan.Channels {
		if ch.FrequencyCapPerUserPerWeek > warnWeeklyFrequency {
			warnings = append(warnings, FieldError{
				Path:    fmt.Sprintf("channels[%d].frequencyCapPerUserPerWeek", i),
				Message: fmt.Sprintf("high frequency cap for %s may cause user fatigue", ch.Channel),
			})
		}
	}

	if len(errs) > 0 {
		return warnings, &ValidationError{Errors: errs}
	}
	return warnings, nil
}
