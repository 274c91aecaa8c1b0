package dto

import "strings"

// PlanRequest is the JSON body accepted by the planning endpoints.
type PlanRequest struct {
	Prompt   string   `json:"prompt" binding:"required" example:"win back lapsed customers"`
	Sources  []string `json:"sources" binding:"required" example:"website-pixel,shopify,twitter"`
	Channels []string `json:"channels" binding:"required" example:"email,sms,whatsapp,ads"`
	Timezone string   `json:"timezone" example:"Asia/Dhaka"`
}

// PlanQueryRequest is the query-parameter form of PlanRequest, with sources
// and channels as comma-separated lists.
type PlanQueryRequest struct {
	Prompt   string `form:"prompt" binding:"required" example:"win back lapsed customers"`
	Sources  string `form:"sources" example:"website-pixel,shopify,twitter"`
	Channels string `form:"channels" example:"email,sms,whatsapp,ads"`
	Timezone string `form:"timezone" example:"Asia/Dhaka"`
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ToPlanRequest expands the comma-separated query form into a PlanRequest.
func (q *PlanQueryRequest) ToPlanRequest() *PlanRequest {
	return &PlanRequest{
		Prompt:   q.Prompt,
		Sources:  splitList(q.Sources),
		Channels: splitList(q.Channels),
		Timezone: q.Timezone,
	}
}
