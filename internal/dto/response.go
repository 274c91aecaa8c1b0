package dto

import (
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/schema"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string              `json:"error" example:"validation_error"`
	Message string              `json:"message,omitempty" example:"prompt is required"`
	Details []schema.FieldError `json:"details,omitempty"`
}

// StreamStatus announces the stage about to run.
type StreamStatus struct {
	Stage string `json:"stage" example:"audiences"`
}

// StreamError carries a terminal stream failure.
type StreamError struct {
	Message string `json:"message" example:"planning failed"`
}

// StreamFrame is one wire frame of the planning stream. Exactly one field is
// set per frame; a frame with Final or Error terminates the stream.
type StreamFrame struct {
	Status  *StreamStatus        `json:"status,omitempty"`
	Partial *domain.PlanFragment `json:"partial,omitempty"`
	Final   *domain.CampaignPlan `json:"final,omitempty"`
	Error   *StreamError         `json:"error,omitempty"`
}
