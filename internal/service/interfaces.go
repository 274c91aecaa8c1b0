package service

import (
	"context"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/dto"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/planner"
)

// PlanServicer defines the interface for plan service operations
type PlanServicer interface {
	// BuildPlan validates the request and runs the pipeline synchronously.
	BuildPlan(ctx context.Context, req *dto.PlanRequest) (*domain.CampaignPlan, error)

	// StreamPlan validates the request and returns the staged producer.
	// Validation failure means the pipeline never starts.
	StreamPlan(ctx context.Context, req *dto.PlanRequest) (*planner.Emitter, error)
}
