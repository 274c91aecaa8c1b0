package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/dto"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/planner"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/schema"
)

// PlanService bridges the transport layer and the planning pipeline.
type PlanService struct {
	planner         *planner.Planner
	validateExit    bool
	defaultTimezone string
	log             *zap.Logger
}

// NewPlanService creates a new plan service. When validateExit is set, the
// synchronous path checks the assembled plan against the schema before
// returning it. defaultTimezone is applied to requests that omit one; empty
// falls back to schema.DefaultTimezone.
func NewPlanService(p *planner.Planner, validateExit bool, defaultTimezone string, log *zap.Logger) *PlanService {
	return &PlanService{
		planner:         p,
		validateExit:    validateExit,
		defaultTimezone: defaultTimezone,
		log:             log,
	}
}

func (s *PlanService) inputs(req *dto.PlanRequest) (domain.PlanningInputs, error) {
	timezone := req.Timezone
	if timezone == "" {
		timezone = s.defaultTimezone
	}
	return schema.ValidateInputs(domain.PlanningInputs{
		Prompt:           req.Prompt,
		SelectedSources:  req.Sources,
		SelectedChannels: req.Channels,
		Timezone:         timezone,
	})
}

// BuildPlan runs the full pipeline and returns the assembled plan.
func (s *PlanService) BuildPlan(ctx context.Context, req *dto.PlanRequest) (*domain.CampaignPlan, error) {
	inputs, err := s.inputs(req)
	if err != nil {
		s.log.Warn("Rejected planning request", zap.Error(err))
		return nil, err
	}

	plan, err := s.planner.Assemble(ctx, inputs)
	if err != nil {
		s.log.Error("Planning pipeline failed",
			zap.Error(err),
			zap.String("prompt", inputs.Prompt))
		return nil, err
	}

	if s.validateExit {
		warnings, err := schema.ValidatePlan(plan)
		if err != nil {
			s.log.Error("Assembled plan failed validation",
				zap.Error(err),
				zap.String("campaign_id", plan.CampaignID))
			return nil, err
		}
		for _, w := range warnings {
			s.log.Warn("Plan validation warning",
				zap.String("campaign_id", plan.CampaignID),
				zap.String("path", w.Path),
				zap.String("message", w.Message))
		}
	}

	s.log.Info("Plan assembled",
		zap.String("campaign_id", plan.CampaignID),
		zap.String("objective", string(plan.Objective)),
		zap.Int("audiences", len(plan.Audiences)),
		zap.Int("channels", len(plan.Channels)))

	return plan, nil
}

// StreamPlan validates inputs and hands back the staged producer for the
// transport to drain. No events are produced until the caller pulls them.
func (s *PlanService) StreamPlan(ctx context.Context, req *dto.PlanRequest) (*planner.Emitter, error) {
	inputs, err := s.inputs(req)
	if err != nil {
		s.log.Warn("Rejected streaming request", zap.Error(err))
		return nil, err
	}

	s.log.Info("Planning stream started",
		zap.String("prompt", inputs.Prompt),
		zap.Int("sources", len(inputs.SelectedSources)),
		zap.Int("channels", len(inputs.SelectedChannels)))

	return s.planner.Run(inputs), nil
}
