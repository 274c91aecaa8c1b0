package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/sources"
)

// Planner drives the pipeline stages. The clock and campaign ID generator are
// injected so a plan is a pure function of (inputs, clock) and tests can
// freeze both.
type Planner struct {
	provider sources.Provider
	now      func() time.Time
	newID    func() string
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithIDGenerator replaces the campaign ID generator.
func WithIDGenerator(newID func() string) Option {
	return func(p *Planner) { p.newID = newID }
}

// New creates a planner backed by the given source provider.
func New(provider sources.Provider, opts ...Option) *Planner {
	p := &Planner{
		provider: provider,
		now:      time.Now,
		newID:    func() string { return fmt.Sprintf("camp_%s", uuid.NewString()) },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Planner) pacingSkeleton(now time.Time) domain.GlobalPacing {
	return domain.GlobalPacing{
		Start:                      now,
		End:                        now.AddDate(0, 0, defaultDurationDays),
		DailyMaxImpressionsPerUser: 3, // placeholder, recomputed by guardrails
	}
}

// assemble builds the final guardrail-applied plan from the intermediate
// stage outputs. Shared by the synchronous and streaming entry points so both
// produce identical plans for identical inputs and clock.
func (p *Planner) assemble(inputs domain.PlanningInputs, audiences []domain.Audience, channels []domain.ChannelExecution, pacing domain.GlobalPacing) domain.CampaignPlan {
	objective := DetermineObjective(inputs.Prompt)
	kpis := DetermineKPIs(objective, inputs.Prompt)

	plan := domain.CampaignPlan{
		CampaignID:   p.newID(),
		Objective:    objective,
		KPIs:         kpis,
		Timezone:     inputs.Timezone,
		Audiences:    audiences,
		Channels:     channels,
		GlobalPacing: pacing,
		Guardrails:   domain.Guardrails{BrandSafety: []string{}, BlocklistDomains: []string{}},
	}

	plan = ApplyGuardrails(plan)

	plan.Explainability = append(ExplainGuardrails(plan),
		domain.Explanation{
			Decision:  fmt.Sprintf("Selected %d audience segments", len(audiences)),
			BecauseOf: []string{"fixture_data_analysis", "prompt_keyword_matching"},
		},
		domain.Explanation{
			Decision:  fmt.Sprintf("Mapped %d channel executions", len(channels)),
			BecauseOf: []string{"channel_preferences", "audience_intent_signals"},
		},
		domain.Explanation{
			Decision:  fmt.Sprintf("Set %s campaign objective", objective),
			BecauseOf: []string{"prompt_analysis", "keyword_detection"},
		},
	)

	return plan
}

// Assemble runs the full stage sequence synchronously and returns the final
// plan. It is equivalent to draining Run's emitter and keeping the final
// event.
func (p *Planner) Assemble(ctx context.Context, inputs domain.PlanningInputs) (*domain.CampaignPlan, error) {
	emitter := p.Run(inputs)
	for {
		event, ok := emitter.Next(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("planning ended without a final plan")
		}
		if event.Err != nil {
			return nil, event.Err
		}
		if event.Final != nil {
			return event.Final, nil
		}
	}
}
