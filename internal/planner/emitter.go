package planner

import (
	"context"
	"fmt"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
)

// Stage names the pipeline phases announced on the stream.
type Stage string

const (
	StageProfiling  Stage = "profiling"
	StageAudiences  Stage = "audiences"
	StageChannels   Stage = "channels"
	StageTiming     Stage = "timing"
	StageGuardrails Stage = "guardrails"
)

// StageEvent is one frame of the progressive-disclosure protocol. Exactly one
// of Stage, Partial, Final or Err is set.
type StageEvent struct {
	Stage   Stage
	Partial *domain.PlanFragment
	Final   *domain.CampaignPlan
	Err     error
}

type emitterState int

const (
	stateStart emitterState = iota
	stateProfiling
	stateAudiences
	stateAudiencesEmitted
	stateChannels
	stateChannelsEmitted
	stateTiming
	stateTimingEmitted
	stateGuardrails
	stateDone
	stateErrored
)

// Emitter is the pipeline state machine. Each Next call advances one step:
// a status event is emitted before each stage, and the stage's work runs when
// the consumer pulls the following event, so control yields to the transport
// between stages. Terminal events are exactly one final or one error; after
// consumer abort no further events are produced.
type Emitter struct {
	planner *Planner
	inputs  domain.PlanningInputs
	state   emitterState

	signals   domain.SourceSignals
	audiences []domain.Audience
	channels  []domain.ChannelExecution
	pacing    domain.GlobalPacing
}

// Run creates the staged producer for the given inputs. Inputs must already
// be validated.
func (p *Planner) Run(inputs domain.PlanningInputs) *Emitter {
	return &Emitter{planner: p, inputs: inputs}
}

// Done reports whether the event sequence has terminated.
func (e *Emitter) Done() bool {
	return e.state == stateDone || e.state == stateErrored
}

// Next advances the state machine and yields the next event. It returns
// ok=false once the sequence has terminated or the context is canceled;
// cancellation stops stage execution without emitting anything further.
func (e *Emitter) Next(ctx context.Context) (StageEvent, bool) {
	if e.Done() {
		return StageEvent{}, false
	}
	if ctx.Err() != nil {
		e.state = stateErrored
		return StageEvent{}, false
	}

	event, err := e.advance(ctx)
	if err != nil {
		e.state = stateErrored
		if ctx.Err() != nil {
			return StageEvent{}, false
		}
		return StageEvent{Err: err}, true
	}
	if event.Final != nil {
		e.state = stateDone
		return event, true
	}
	return event, true
}

// advance runs one state transition. A panicking stage surfaces as the
// terminal error event rather than crashing the process.
func (e *Emitter) advance(ctx context.Context) (event StageEvent, err error) {
	defer func() {
		if r := recover(); r != nil {
			event = StageEvent{}
			err = fmt.Errorf("planning stage %q panicked: %v", e.currentStage(), r)
		}
	}()

	switch e.state {
	case stateStart:
		e.state = stateProfiling
		return StageEvent{Stage: StageProfiling}, nil

	case stateProfiling:
		signals, err := SummarizeSources(ctx, e.planner.provider, e.inputs.SelectedSources)
		if err != nil {
			return StageEvent{}, err
		}
		e.signals = signals
		e.state = stateAudiences
		return StageEvent{Stage: StageAudiences}, nil

	case stateAudiences:
		e.audiences = ChooseAudiences(e.signals, e.inputs.Prompt, e.planner.now())
		e.state = stateAudiencesEmitted
		return StageEvent{Partial: &domain.PlanFragment{Audiences: e.audiences}}, nil

	case stateAudiencesEmitted:
		e.state = stateChannels
		return StageEvent{Stage: StageChannels}, nil

	case stateChannels:
		executions := ChooseChannels(e.inputs.SelectedChannels, e.audiences, e.signals, e.inputs.Prompt, e.inputs.Timezone)
		executions = ChooseTiming(executions, e.inputs.Prompt, e.inputs.Timezone)
		executions = BuildMessages(executions, e.signals, e.inputs.Prompt, e.planner.now())
		e.channels = executions
		e.state = stateChannelsEmitted
		return StageEvent{Partial: &domain.PlanFragment{Channels: e.channels}}, nil

	case stateChannelsEmitted:
		e.state = stateTiming
		return StageEvent{Stage: StageTiming}, nil

	case stateTiming:
		e.pacing = e.planner.pacingSkeleton(e.planner.now())
		e.state = stateTimingEmitted
		pacing := e.pacing
		return StageEvent{Partial: &domain.PlanFragment{GlobalPacing: &pacing}}, nil

	case stateTimingEmitted:
		e.state = stateGuardrails
		return StageEvent{Stage: StageGuardrails}, nil

	case stateGuardrails:
		plan := e.planner.assemble(e.inputs, e.audiences, e.channels, e.pacing)
		return StageEvent{Final: &plan}, nil

	default:
		return StageEvent{}, fmt.Errorf("planner in unexpected state %d", e.state)
	}
}

// currentStage names the stage whose work runs from the current state.
func (e *Emitter) currentStage() Stage {
	switch e.state {
	case stateProfiling:
		return StageProfiling
	case stateAudiences:
		return StageAudiences
	case stateChannels:
		return StageChannels
	case stateTiming:
		return StageTiming
	case stateGuardrails:
		return StageGuardrails
	default:
		return ""
	}
}
