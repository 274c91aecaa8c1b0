package planner

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/sources"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testPlanner(t *testing.T) *Planner {
	t.Helper()
	return New(
		sources.NewStatic(),
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string { return "camp_fixed" }),
	)
}

func testInputs(prompt string) domain.PlanningInputs {
	return domain.PlanningInputs{
		Prompt:           prompt,
		SelectedSources:  []string{sources.SourceWebsitePixel, sources.SourceShopify, sources.SourceFacebookPage},
		SelectedChannels: []string{"email", "sms", "push", "ads"},
		Timezone:         testTimezone,
	}
}

func drain(t *testing.T, emitter *Emitter) []StageEvent {
	t.Helper()
	var events []StageEvent
	for {
		event, ok := emitter.Next(context.Background())
		if !ok {
			return events
		}
		events = append(events, event)
	}
}

func TestRun_EventSequence(t *testing.T) {
	emitter := testPlanner(t).Run(testInputs("retention campaign for loyal customers"))

	events := drain(t, emitter)
	require.Len(t, events, 9)

	assert.Equal(t, StageProfiling, events[0].Stage)
	assert.Equal(t, StageAudiences, events[1].Stage)
	require.NotNil(t, events[2].Partial)
	assert.NotEmpty(t, events[2].Partial.Audiences)
	assert.Equal(t, StageChannels, events[3].Stage)
	require.NotNil(t, events[4].Partial)
	assert.Len(t, events[4].Partial.Channels, 4)
	assert.Equal(t, StageTiming, events[5].Stage)
	require.NotNil(t, events[6].Partial)
	require.NotNil(t, events[6].Partial.GlobalPacing)
	assert.Equal(t, StageGuardrails, events[7].Stage)
	require.NotNil(t, events[8].Final)

	assert.True(t, emitter.Done())

	// Terminated sequences yield nothing more.
	_, ok := emitter.Next(context.Background())
	assert.False(t, ok)
}

func TestAssemble_MatchesStreamedFinal(t *testing.T) {
	inputs := testInputs("reactivation campaign to win back lapsed buyers")

	synchronous, err := testPlanner(t).Assemble(context.Background(), inputs)
	require.NoError(t, err)

	events := drain(t, testPlanner(t).Run(inputs))
	streamed := events[len(events)-1].Final
	require.NotNil(t, streamed)

	if diff := cmp.Diff(synchronous, streamed); diff != "" {
		t.Errorf("synchronous and streamed plans differ (-sync +stream):\n%s", diff)
	}
}

func TestAssemble_DeterministicExceptCampaignID(t *testing.T) {
	p := New(
		sources.NewStatic(),
		WithClock(func() time.Time { return testNow }),
	)
	inputs := testInputs("retention push for repeat purchasers")

	first, err := p.Assemble(context.Background(), inputs)
	require.NoError(t, err)
	second, err := p.Assemble(context.Background(), inputs)
	require.NoError(t, err)

	assert.NotEqual(t, first.CampaignID, second.CampaignID)

	diff := cmp.Diff(first, second, cmpopts.IgnoreFields(domain.CampaignPlan{}, "CampaignID"))
	assert.Empty(t, diff)
}

func TestAssemble_ReactivationObjectiveAndKPIs(t *testing.T) {
	plan, err := testPlanner(t).Assemble(context.Background(), testInputs("reactivation campaign to win back lapsed buyers"))
	require.NoError(t, err)

	assert.Equal(t, domain.ObjectiveReactivation, plan.Objective)
	assert.Equal(t, 2.5, plan.KPIs.ROASTarget)
	assert.Equal(t, float64(40), plan.KPIs.CPAMax)
	assert.Zero(t, plan.KPIs.CTRMin)
}

func TestAssemble_PlanShape(t *testing.T) {
	plan, err := testPlanner(t).Assemble(context.Background(), testInputs("urgent flash sale this weekend"))
	require.NoError(t, err)

	assert.Equal(t, "camp_fixed", plan.CampaignID)
	assert.Equal(t, testTimezone, plan.Timezone)
	assert.NotEmpty(t, plan.Audiences)
	assert.Len(t, plan.Channels, 4)
	assert.Equal(t, testNow, plan.GlobalPacing.Start)
	assert.Equal(t, testNow.AddDate(0, 0, 7), plan.GlobalPacing.End)
	assert.NotEmpty(t, plan.Guardrails.BrandSafety)
	assert.NotEmpty(t, plan.Explainability)

	// Summary decisions follow the guardrail explanations.
	last := plan.Explainability[len(plan.Explainability)-1]
	assert.Contains(t, last.Decision, "campaign objective")
}

func TestRun_ProviderPanicEmitsErrorEvent(t *testing.T) {
	p := New(
		panickingProvider{},
		WithClock(func() time.Time { return testNow }),
	)
	emitter := p.Run(testInputs("retention campaign"))

	events := drain(t, emitter)
	require.Len(t, events, 2)
	assert.Equal(t, StageProfiling, events[0].Stage)
	require.Error(t, events[1].Err)
	assert.Contains(t, events[1].Err.Error(), "panic")
	assert.True(t, emitter.Done())
}

func TestRun_StagePanicEmitsErrorEvent(t *testing.T) {
	p := New(
		sources.NewStatic(),
		WithClock(func() time.Time { panic("clock unavailable") }),
	)
	emitter := p.Run(testInputs("retention campaign"))

	events := drain(t, emitter)
	require.Len(t, events, 3)
	assert.Equal(t, StageProfiling, events[0].Stage)
	assert.Equal(t, StageAudiences, events[1].Stage)
	require.Error(t, events[2].Err)
	assert.Contains(t, events[2].Err.Error(), `"audiences"`)
	assert.True(t, emitter.Done())

	// The error event is terminal.
	_, ok := emitter.Next(context.Background())
	assert.False(t, ok)
}

func TestAssemble_ProviderPanicReturnsError(t *testing.T) {
	p := New(
		panickingProvider{},
		WithClock(func() time.Time { return testNow }),
	)

	plan, err := p.Assemble(context.Background(), testInputs("retention campaign"))
	assert.Nil(t, plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
}

func TestNext_AbortStopsSequence(t *testing.T) {
	emitter := testPlanner(t).Run(testInputs("retention campaign"))
	ctx, cancel := context.WithCancel(context.Background())

	for i := 0; i < 4; i++ {
		_, ok := emitter.Next(ctx)
		require.True(t, ok)
	}

	cancel()

	_, ok := emitter.Next(ctx)
	assert.False(t, ok)
	assert.True(t, emitter.Done())

	// Even with a live context the aborted sequence stays closed.
	_, ok = emitter.Next(context.Background())
	assert.False(t, ok)
}

func TestAssemble_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan, err := testPlanner(t).Assemble(ctx, testInputs("retention campaign"))
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, context.Canceled)
}
