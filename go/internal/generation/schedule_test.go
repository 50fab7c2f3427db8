package generation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

func TestRecalcDraftScheduleIdempotent(t *testing.T) {
	app, store, _, compID := generatedFixture(t, 7)
	before := make([]models.Fight, len(store.draft.Fights))
	copy(before, store.draft.Fights)

	result := app.RecalcDraftSchedule(context.Background(), compID)
	require.True(t, result.OK, result.Message)

	require.Len(t, store.draft.Fights, len(before))
	for i, f := range store.draft.Fights {
		assert.Equal(t, before[i].FightNo, f.FightNo)
		assert.Equal(t, before[i].Ring, f.Ring)
		assert.Equal(t, *before[i].ScheduledAt, *f.ScheduledAt)
		assert.Equal(t, before[i].FightDuration, f.FightDuration)
	}
}

func TestRecalcDraftScheduleAppliesNewSettings(t *testing.T) {
	app, store, _, compID := generatedFixture(t, 4)

	store.settings.FightDuration = 5
	store.settings.BreakDuration = 2
	store.settings.SurfaceCount = 1
	store.settings.Surfaces = []models.SurfaceDetail{{Name: "Ring central", Type: models.SurfaceTypeRing}}

	result := app.RecalcDraftSchedule(context.Background(), compID)
	require.True(t, result.OK, result.Message)

	start := *store.comp.FightsStartAt
	for i, f := range store.draft.Fights {
		assert.Equal(t, "Ring central", f.Ring)
		assert.Equal(t, 5, f.FightDuration)
		assert.Equal(t, 2, f.FightPause)
		require.NotNil(t, f.ScheduledAt)
		assert.Equal(t, start.Add(time.Duration(i*7)*time.Minute), *f.ScheduledAt)
	}
	assert.Equal(t, 5, store.draft.Settings.FightDuration)
}

func TestRecalcDraftScheduleKeepsManualTiming(t *testing.T) {
	app, store, _, compID := generatedFixture(t, 4)

	store.draft.Fights[0].ManualTiming = true
	store.draft.Fights[0].FightDuration = 9
	store.draft.Fights[0].Rounds = 1
	store.draft.Fights[0].RoundDuration = 9

	result := app.RecalcDraftSchedule(context.Background(), compID)
	require.True(t, result.OK, result.Message)

	assert.Equal(t, 9, store.draft.Fights[0].FightDuration)
	assert.True(t, store.draft.Fights[0].ManualTiming)
	// Fights without a manual override still follow the stored settings.
	assert.Equal(t, store.settings.FightDuration, store.draft.Fights[1].FightDuration)
}

func TestRecalcDraftScheduleNoDraft(t *testing.T) {
	store, compID := fixtureStore(4)
	app, _, _ := newTestApp(store)

	result := app.RecalcDraftSchedule(context.Background(), compID)
	assert.False(t, result.OK)
}

func TestScheduleWithoutStartTime(t *testing.T) {
	store, compID := fixtureStore(4)
	store.comp.FightsStartAt = nil
	app, _, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	require.True(t, result.OK, result.Message)
	for _, f := range result.Draft.Fights {
		assert.Nil(t, f.ScheduledAt)
		assert.NotEmpty(t, f.Ring)
		assert.Positive(t, f.FightDuration)
	}
}

func TestScheduleBalancesSurfaces(t *testing.T) {
	store, compID := fixtureStore(9)
	app, _, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	require.True(t, result.OK, result.Message)

	// Total per-surface load never drifts more than one fight block apart
	// under greedy assignment.
	load := map[string]int{}
	for _, f := range result.Draft.Fights {
		load[f.Ring] += f.FightDuration + f.FightPause
	}
	require.Len(t, load, 2)
	min, max := -1, -1
	for _, l := range load {
		if min == -1 || l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	assert.LessOrEqual(t, max-min, 3)
}
