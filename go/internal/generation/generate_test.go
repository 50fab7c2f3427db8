package generation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

func fixtureStore(entryCount int) (*fakeStore, uuid.UUID) {
	compID := uuid.New()
	startAt := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	cat := models.Category{ID: uuid.New(), CompetitionID: &compID, Name: "Senior -63"}

	store := &fakeStore{
		comp: &models.Competition{
			ID:            compID,
			Name:          "Open de Printemps",
			Discipline:    models.DisciplineLightContact,
			Season:        2026,
			Status:        models.CompetitionStatusOpen,
			FightsStartAt: &startAt,
		},
		categories: []models.Category{cat},
		settings: &models.GenerationSettings{
			CompetitionID: compID,
			SurfaceCount:  2,
			Surfaces: []models.SurfaceDetail{
				{Name: "Tatami A", Type: models.SurfaceTypeTatami},
				{Name: "Tatami B", Type: models.SurfaceTypeTatami},
			},
			FightDuration: 2,
			BreakDuration: 1,
			TimingMode:    models.TimingModeGlobal,
			Mode:          models.GenerationModeAuto,
		},
	}
	for i := 0; i < entryCount; i++ {
		store.entries = append(store.entries, validEntry(compID, cat.ID, 60+float64(i)))
	}
	return store, compID
}

func TestGenerateDraftSevenEntriesTwoSurfaces(t *testing.T) {
	store, compID := fixtureStore(7)
	app, pub, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	require.True(t, result.OK, result.Message)
	require.NotNil(t, result.Draft)

	// 7 entries split into pools of 4 and 3: 6+3 round-robin fights, plus
	// one cross-pool final between the two winners.
	fights := result.Draft.Fights
	require.Len(t, fights, 10)
	assert.Equal(t, 10, result.Draft.Stats.Fights)
	assert.Equal(t, 7, result.Draft.Stats.EntriesConsidered)
	assert.Equal(t, 7, result.Draft.Stats.EntriesEligible)
	assert.Equal(t, 1, result.Draft.Stats.Groups)
	assert.Empty(t, result.Draft.Warnings)

	for i, f := range fights {
		assert.Equal(t, i+1, f.FightNo)
		assert.Equal(t, 2, f.FightDuration)
		assert.Equal(t, 1, f.FightPause)
	}
	assert.Equal(t, models.RoundBracket, fights[9].RoundNo)
	require.NotNil(t, fights[9].RedEntryID)
	require.NotNil(t, fights[9].BlueEntryID)

	// Greedy assignment alternates the two equally loaded surfaces, so each
	// surface advances in 3-minute blocks from the competition start.
	start := *store.comp.FightsStartAt
	for i, f := range fights {
		if i%2 == 0 {
			assert.Equal(t, "Tatami A", f.Ring)
		} else {
			assert.Equal(t, "Tatami B", f.Ring)
		}
		require.NotNil(t, f.ScheduledAt)
		want := start.Add(time.Duration(i/2*3) * time.Minute)
		assert.Equal(t, want, *f.ScheduledAt, "fight %d", f.FightNo)
	}

	assert.Equal(t, []int{10}, pub.draftsGenerated)
	require.NotNil(t, store.draft)
	assert.Len(t, store.draft.Fights, 10)
}

func TestGenerateDraftLockHeld(t *testing.T) {
	store, compID := fixtureStore(4)
	app, _, _ := newTestApp(store)

	require.True(t, app.locks.Acquire(compID.String(), LockTTL))
	defer app.locks.Release(compID.String())

	result := app.GenerateDraft(context.Background(), compID, "operator")
	assert.False(t, result.OK)
	assert.Contains(t, result.Message, "already running")
	assert.Nil(t, store.draft)
}

func TestGenerateDraftReleasesLock(t *testing.T) {
	store, _ := fixtureStore(4)
	compID := store.comp.ID
	app, _, _ := newTestApp(store)

	require.True(t, app.GenerateDraft(context.Background(), compID, "operator").OK)
	require.True(t, app.GenerateDraft(context.Background(), compID, "operator").OK)
}

func TestGenerateDraftManualModeRejected(t *testing.T) {
	store, compID := fixtureStore(4)
	store.settings.Mode = models.GenerationModeManual
	app, _, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	assert.False(t, result.OK)
	assert.Contains(t, result.Message, "disabled")
}

func TestGenerateDraftAutoLockRejected(t *testing.T) {
	store, compID := fixtureStore(4)
	store.settings.AutoLock = true
	app, _, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	assert.False(t, result.OK)
	assert.Contains(t, result.Message, "locked")
}

func TestGenerateDraftNoEligibleEntries(t *testing.T) {
	store, compID := fixtureStore(3)
	for i := range store.entries {
		store.entries[i].Status = models.EntryStatusSubmitted
	}
	app, pub, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	assert.False(t, result.OK)
	assert.Equal(t, 3, result.ExclusionReasons[ReasonNotValidated])
	assert.Empty(t, pub.draftsGenerated)
	assert.Nil(t, store.draft)
}

func TestGenerateDraftSkipsIncompleteEntries(t *testing.T) {
	store, compID := fixtureStore(5)
	store.entries[0].Weight = nil
	store.entries[1].WeightClass = ""
	app, _, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	require.True(t, result.OK, result.Message)
	assert.Equal(t, 3, result.Draft.Stats.EntriesEligible)
	assert.Equal(t, 2, result.Draft.Stats.EntriesExcluded)
	assert.Equal(t, 1, result.ExclusionReasons[ReasonMissingWeight])
	assert.Equal(t, 1, result.ExclusionReasons[ReasonMissingClass])
	// 3 eligible entries play a round-robin.
	assert.Len(t, result.Draft.Fights, 3)
}

func TestGenerateDraftWeighInGate(t *testing.T) {
	store, compID := fixtureStore(4)
	store.hasWeighIns = true
	store.validWeighIns = map[uuid.UUID]bool{
		store.entries[0].ID: true,
		store.entries[1].ID: true,
	}
	app, _, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	require.True(t, result.OK, result.Message)
	assert.Equal(t, 2, result.Draft.Stats.EntriesEligible)
	assert.Equal(t, 2, result.ExclusionReasons[ReasonNoValidWeighIn])

	// AllowUnweighed bypasses the gate entirely.
	store.settings.AllowUnweighed = true
	result = app.GenerateDraft(context.Background(), compID, "operator")
	require.True(t, result.OK, result.Message)
	assert.Equal(t, 4, result.Draft.Stats.EntriesEligible)
}

func TestGenerateDraftAutoAssignsCategories(t *testing.T) {
	store, compID := fixtureStore(0)
	ageMin, ageMax := 18, 40
	wMax := 70.0
	store.categories = []models.Category{{
		ID:        uuid.New(),
		Name:      "Senior -70",
		AgeMin:    &ageMin,
		AgeMax:    &ageMax,
		WeightMax: &wMax,
	}}
	a := validEntry(compID, uuid.Nil, 65)
	a.CategoryID = nil
	b := validEntry(compID, uuid.Nil, 68)
	b.CategoryID = nil
	heavy := validEntry(compID, uuid.Nil, 92)
	heavy.CategoryID = nil
	store.entries = []models.Entry{a, b, heavy}
	app, _, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	require.True(t, result.OK, result.Message)
	require.Len(t, result.Draft.Fights, 1)
	assert.Equal(t, store.categories[0].ID, *result.Draft.Fights[0].CategoryID)
	require.Len(t, result.Draft.Warnings, 1)
	assert.Contains(t, result.Draft.Warnings[0], heavy.ID.String())
}

func TestGenerateDraftNumbersAfterCommittedFights(t *testing.T) {
	store, compID := fixtureStore(2)
	store.maxFightNo = 17
	app, _, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	require.True(t, result.OK, result.Message)
	require.Len(t, result.Draft.Fights, 1)
	assert.Equal(t, 18, result.Draft.Fights[0].FightNo)
}

func TestGenerateDraftCategoryTimingMode(t *testing.T) {
	store, compID := fixtureStore(2)
	store.settings.TimingMode = models.TimingModeCategory
	profile := models.TimingProfile{
		ID:            uuid.New(),
		Name:          "LC standard",
		Discipline:    models.DisciplineLightContact,
		RoundDuration: 2,
		Rounds:        3,
		BreakDuration: 1,
		FightPause:    2,
	}
	mismatched := models.TimingProfile{
		ID:         uuid.New(),
		Name:       "FC title",
		Discipline: models.DisciplineFullContact,
		Rounds:     5,
	}
	store.profiles = []models.TimingProfile{mismatched, profile}
	app, _, _ := newTestApp(store)

	result := app.GenerateDraft(context.Background(), compID, "operator")
	require.True(t, result.OK, result.Message)
	f := result.Draft.Fights[0]
	require.NotNil(t, f.TimingProfileID)
	assert.Equal(t, profile.ID, *f.TimingProfileID)
	assert.Equal(t, 3, f.Rounds)
	assert.Equal(t, 8, f.FightDuration)
	assert.Equal(t, 2, f.FightPause)
}

func TestGetGenerationCounters(t *testing.T) {
	store, compID := fixtureStore(4)
	store.entries[3].ClubID = nil
	app, _, _ := newTestApp(store)

	counters, err := app.GetGenerationCounters(context.Background(), compID)
	require.NoError(t, err)
	assert.Equal(t, 4, counters.Considered)
	assert.Equal(t, 3, counters.Eligible)
	assert.Equal(t, 1, counters.Excluded)
	assert.Equal(t, 1, counters.ExclusionReasons[ReasonMissingClub])
}
