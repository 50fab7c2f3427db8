package generation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

func TestGetSettingsDefaults(t *testing.T) {
	store, compID := fixtureStore(0)
	store.settings = nil
	app, _, _ := newTestApp(store)

	settings, err := app.GetSettings(context.Background(), compID)
	require.NoError(t, err)
	assert.Equal(t, compID, settings.CompetitionID)
	assert.Equal(t, 1, settings.SurfaceCount)
	assert.Equal(t, models.GenerationModeAuto, settings.Mode)
	assert.Equal(t, models.TimingModeGlobal, settings.TimingMode)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	store, compID := fixtureStore(0)
	store.settings = nil
	app, _, _ := newTestApp(store)

	saved := models.DefaultGenerationSettings(compID)
	saved.SurfaceCount = 3
	saved.Surfaces = []models.SurfaceDetail{
		{Name: "Tatami A", Type: models.SurfaceTypeTatami},
		{Name: "Tatami B", Type: models.SurfaceTypeTatami},
		{Name: "Ring", Type: models.SurfaceTypeRing},
	}

	result := app.SaveSettings(context.Background(), saved)
	require.True(t, result.OK, result.Message)

	got, err := app.GetSettings(context.Background(), compID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSaveSettingsValidation(t *testing.T) {
	store, compID := fixtureStore(0)
	app, _, _ := newTestApp(store)
	valid := models.DefaultGenerationSettings(compID)

	tests := []struct {
		name   string
		mutate func(*models.GenerationSettings)
	}{
		{"missing competition id", func(s *models.GenerationSettings) { s.CompetitionID = uuid.Nil }},
		{"zero surfaces", func(s *models.GenerationSettings) { s.SurfaceCount = 0 }},
		{"too many surfaces", func(s *models.GenerationSettings) { s.SurfaceCount = 33 }},
		{"surface count mismatch", func(s *models.GenerationSettings) { s.SurfaceCount = 2 }},
		{"unnamed surface", func(s *models.GenerationSettings) { s.Surfaces[0].Name = "" }},
		{"bad surface type", func(s *models.GenerationSettings) { s.Surfaces[0].Type = "CAGE" }},
		{"zero fight duration", func(s *models.GenerationSettings) { s.FightDuration = 0 }},
		{"oversized fight duration", func(s *models.GenerationSettings) { s.FightDuration = 31 }},
		{"negative break", func(s *models.GenerationSettings) { s.BreakDuration = -1 }},
		{"bad timing mode", func(s *models.GenerationSettings) { s.TimingMode = "PER_FIGHT" }},
		{"bad generation mode", func(s *models.GenerationSettings) { s.Mode = "HYBRID" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			s.Surfaces = []models.SurfaceDetail{{Name: "Surface 1", Type: models.SurfaceTypeTatami}}
			tt.mutate(&s)

			before := store.settings
			result := app.SaveSettings(context.Background(), s)
			assert.False(t, result.OK)
			assert.Equal(t, before, store.settings)
		})
	}
}
