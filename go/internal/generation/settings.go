package generation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

// Settings bounds. Saves outside these reject the whole settings payload.
const (
	MinSurfaces      = 1
	MaxSurfaces      = 32
	MinFightDuration = 1
	MaxFightDuration = 30
	MinBreakDuration = 0
	MaxBreakDuration = 30
)

// GetSettings returns the stored generation settings for a competition, or
// the defaults when nothing has been saved yet.
func (a *App) GetSettings(ctx context.Context, competitionID uuid.UUID) (models.GenerationSettings, error) {
	stored, err := a.settings.GetSettings(ctx, competitionID)
	if err != nil {
		return models.GenerationSettings{}, fmt.Errorf("failed to get generation settings: %w", err)
	}
	if stored == nil {
		return models.DefaultGenerationSettings(competitionID), nil
	}
	return *stored, nil
}

// SaveSettings validates and stores generation settings. Validation fails
// closed: an invalid payload leaves the stored settings untouched.
func (a *App) SaveSettings(ctx context.Context, settings models.GenerationSettings) Result {
	if err := validateSettings(settings); err != nil {
		return failure("invalid generation settings: %v", err)
	}

	if err := a.settings.SaveSettings(ctx, settings); err != nil {
		log.Error().Err(err).Str("competition_id", settings.CompetitionID.String()).Msg("failed to save generation settings")
		return failure("failed to save generation settings: %v", err)
	}

	log.Info().
		Str("competition_id", settings.CompetitionID.String()).
		Int("surfaces", settings.SurfaceCount).
		Str("timing_mode", string(settings.TimingMode)).
		Msg("saved generation settings")
	return success("settings saved")
}

func validateSettings(s models.GenerationSettings) error {
	if s.CompetitionID == uuid.Nil {
		return fmt.Errorf("competition_id is required")
	}
	if s.SurfaceCount < MinSurfaces || s.SurfaceCount > MaxSurfaces {
		return fmt.Errorf("surface_count must be between %d and %d", MinSurfaces, MaxSurfaces)
	}
	if len(s.Surfaces) != s.SurfaceCount {
		return fmt.Errorf("expected %d surface details, got %d", s.SurfaceCount, len(s.Surfaces))
	}
	for i, surface := range s.Surfaces {
		if surface.Name == "" {
			return fmt.Errorf("surface %d has no name", i+1)
		}
		if surface.Type != models.SurfaceTypeTatami && surface.Type != models.SurfaceTypeRing {
			return fmt.Errorf("surface %d has invalid type %q", i+1, surface.Type)
		}
	}
	if s.FightDuration < MinFightDuration || s.FightDuration > MaxFightDuration {
		return fmt.Errorf("fight_duration must be between %d and %d minutes", MinFightDuration, MaxFightDuration)
	}
	if s.BreakDuration < MinBreakDuration || s.BreakDuration > MaxBreakDuration {
		return fmt.Errorf("break_duration must be between %d and %d minutes", MinBreakDuration, MaxBreakDuration)
	}
	switch s.TimingMode {
	case models.TimingModeGlobal, models.TimingModeCategory:
	default:
		return fmt.Errorf("invalid timing mode: %s", s.TimingMode)
	}
	switch s.Mode {
	case models.GenerationModeAuto, models.GenerationModeManual:
	default:
		return fmt.Errorf("invalid generation mode: %s", s.Mode)
	}
	return nil
}
