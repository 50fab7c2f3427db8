package generation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mgrosjean/fightcard/go/internal/models"
	"github.com/mgrosjean/fightcard/go/internal/timing"
)

// assignSurfacesAndSchedule distributes fights over the configured surfaces
// and resolves each fight's timing. Surfaces are independent timelines;
// every fight goes to the currently earliest one (greedy list scheduling,
// which keeps the maximum surface finish within one fight of the minimum).
// With no configured start time fights stay unscheduled but still get a
// surface and duration.
func assignSurfacesAndSchedule(fights []models.Fight, settings models.GenerationSettings, comp models.Competition, profiles []models.TimingProfile, categories map[uuid.UUID]models.Category) {
	surfaces := settings.Surfaces
	if len(surfaces) == 0 {
		surfaces = []models.SurfaceDetail{{Name: "Surface 1", Type: models.SurfaceTypeTatami}}
	}

	// Minutes of load accumulated per surface. The earliest timeline is the
	// least-loaded surface since all surfaces share the same start.
	load := make([]int, len(surfaces))

	for i := range fights {
		s := 0
		for j := 1; j < len(surfaces); j++ {
			if load[j] < load[s] {
				s = j
			}
		}
		surface := surfaces[s]

		resolved := resolveFightTiming(&fights[i], settings, comp, surface.Type, profiles, categories)
		applyTiming(&fights[i], resolved)
		fights[i].Ring = surface.Name

		if comp.FightsStartAt != nil {
			at := comp.FightsStartAt.Add(time.Duration(load[s]) * time.Minute)
			fights[i].ScheduledAt = &at
		} else {
			fights[i].ScheduledAt = nil
		}
		load[s] += resolved.FightDuration + resolved.FightPause
	}
}

// resolveFightTiming picks the fight's timing by priority: a manually set
// duration wins, then the best-matching timing profile in category mode,
// then the global settings fallback.
func resolveFightTiming(f *models.Fight, settings models.GenerationSettings, comp models.Competition, surface models.SurfaceType, profiles []models.TimingProfile, categories map[uuid.UUID]models.Category) timing.Resolved {
	if f.ManualTiming && f.FightDuration > 0 {
		pause := f.FightPause
		if pause <= 0 {
			pause = settings.BreakDuration
		}
		return timing.Resolved{
			ProfileID:     f.TimingProfileID,
			RoundDuration: f.RoundDuration,
			Rounds:        f.Rounds,
			BreakDuration: f.BreakDuration,
			FightPause:    pause,
			FightDuration: f.FightDuration,
		}
	}

	if settings.TimingMode == models.TimingModeCategory && f.CategoryID != nil {
		if cat, ok := categories[*f.CategoryID]; ok {
			if profile := timing.BestMatch(profiles, cat, comp, surface); profile != nil {
				return timing.FromProfile(*profile)
			}
		}
	}
	return timing.FromGlobal(settings)
}

func applyTiming(f *models.Fight, r timing.Resolved) {
	f.TimingProfileID = r.ProfileID
	f.RoundDuration = r.RoundDuration
	f.Rounds = r.Rounds
	f.BreakDuration = r.BreakDuration
	f.FightPause = r.FightPause
	f.FightDuration = r.FightDuration
}

// RecalcDraftSchedule re-runs only the surface and time assignment over the
// existing draft fights, using the currently stored settings. Pairings and
// fight numbers are untouched.
func (a *App) RecalcDraftSchedule(ctx context.Context, competitionID uuid.UUID) Result {
	draft, err := a.drafts.GetDraft(ctx, competitionID)
	if err != nil {
		return failure("failed to get draft: %v", err)
	}
	if draft == nil || len(draft.Fights) == 0 {
		return failure("no draft to recalculate for this competition")
	}

	comp, err := a.competitions.GetCompetition(ctx, competitionID)
	if err != nil {
		return failure("failed to get competition: %v", err)
	}
	settings, err := a.GetSettings(ctx, competitionID)
	if err != nil {
		return failure("%v", err)
	}
	categories, err := a.categories.ListCategories(ctx, competitionID)
	if err != nil {
		return failure("failed to list categories: %v", err)
	}
	profiles, err := a.profiles.ListTimingProfiles(ctx)
	if err != nil {
		return failure("failed to list timing profiles: %v", err)
	}

	assignSurfacesAndSchedule(draft.Fights, settings, *comp, profiles, categoryIndex(categories))
	draft.Settings = settings

	if err := a.drafts.SaveDraft(ctx, *draft); err != nil {
		return failure("failed to save draft: %v", err)
	}

	log.Info().
		Str("competition_id", competitionID.String()).
		Int("fights", len(draft.Fights)).
		Msg("recalculated draft schedule")
	return success("schedule recalculated over %d fights", len(draft.Fights))
}
