// Package timing resolves the round format of a fight from the timing
// profile presets. Matching is pure; loading profiles is the caller's job.
package timing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/mgrosjean/fightcard/go/internal/models"
)

// Resolved is the timing actually stamped onto a fight. Durations are
// minutes.
type Resolved struct {
	ProfileID     *uuid.UUID
	RoundDuration int
	Rounds        int
	BreakDuration int
	FightPause    int
	FightDuration int
}

// FromProfile converts a matched profile into fight timing fields.
func FromProfile(p models.TimingProfile) Resolved {
	id := p.ID
	return Resolved{
		ProfileID:     &id,
		RoundDuration: p.RoundDuration,
		Rounds:        p.Rounds,
		BreakDuration: p.BreakDuration,
		FightPause:    p.FightPause,
		FightDuration: p.FightDuration(),
	}
}

// FromGlobal falls back to the competition-wide settings: one undivided
// round of the configured fight duration, paused by the configured break.
func FromGlobal(settings models.GenerationSettings) Resolved {
	return Resolved{
		Rounds:        1,
		RoundDuration: settings.FightDuration,
		FightPause:    settings.BreakDuration,
		FightDuration: settings.FightDuration,
	}
}

// BestMatch scores every profile against the category and competition and
// returns the highest-scoring one, or nil when nothing survives. A profile
// with a populated constraint that contradicts the inputs is excluded
// outright, not merely penalized. The first profile found wins ties.
func BestMatch(profiles []models.TimingProfile, cat models.Category, comp models.Competition, surface models.SurfaceType) *models.TimingProfile {
	var best *models.TimingProfile
	bestScore := -1
	for i := range profiles {
		score, ok := scoreProfile(profiles[i], cat, comp, surface)
		if !ok {
			continue
		}
		if score > bestScore {
			best = &profiles[i]
			bestScore = score
		}
	}
	return best
}

func scoreProfile(p models.TimingProfile, cat models.Category, comp models.Competition, surface models.SurfaceType) (int, bool) {
	score := 0

	if p.Discipline != "" {
		if p.Discipline != comp.Discipline {
			return 0, false
		}
		score++
	}
	if p.CompetitionType != "" {
		if p.CompetitionType != comp.CompetitionType {
			return 0, false
		}
		score++
	}
	if p.SurfaceType != "" {
		if surface != "" && p.SurfaceType != surface {
			return 0, false
		}
		score++
	}
	if p.AgeMin != nil || p.AgeMax != nil {
		if !ageRangesOverlap(p.AgeMin, p.AgeMax, cat.AgeMin, cat.AgeMax) {
			return 0, false
		}
		score++
	}
	if p.Level != "" {
		if cat.Level != "" {
			if !strings.EqualFold(p.Level, cat.Level) {
				return 0, false
			}
			score++
		}
	}
	if p.Format != "" {
		if cat.Format != "" {
			if !strings.EqualFold(p.Format, cat.Format) {
				return 0, false
			}
			score++
		}
	}

	return score, true
}

// ageRangesOverlap treats nil bounds as open ends.
func ageRangesOverlap(aMin, aMax, bMin, bMax *int) bool {
	if aMin != nil && bMax != nil && *aMin > *bMax {
		return false
	}
	if aMax != nil && bMin != nil && *aMax < *bMin {
		return false
	}
	return true
}
