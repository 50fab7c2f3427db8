package generation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

// Exclusion reasons, aggregated per run for operator feedback.
const (
	ReasonNotValidated   = "entry not validated"
	ReasonMissingWeight  = "missing or non-positive weight"
	ReasonMissingClass   = "missing weight class"
	ReasonMissingLicense = "missing license"
	ReasonMissingClub    = "missing club"
	ReasonNoValidWeighIn = "no valid weigh-in within tolerance"
)

// checkEligibility evaluates the scheduling rules for one entry. Every
// failing rule is reported; the run is never interrupted by one bad entry.
func (a *App) checkEligibility(ctx context.Context, entry models.Entry, comp models.Competition, enforceWeighIn bool) ([]string, error) {
	var reasons []string

	if entry.Status != models.EntryStatusValidated {
		reasons = append(reasons, ReasonNotValidated)
	}
	if entry.Weight == nil || *entry.Weight <= 0 {
		reasons = append(reasons, ReasonMissingWeight)
	}
	if entry.WeightClass == "" {
		reasons = append(reasons, ReasonMissingClass)
	}
	if entry.LicenseeID == nil || *entry.LicenseeID == uuid.Nil {
		reasons = append(reasons, ReasonMissingLicense)
	}
	if entry.ClubID == nil || *entry.ClubID == uuid.Nil {
		reasons = append(reasons, ReasonMissingClub)
	}

	if enforceWeighIn {
		ok, err := a.weighIns.HasValidWeighIn(ctx, comp.ID, entry.ID, comp.WeightTolerance, entry.Weight)
		if err != nil {
			return nil, fmt.Errorf("failed to check weigh-in for entry %s: %w", entry.ID, err)
		}
		if !ok {
			reasons = append(reasons, ReasonNoValidWeighIn)
		}
	}

	return reasons, nil
}

// weighInEnforced reports whether the weigh-in gate applies: a weigh-in
// table must exist and unweighed entries must not be explicitly allowed.
func (a *App) weighInEnforced(ctx context.Context, comp models.Competition, settings models.GenerationSettings) (bool, error) {
	if settings.AllowUnweighed {
		return false, nil
	}
	exists, err := a.weighIns.HasWeighIns(ctx, comp.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check weigh-in table: %w", err)
	}
	return exists, nil
}

// filterEligible splits entries into schedulable ones and a per-reason
// exclusion count.
func (a *App) filterEligible(ctx context.Context, entries []models.Entry, comp models.Competition, settings models.GenerationSettings) ([]models.Entry, map[string]int, error) {
	enforce, err := a.weighInEnforced(ctx, comp, settings)
	if err != nil {
		return nil, nil, err
	}

	eligible := make([]models.Entry, 0, len(entries))
	excluded := make(map[string]int)
	for _, entry := range entries {
		reasons, err := a.checkEligibility(ctx, entry, comp, enforce)
		if err != nil {
			return nil, nil, err
		}
		if len(reasons) == 0 {
			eligible = append(eligible, entry)
			continue
		}
		for _, r := range reasons {
			excluded[r]++
		}
	}
	return eligible, excluded, nil
}

// GetGenerationCounters runs the eligibility filter without generating
// anything, for pre-flight display.
func (a *App) GetGenerationCounters(ctx context.Context, competitionID uuid.UUID) (Counters, error) {
	comp, err := a.competitions.GetCompetition(ctx, competitionID)
	if err != nil {
		return Counters{}, fmt.Errorf("failed to get competition: %w", err)
	}
	settings, err := a.GetSettings(ctx, competitionID)
	if err != nil {
		return Counters{}, err
	}
	entries, err := a.entries.ListEntries(ctx, competitionID)
	if err != nil {
		return Counters{}, fmt.Errorf("failed to list entries: %w", err)
	}

	eligible, excluded, err := a.filterEligible(ctx, entries, *comp, settings)
	if err != nil {
		return Counters{}, err
	}
	return Counters{
		Considered:       len(entries),
		Eligible:         len(eligible),
		Excluded:         len(entries) - len(eligible),
		ExclusionReasons: excluded,
	}, nil
}

func summarizeReasons(reasons map[string]int) string {
	if len(reasons) == 0 {
		return "no entries found"
	}
	out := ""
	for reason, count := range reasons {
		if out != "" {
			out += "; "
		}
		out += fmt.Sprintf("%s: %d", reason, count)
	}
	return out
}
