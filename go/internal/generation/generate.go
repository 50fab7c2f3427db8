package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mgrosjean/fightcard/go/internal/category"
	"github.com/mgrosjean/fightcard/go/internal/models"
	"github.com/mgrosjean/fightcard/go/internal/pairing"
)

// GenerateDraft runs the full generation pipeline for a competition and
// stores the outcome as its staging draft, replacing any previous draft.
// The run holds the competition's generation lock for its whole duration;
// a concurrent call gets an immediate "already running" failure.
func (a *App) GenerateDraft(ctx context.Context, competitionID uuid.UUID, generatedBy string) GenerateResult {
	settings, err := a.GetSettings(ctx, competitionID)
	if err != nil {
		return generateFailure("%v", err)
	}
	if settings.Mode != models.GenerationModeAuto {
		return generateFailure("auto generation is disabled for this competition")
	}
	if settings.AutoLock {
		return generateFailure("auto generation is locked for this competition")
	}

	if !a.locks.Acquire(competitionID.String(), LockTTL) {
		return generateFailure("a generation is already running for this competition, try again later")
	}
	defer a.locks.Release(competitionID.String())

	result := a.generate(ctx, competitionID, generatedBy, settings)
	if result.OK && result.Draft != nil {
		a.publishDraftGenerated(ctx, competitionID, len(result.Draft.Fights))
	}
	return result
}

func (a *App) generate(ctx context.Context, competitionID uuid.UUID, generatedBy string, settings models.GenerationSettings) GenerateResult {
	comp, err := a.competitions.GetCompetition(ctx, competitionID)
	if err != nil {
		return generateFailure("failed to get competition: %v", err)
	}

	entries, err := a.entries.ListEntries(ctx, competitionID)
	if err != nil {
		return generateFailure("failed to list entries: %v", err)
	}

	eligible, excluded, err := a.filterEligible(ctx, entries, *comp, settings)
	if err != nil {
		return generateFailure("%v", err)
	}
	if len(eligible) == 0 {
		return GenerateResult{
			Result:           failure("no eligible entries to generate fights from (%s)", summarizeReasons(excluded)),
			ExclusionReasons: excluded,
		}
	}

	categories, err := a.categories.ListCategories(ctx, competitionID)
	if err != nil {
		return generateFailure("failed to list categories: %v", err)
	}

	groups, warnings := groupByCategory(eligible, categories, comp.ReferenceDate())

	startNo, err := a.fights.MaxFightNo(ctx, competitionID)
	if err != nil {
		return generateFailure("failed to get max fight number: %v", err)
	}

	// The counter carries across groups: numbering is globally contiguous
	// per competition, seeded past the last persisted fight.
	counter := startNo + 1
	var fights []models.Fight
	for _, group := range groups {
		fights = append(fights, buildGroupFights(*comp, group, &counter)...)
	}

	profiles, err := a.profiles.ListTimingProfiles(ctx)
	if err != nil {
		return generateFailure("failed to list timing profiles: %v", err)
	}
	assignSurfacesAndSchedule(fights, settings, *comp, profiles, categoryIndex(categories))

	draft := models.Draft{
		CompetitionID: competitionID,
		GeneratedAt:   a.clock.Now(),
		GeneratedBy:   generatedBy,
		Settings:      settings,
		Stats: models.DraftStats{
			EntriesConsidered: len(entries),
			EntriesEligible:   len(eligible),
			EntriesExcluded:   len(entries) - len(eligible),
			Groups:            len(groups),
			Fights:            len(fights),
		},
		Warnings: warnings,
		Fights:   fights,
	}
	if err := a.drafts.SaveDraft(ctx, draft); err != nil {
		return generateFailure("failed to save draft: %v", err)
	}

	log.Info().
		Str("competition_id", competitionID.String()).
		Int("entries_eligible", len(eligible)).
		Int("groups", len(groups)).
		Int("fights", len(fights)).
		Msg("generated fight draft")

	return GenerateResult{
		Result:           success("generated %d fights in %d groups", len(fights), len(groups)),
		Draft:            &draft,
		ExclusionReasons: excluded,
	}
}

// categoryGroup is one category's eligible entries, in entry-list order.
type categoryGroup struct {
	CategoryID uuid.UUID
	Entries    []uuid.UUID
}

// groupByCategory buckets entries per category, auto-assigning one to
// entries that lack an explicit category. Entries with no resolvable
// category are dropped and surfaced as warnings, never silently discarded.
// Groups come back in order of first appearance in the entry list.
func groupByCategory(entries []models.Entry, categories []models.Category, ref time.Time) ([]categoryGroup, []string) {
	var groups []categoryGroup
	var warnings []string
	index := make(map[uuid.UUID]int)

	for _, entry := range entries {
		catID := entry.CategoryID
		if catID == nil {
			matched := category.MatchCategory(categories, entry, ref)
			if matched == nil {
				warnings = append(warnings, fmt.Sprintf("entry %s: no matching category, excluded from generation", entry.ID))
				continue
			}
			catID = &matched.ID
		}

		i, ok := index[*catID]
		if !ok {
			i = len(groups)
			index[*catID] = i
			groups = append(groups, categoryGroup{CategoryID: *catID})
		}
		groups[i].Entries = append(groups[i].Entries, entry.ID)
	}
	return groups, warnings
}

// buildGroupFights builds the fights of one category group according to its
// tournament structure, numbering them from *counter onward.
func buildGroupFights(comp models.Competition, group categoryGroup, counter *int) []models.Fight {
	catID := group.CategoryID
	newFight := func(roundNo int, pair pairing.Pair) models.Fight {
		f := models.Fight{
			ID:            uuid.New(),
			CompetitionID: comp.ID,
			CategoryID:    &catID,
			FightNo:       *counter,
			RoundNo:       roundNo,
			RedEntryID:    pair.Red,
			BlueEntryID:   pair.Blue,
			Status:        models.FightStatusScheduled,
		}
		*counter++
		return f
	}

	var fights []models.Fight
	switch pairing.StructureFor(len(group.Entries)) {
	case pairing.StructureSingle:
		red, blue := group.Entries[0], group.Entries[1]
		fights = append(fights, newFight(models.RoundPool, pairing.Pair{Red: &red, Blue: &blue}))

	case pairing.StructureRoundRobin:
		for _, pair := range pairing.RoundRobinPairs(group.Entries) {
			fights = append(fights, newFight(models.RoundPool, pair))
		}

	case pairing.StructurePoolsPlusBracket:
		pools := pairing.SplitPools(group.Entries, pairing.MaxPoolSize)
		winners := make([]uuid.UUID, 0, len(pools))
		for _, pool := range pools {
			for _, pair := range pairing.RoundRobinPairs(pool) {
				fights = append(fights, newFight(models.RoundPool, pair))
			}
			// The first entry of each pool advances as its representative.
			winners = append(winners, pool[0])
		}
		for _, pair := range crossPoolPairs(winners) {
			fights = append(fights, newFight(models.RoundBracket, pair))
		}

	case pairing.StructureBracket:
		for _, pair := range fullBracketPairs(group.Entries) {
			fights = append(fights, newFight(models.RoundPool, pair))
		}
	}
	return fights
}

// fullBracketPairs lays out a complete single-elimination bracket: the
// opening round (byes included) plus the empty slots of every later round,
// NextPowerOfTwo(n)-1 fights in total.
func fullBracketPairs(entries []uuid.UUID) []pairing.Pair {
	pairs := pairing.BracketPairs(entries)
	for slots := len(pairs) / 2; slots >= 1; slots /= 2 {
		for i := 0; i < slots; i++ {
			pairs = append(pairs, pairing.Pair{})
		}
	}
	return pairs
}

// crossPoolPairs builds the elimination stage among pool winners. Opening
// byes are not played out as fights here (a lone winner advances straight
// through), so the stage always yields len(winners)-1 fights.
func crossPoolPairs(winners []uuid.UUID) []pairing.Pair {
	if len(winners) < 2 {
		return nil
	}
	opening := pairing.BracketPairs(winners)
	var pairs []pairing.Pair
	for _, p := range opening {
		if p.Red != nil && p.Blue != nil {
			pairs = append(pairs, p)
		}
	}
	for slots := len(opening) / 2; slots >= 1; slots /= 2 {
		for i := 0; i < slots; i++ {
			pairs = append(pairs, pairing.Pair{})
		}
	}
	return pairs
}

// categoryIndex maps category ids to their definitions for timing lookups.
func categoryIndex(categories []models.Category) map[uuid.UUID]models.Category {
	index := make(map[uuid.UUID]models.Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index
}
