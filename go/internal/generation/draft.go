package generation

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

// ReorderMode selects the key draft fights are resorted by.
type ReorderMode string

const (
	ReorderByFightNo  ReorderMode = "FIGHT_NO"
	ReorderByTime     ReorderMode = "TIME"
	ReorderByCategory ReorderMode = "CATEGORY"
)

// GetDraft returns the competition's staging draft, or nil when none exists.
func (a *App) GetDraft(ctx context.Context, competitionID uuid.UUID) (*models.Draft, error) {
	draft, err := a.drafts.GetDraft(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return draft, nil
}

// ClearDraft destroys the competition's staging draft.
func (a *App) ClearDraft(ctx context.Context, competitionID uuid.UUID) Result {
	if err := a.drafts.ClearDraft(ctx, competitionID); err != nil {
		return failure("failed to clear draft: %v", err)
	}
	log.Info().Str("competition_id", competitionID.String()).Msg("cleared fight draft")
	return success("draft cleared")
}

// ReorderFights resorts the draft fights by the given mode and renumbers
// them contiguously from the minimum existing fight number.
func (a *App) ReorderFights(ctx context.Context, competitionID uuid.UUID, mode ReorderMode) Result {
	draft, err := a.drafts.GetDraft(ctx, competitionID)
	if err != nil {
		return failure("failed to get draft: %v", err)
	}
	if draft == nil || len(draft.Fights) == 0 {
		return failure("no draft to reorder for this competition")
	}

	fights := draft.Fights
	switch mode {
	case ReorderByFightNo:
		sort.SliceStable(fights, func(i, j int) bool { return fights[i].FightNo < fights[j].FightNo })
	case ReorderByTime:
		sort.SliceStable(fights, func(i, j int) bool {
			ti, tj := fights[i].ScheduledAt, fights[j].ScheduledAt
			switch {
			case ti == nil && tj == nil:
				return fights[i].FightNo < fights[j].FightNo
			case ti == nil:
				return false
			case tj == nil:
				return true
			case ti.Equal(*tj):
				return fights[i].FightNo < fights[j].FightNo
			default:
				return ti.Before(*tj)
			}
		})
	case ReorderByCategory:
		sort.SliceStable(fights, func(i, j int) bool {
			ki, kj := categoryKey(fights[i]), categoryKey(fights[j])
			if ki == kj {
				return fights[i].FightNo < fights[j].FightNo
			}
			return ki < kj
		})
	default:
		return failure("unknown reorder mode: %s", mode)
	}

	renumberFrom(fights, minFightNo(fights))

	if err := a.drafts.SaveDraft(ctx, *draft); err != nil {
		return failure("failed to save draft: %v", err)
	}
	return success("reordered %d fights by %s", len(fights), mode)
}

// UpdateDraftOrder applies an operator-supplied explicit ordering: fightNos
// lists every draft fight number in the desired sequence. Unknown or
// missing numbers reject the whole update.
func (a *App) UpdateDraftOrder(ctx context.Context, competitionID uuid.UUID, fightNos []int) Result {
	draft, err := a.drafts.GetDraft(ctx, competitionID)
	if err != nil {
		return failure("failed to get draft: %v", err)
	}
	if draft == nil || len(draft.Fights) == 0 {
		return failure("no draft to reorder for this competition")
	}
	if len(fightNos) != len(draft.Fights) {
		return failure("order lists %d fights, draft has %d", len(fightNos), len(draft.Fights))
	}

	byNo := make(map[int]models.Fight, len(draft.Fights))
	for _, f := range draft.Fights {
		byNo[f.FightNo] = f
	}

	reordered := make([]models.Fight, 0, len(fightNos))
	for _, no := range fightNos {
		f, ok := byNo[no]
		if !ok {
			return failure("unknown fight number in order: %d", no)
		}
		delete(byNo, no)
		reordered = append(reordered, f)
	}

	renumberFrom(reordered, minFightNo(reordered))
	draft.Fights = reordered

	if err := a.drafts.SaveDraft(ctx, *draft); err != nil {
		return failure("failed to save draft: %v", err)
	}
	return success("draft order updated")
}

// SwapDraftCorners exchanges the red and blue corners of one draft fight.
func (a *App) SwapDraftCorners(ctx context.Context, competitionID uuid.UUID, fightNo int) Result {
	draft, err := a.drafts.GetDraft(ctx, competitionID)
	if err != nil {
		return failure("failed to get draft: %v", err)
	}
	if draft == nil || len(draft.Fights) == 0 {
		return failure("no draft for this competition")
	}

	for i := range draft.Fights {
		if draft.Fights[i].FightNo != fightNo {
			continue
		}
		draft.Fights[i].RedEntryID, draft.Fights[i].BlueEntryID = draft.Fights[i].BlueEntryID, draft.Fights[i].RedEntryID
		if err := a.drafts.SaveDraft(ctx, *draft); err != nil {
			return failure("failed to save draft: %v", err)
		}
		return success("swapped corners of fight %d", fightNo)
	}
	return failure("no draft fight with number %d", fightNo)
}

// ValidateAndApplyDraft persists the draft's fights as durable records with
// freshly assigned sequential numbers and clears the draft. The insert runs
// as one unit at the storage layer: all fights commit or none do. Commits
// are append-only; replacing existing fights is intentionally unsupported.
func (a *App) ValidateAndApplyDraft(ctx context.Context, competitionID uuid.UUID) Result {
	draft, err := a.drafts.GetDraft(ctx, competitionID)
	if err != nil {
		return failure("failed to get draft: %v", err)
	}
	if draft == nil || len(draft.Fights) == 0 {
		return failure("no draft to apply for this competition")
	}

	for _, f := range draft.Fights {
		if f.CompetitionID == uuid.Nil {
			return failure("draft contains a fight without a competition id")
		}
		if f.FightNo <= 0 {
			return failure("draft contains a fight without a fight number")
		}
	}

	// A draft referencing a competition that no longer resolves blocks the
	// commit instead of partially applying.
	if _, err := a.competitions.GetCompetition(ctx, competitionID); err != nil {
		return failure("draft competition no longer resolves: %v", err)
	}

	startNo, err := a.fights.MaxFightNo(ctx, competitionID)
	if err != nil {
		return failure("failed to get max fight number: %v", err)
	}

	fights := make([]models.Fight, len(draft.Fights))
	copy(fights, draft.Fights)
	renumberFrom(fights, startNo+1)

	if err := a.fights.InsertFights(ctx, fights); err != nil {
		return failure("failed to persist fights: %v", err)
	}
	if err := a.drafts.ClearDraft(ctx, competitionID); err != nil {
		// The fights are committed; a stale draft is recoverable by hand.
		log.Error().Err(err).Str("competition_id", competitionID.String()).Msg("failed to clear draft after commit")
	}

	a.publishFightsCommitted(ctx, competitionID, len(fights))

	log.Info().
		Str("competition_id", competitionID.String()).
		Int("fights", len(fights)).
		Int("first_fight_no", startNo+1).
		Msg("committed fight draft")
	return success("committed %d fights", len(fights))
}

func minFightNo(fights []models.Fight) int {
	if len(fights) == 0 {
		return 1
	}
	min := fights[0].FightNo
	for _, f := range fights[1:] {
		if f.FightNo < min {
			min = f.FightNo
		}
	}
	return min
}

func renumberFrom(fights []models.Fight, start int) {
	for i := range fights {
		fights[i].FightNo = start + i
	}
}

func categoryKey(f models.Fight) string {
	if f.CategoryID == nil {
		return ""
	}
	return f.CategoryID.String()
}
