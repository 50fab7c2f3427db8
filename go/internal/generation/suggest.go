package generation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mgrosjean/fightcard/go/internal/weightclass"
)

// WeightClassSuggestion compares an entry's declared weight class against
// the resolved one. Suggestions are advisory; pairing never uses them.
type WeightClassSuggestion struct {
	EntryID  uuid.UUID          `json:"entry_id"`
	Status   weightclass.Status `json:"status"`
	Label    string             `json:"label,omitempty"`
	AgeGroup string             `json:"age_group,omitempty"`
	Age      int                `json:"age,omitempty"`
	Declared string             `json:"declared,omitempty"`
	Matches  bool               `json:"matches"`
}

// SuggestWeightClasses resolves a display weight class for every entry of
// a competition and flags mismatches with the declared class.
func (a *App) SuggestWeightClasses(ctx context.Context, competitionID uuid.UUID) ([]WeightClassSuggestion, error) {
	comp, err := a.competitions.GetCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get competition: %w", err)
	}
	entries, err := a.entries.ListEntries(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	wctx := weightclass.Context{
		Discipline: comp.Discipline,
		Reference:  comp.ReferenceDate(),
	}

	suggestions := make([]WeightClassSuggestion, 0, len(entries))
	for _, entry := range entries {
		weight := 0.0
		if entry.Weight != nil {
			weight = *entry.Weight
		}
		result := weightclass.ResolveWithDetails(entry.BirthDate, entry.Sex, weight, wctx)
		suggestions = append(suggestions, WeightClassSuggestion{
			EntryID:  entry.ID,
			Status:   result.Status,
			Label:    result.Label,
			AgeGroup: result.AgeGroup,
			Age:      result.Age,
			Declared: entry.WeightClass,
			Matches:  result.Status == weightclass.StatusOK && result.Label == entry.WeightClass,
		})
	}
	return suggestions, nil
}
