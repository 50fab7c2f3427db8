package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const hasWeighInsQuery = `
SELECT EXISTS (
  SELECT 1 FROM weigh_ins WHERE competition_id = $1
)`

// A weigh-in counts when it passed and the measured weight stays within
// tolerance of the declared weight. A passed weigh-in without a measured
// weight counts as a plain pass.
const hasValidWeighInQuery = `
SELECT EXISTS (
  SELECT 1 FROM weigh_ins
  WHERE competition_id = $1
    AND entry_id = $2
    AND status = 'PASSED'
    AND (
      weight_measured IS NULL
      OR $4::float8 IS NULL
      OR ABS(weight_measured - $4::float8) <= $3::float8
    )
)`

// HasWeighIns reports whether any weigh-in has been recorded for the
// competition. No table at all means the weigh-in gate does not apply.
func (s *Store) HasWeighIns(ctx context.Context, competitionID uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, hasWeighInsQuery, competitionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check weigh-ins: %w", err)
	}
	return exists, nil
}

// HasValidWeighIn reports whether the entry holds a passed weigh-in within
// the competition's weight tolerance of its declared weight.
func (s *Store) HasValidWeighIn(ctx context.Context, competitionID, entryID uuid.UUID, tolerance float64, declared *float64) (bool, error) {
	var ok bool
	err := s.db.QueryRowContext(ctx, hasValidWeighInQuery, competitionID, entryID, tolerance, declared).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("failed to check weigh-in for entry %s: %w", entryID, err)
	}
	return ok, nil
}
