package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

// The staging draft is one JSONB document per competition, replaced whole
// on every save. Draft fights are working state, not durable rows.
const getDraftQuery = `
SELECT payload
FROM fight_drafts
WHERE competition_id = $1`

const upsertDraftQuery = `
INSERT INTO fight_drafts (competition_id, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (competition_id)
DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`

const deleteDraftQuery = `
DELETE FROM fight_drafts
WHERE competition_id = $1`

// GetDraft retrieves the staging draft of a competition, or nil when none
// exists.
func (s *Store) GetDraft(ctx context.Context, competitionID uuid.UUID) (*models.Draft, error) {
	var payload pqtype.NullRawMessage
	err := s.db.QueryRowContext(ctx, getDraftQuery, competitionID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	if !payload.Valid {
		return nil, nil
	}

	var draft models.Draft
	if err := json.Unmarshal(payload.RawMessage, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

// SaveDraft stores the staging draft of a competition, replacing any
// previous one.
func (s *Store) SaveDraft(ctx context.Context, draft models.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	raw := pqtype.NullRawMessage{RawMessage: payload, Valid: true}
	if _, err := s.db.ExecContext(ctx, upsertDraftQuery, draft.CompetitionID, raw); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// ClearDraft removes the staging draft of a competition. Clearing a
// competition without a draft is a no-op.
func (s *Store) ClearDraft(ctx context.Context, competitionID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, deleteDraftQuery, competitionID); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}
