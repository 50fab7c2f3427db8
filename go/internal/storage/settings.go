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

// Generation settings live as one JSONB document per competition. The
// stored document is authoritative; columns exist only for the key.
const getSettingsQuery = `
SELECT payload
FROM generation_settings
WHERE competition_id = $1`

const upsertSettingsQuery = `
INSERT INTO generation_settings (competition_id, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (competition_id)
DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`

// GetSettings retrieves the stored generation settings of a competition,
// or nil when none have been saved.
func (s *Store) GetSettings(ctx context.Context, competitionID uuid.UUID) (*models.GenerationSettings, error) {
	var payload pqtype.NullRawMessage
	err := s.db.QueryRowContext(ctx, getSettingsQuery, competitionID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation settings: %w", err)
	}
	if !payload.Valid {
		return nil, nil
	}

	var settings models.GenerationSettings
	if err := json.Unmarshal(payload.RawMessage, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode generation settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings stores the generation settings of a competition, replacing
// any previous document.
func (s *Store) SaveSettings(ctx context.Context, settings models.GenerationSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode generation settings: %w", err)
	}

	raw := pqtype.NullRawMessage{RawMessage: payload, Valid: true}
	if _, err := s.db.ExecContext(ctx, upsertSettingsQuery, settings.CompetitionID, raw); err != nil {
		return fmt.Errorf("failed to save generation settings: %w", err)
	}
	return nil
}
