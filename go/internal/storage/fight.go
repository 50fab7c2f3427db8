package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mgrosjean/fightcard/go/internal/models"
	"github.com/mgrosjean/fightcard/go/internal/sqlutil"
)

const maxFightNoQuery = `
SELECT COALESCE(MAX(fight_no), 0)
FROM fights
WHERE competition_id = $1`

const insertFightQuery = `
INSERT INTO fights (
  id, competition_id, category_id, fight_no, ring, round_no,
  red_entry_id, blue_entry_id, winner_entry_id, status, scheduled_at,
  timing_profile_id, manual_timing, round_duration, rounds,
  break_duration, fight_pause, fight_duration
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`

const listFightsQuery = `
SELECT id, competition_id, category_id, fight_no, ring, round_no,
       red_entry_id, blue_entry_id, winner_entry_id, status, scheduled_at,
       timing_profile_id, manual_timing, round_duration, rounds,
       break_duration, fight_pause, fight_duration
FROM fights
WHERE competition_id = $1
ORDER BY fight_no`

// MaxFightNo returns the highest committed fight number of a competition,
// or 0 when no fight exists yet.
func (s *Store) MaxFightNo(ctx context.Context, competitionID uuid.UUID) (int, error) {
	var max int
	if err := s.db.QueryRowContext(ctx, maxFightNoQuery, competitionID).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to get max fight number: %w", err)
	}
	return max, nil
}

// InsertFights persists fights inside a single transaction: all rows
// commit or none do.
func (s *Store) InsertFights(ctx context.Context, fights []models.Fight) error {
	return sqlutil.Run(ctx, s.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertFightQuery)
		if err != nil {
			return fmt.Errorf("failed to prepare fight insert: %w", err)
		}
		defer stmt.Close()

		for _, f := range fights {
			if _, err := stmt.ExecContext(ctx,
				f.ID,
				f.CompetitionID,
				sqlutil.ToNullUUID(f.CategoryID),
				f.FightNo,
				f.Ring,
				f.RoundNo,
				sqlutil.ToNullUUID(f.RedEntryID),
				sqlutil.ToNullUUID(f.BlueEntryID),
				sqlutil.ToNullUUID(f.WinnerEntryID),
				string(f.Status),
				sqlutil.ToSqlTime(f.ScheduledAt),
				sqlutil.ToNullUUID(f.TimingProfileID),
				f.ManualTiming,
				f.RoundDuration,
				f.Rounds,
				f.BreakDuration,
				f.FightPause,
				f.FightDuration,
			); err != nil {
				return fmt.Errorf("failed to insert fight %d: %w", f.FightNo, err)
			}
		}
		return nil
	})
}

// ListFights retrieves the committed fights of a competition in fight
// number order.
func (s *Store) ListFights(ctx context.Context, competitionID uuid.UUID) ([]models.Fight, error) {
	rows, err := s.db.QueryContext(ctx, listFightsQuery, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fights: %w", err)
	}
	defer rows.Close()

	var fights []models.Fight
	for rows.Next() {
		f, err := scanFight(rows)
		if err != nil {
			return nil, err
		}
		fights = append(fights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list fights: %w", err)
	}
	return fights, nil
}

func scanFight(rows *sql.Rows) (models.Fight, error) {
	var (
		f               models.Fight
		categoryID      uuid.NullUUID
		ring            sql.NullString
		redEntryID      uuid.NullUUID
		blueEntryID     uuid.NullUUID
		winnerEntryID   uuid.NullUUID
		status          string
		scheduledAt     sql.NullTime
		timingProfileID uuid.NullUUID
	)
	if err := rows.Scan(
		&f.ID,
		&f.CompetitionID,
		&categoryID,
		&f.FightNo,
		&ring,
		&f.RoundNo,
		&redEntryID,
		&blueEntryID,
		&winnerEntryID,
		&status,
		&scheduledAt,
		&timingProfileID,
		&f.ManualTiming,
		&f.RoundDuration,
		&f.Rounds,
		&f.BreakDuration,
		&f.FightPause,
		&f.FightDuration,
	); err != nil {
		return models.Fight{}, fmt.Errorf("failed to scan fight: %w", err)
	}
	f.CategoryID = sqlutil.FromNullUUID(categoryID)
	f.Ring = sqlutil.FromSqlString(ring, "")
	f.RedEntryID = sqlutil.FromNullUUID(redEntryID)
	f.BlueEntryID = sqlutil.FromNullUUID(blueEntryID)
	f.WinnerEntryID = sqlutil.FromNullUUID(winnerEntryID)
	f.Status = models.FightStatus(status)
	f.ScheduledAt = sqlutil.FromSqlTime(scheduledAt)
	f.TimingProfileID = sqlutil.FromNullUUID(timingProfileID)
	return f, nil
}
