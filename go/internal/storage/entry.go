package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgrosjean/fightcard/go/internal/models"
	"github.com/mgrosjean/fightcard/go/internal/sqlutil"
)

const listEntriesQuery = `
SELECT id, competition_id, category_id, club_id, licensee_id, status,
       weight, weight_class, birth_date, sex, level, created_at
FROM entries
WHERE competition_id = $1
ORDER BY created_at, id`

type entryRow struct {
	ID            uuid.UUID
	CompetitionID uuid.UUID
	CategoryID    uuid.NullUUID
	ClubID        uuid.NullUUID
	LicenseeID    uuid.NullUUID
	Status        string
	Weight        sql.NullFloat64
	WeightClass   sql.NullString
	BirthDate     sql.NullString
	Sex           sql.NullString
	Level         sql.NullString
	CreatedAt     time.Time
}

// ListEntries retrieves all entries of a competition in registration order.
func (s *Store) ListEntries(ctx context.Context, competitionID uuid.UUID) ([]models.Entry, error) {
	rows, err := s.db.QueryContext(ctx, listEntriesQuery, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var row entryRow
		if err := rows.Scan(
			&row.ID,
			&row.CompetitionID,
			&row.CategoryID,
			&row.ClubID,
			&row.LicenseeID,
			&row.Status,
			&row.Weight,
			&row.WeightClass,
			&row.BirthDate,
			&row.Sex,
			&row.Level,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, rowToEntry(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func rowToEntry(row entryRow) models.Entry {
	return models.Entry{
		ID:            row.ID,
		CompetitionID: row.CompetitionID,
		CategoryID:    sqlutil.FromNullUUID(row.CategoryID),
		ClubID:        sqlutil.FromNullUUID(row.ClubID),
		LicenseeID:    sqlutil.FromNullUUID(row.LicenseeID),
		Status:        models.EntryStatus(row.Status),
		Weight:        sqlutil.FromSqlFloat64(row.Weight),
		WeightClass:   sqlutil.FromSqlString(row.WeightClass, ""),
		BirthDate:     sqlutil.FromSqlString(row.BirthDate, ""),
		Sex:           sqlutil.FromSqlString(row.Sex, ""),
		Level:         sqlutil.FromSqlString(row.Level, ""),
		CreatedAt:     row.CreatedAt,
	}
}
