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

const getCompetitionQuery = `
SELECT id, name, discipline, competition_type, season, age_reference,
       weight_tolerance, status, fights_start_at, created_at
FROM competitions
WHERE id = $1`

type competitionRow struct {
	ID              uuid.UUID
	Name            string
	Discipline      string
	CompetitionType string
	Season          int
	AgeReference    sql.NullString
	WeightTolerance float64
	Status          string
	FightsStartAt   sql.NullTime
	CreatedAt       time.Time
}

// GetCompetition retrieves a competition by ID.
func (s *Store) GetCompetition(ctx context.Context, id uuid.UUID) (*models.Competition, error) {
	var row competitionRow
	err := s.db.QueryRowContext(ctx, getCompetitionQuery, id).Scan(
		&row.ID,
		&row.Name,
		&row.Discipline,
		&row.CompetitionType,
		&row.Season,
		&row.AgeReference,
		&row.WeightTolerance,
		&row.Status,
		&row.FightsStartAt,
		&row.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get competition: %w", err)
	}
	return rowToCompetition(row), nil
}

func rowToCompetition(row competitionRow) *models.Competition {
	return &models.Competition{
		ID:              row.ID,
		Name:            row.Name,
		Discipline:      models.Discipline(row.Discipline),
		CompetitionType: models.CompetitionType(row.CompetitionType),
		Season:          row.Season,
		AgeReference:    sqlutil.FromSqlString(row.AgeReference, ""),
		WeightTolerance: row.WeightTolerance,
		Status:          models.CompetitionStatus(row.Status),
		FightsStartAt:   sqlutil.FromSqlTime(row.FightsStartAt),
		CreatedAt:       row.CreatedAt,
	}
}
