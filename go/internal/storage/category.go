package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mgrosjean/fightcard/go/internal/models"
	"github.com/mgrosjean/fightcard/go/internal/sqlutil"
)

// Categories come back in definition order: assignment picks the first
// matching category, so position matters.
const listCategoriesQuery = `
SELECT id, competition_id, name, age_min, age_max, weight_min, weight_max,
       sex, level, format
FROM categories
WHERE competition_id = $1 OR competition_id IS NULL
ORDER BY position, name`

type categoryRow struct {
	ID            uuid.UUID
	CompetitionID uuid.NullUUID
	Name          string
	AgeMin        sql.NullInt32
	AgeMax        sql.NullInt32
	WeightMin     sql.NullFloat64
	WeightMax     sql.NullFloat64
	Sex           sql.NullString
	Level         sql.NullString
	Format        sql.NullString
}

// ListCategories retrieves the categories applicable to a competition,
// both competition-specific and shared ones.
func (s *Store) ListCategories(ctx context.Context, competitionID uuid.UUID) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, listCategoriesQuery, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var row categoryRow
		if err := rows.Scan(
			&row.ID,
			&row.CompetitionID,
			&row.Name,
			&row.AgeMin,
			&row.AgeMax,
			&row.WeightMin,
			&row.WeightMax,
			&row.Sex,
			&row.Level,
			&row.Format,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, rowToCategory(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func rowToCategory(row categoryRow) models.Category {
	return models.Category{
		ID:            row.ID,
		CompetitionID: sqlutil.FromNullUUID(row.CompetitionID),
		Name:          row.Name,
		AgeMin:        sqlutil.FromSqlInt32(row.AgeMin),
		AgeMax:        sqlutil.FromSqlInt32(row.AgeMax),
		WeightMin:     sqlutil.FromSqlFloat64(row.WeightMin),
		WeightMax:     sqlutil.FromSqlFloat64(row.WeightMax),
		Sex:           sqlutil.FromSqlString(row.Sex, ""),
		Level:         sqlutil.FromSqlString(row.Level, ""),
		Format:        sqlutil.FromSqlString(row.Format, ""),
	}
}
