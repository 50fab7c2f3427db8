package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mgrosjean/fightcard/go/internal/models"
	"github.com/mgrosjean/fightcard/go/internal/sqlutil"
)

const listTimingProfilesQuery = `
SELECT id, name, discipline, competition_type, surface_type, age_min, age_max,
       level, format, round_duration, rounds, break_duration, fight_pause
FROM timing_profiles
ORDER BY name, id`

type timingProfileRow struct {
	ID              uuid.UUID
	Name            string
	Discipline      sql.NullString
	CompetitionType sql.NullString
	SurfaceType     sql.NullString
	AgeMin          sql.NullInt32
	AgeMax          sql.NullInt32
	Level           sql.NullString
	Format          sql.NullString
	RoundDuration   int
	Rounds          int
	BreakDuration   int
	FightPause      int
}

// ListTimingProfiles retrieves all round-format presets.
func (s *Store) ListTimingProfiles(ctx context.Context) ([]models.TimingProfile, error) {
	rows, err := s.db.QueryContext(ctx, listTimingProfilesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list timing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.TimingProfile
	for rows.Next() {
		var row timingProfileRow
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Discipline,
			&row.CompetitionType,
			&row.SurfaceType,
			&row.AgeMin,
			&row.AgeMax,
			&row.Level,
			&row.Format,
			&row.RoundDuration,
			&row.Rounds,
			&row.BreakDuration,
			&row.FightPause,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timing profile: %w", err)
		}
		profiles = append(profiles, rowToTimingProfile(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list timing profiles: %w", err)
	}
	return profiles, nil
}

func rowToTimingProfile(row timingProfileRow) models.TimingProfile {
	return models.TimingProfile{
		ID:              row.ID,
		Name:            row.Name,
		Discipline:      models.Discipline(sqlutil.FromSqlString(row.Discipline, "")),
		CompetitionType: models.CompetitionType(sqlutil.FromSqlString(row.CompetitionType, "")),
		SurfaceType:     models.SurfaceType(sqlutil.FromSqlString(row.SurfaceType, "")),
		AgeMin:          sqlutil.FromSqlInt32(row.AgeMin),
		AgeMax:          sqlutil.FromSqlInt32(row.AgeMax),
		Level:           sqlutil.FromSqlString(row.Level, ""),
		Format:          sqlutil.FromSqlString(row.Format, ""),
		RoundDuration:   row.RoundDuration,
		Rounds:          row.Rounds,
		BreakDuration:   row.BreakDuration,
		FightPause:      row.FightPause,
	}
}
