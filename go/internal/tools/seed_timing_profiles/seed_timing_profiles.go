package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mgrosjean/fightcard/go/internal/dbconfig"
	"github.com/mgrosjean/fightcard/go/internal/models"
)

// seed_timing_profiles loads round-format presets into timing_profiles.
// Pass a JSON file path as the first argument to seed custom profiles;
// without one the federation defaults below are used.

func defaultProfiles() []models.TimingProfile {
	adult := func(v int) *int { return &v }
	return []models.TimingProfile{
		{
			ID:            uuid.New(),
			Name:          "Tatami standard",
			SurfaceType:   models.SurfaceTypeTatami,
			RoundDuration: 2,
			Rounds:        1,
			FightPause:    1,
		},
		{
			ID:            uuid.New(),
			Name:          "Light contact senior",
			Discipline:    models.DisciplineLightContact,
			AgeMin:        adult(18),
			RoundDuration: 2,
			Rounds:        2,
			BreakDuration: 1,
			FightPause:    1,
		},
		{
			ID:            uuid.New(),
			Name:          "Full contact ring",
			Discipline:    models.DisciplineFullContact,
			SurfaceType:   models.SurfaceTypeRing,
			AgeMin:        adult(18),
			RoundDuration: 2,
			Rounds:        3,
			BreakDuration: 1,
			FightPause:    2,
		},
		{
			ID:            uuid.New(),
			Name:          "K1 national",
			Discipline:    models.DisciplineK1,
			SurfaceType:   models.SurfaceTypeRing,
			AgeMin:        adult(18),
			RoundDuration: 3,
			Rounds:        3,
			BreakDuration: 1,
			FightPause:    2,
		},
	}
}

func main() {
	ctx := context.Background()

	profiles := defaultProfiles()
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		profiles = nil
		if err := json.Unmarshal(data, &profiles); err != nil {
			fmt.Fprintf(os.Stderr, "unmarshal profiles: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	total, inserted, skipped, errs := len(profiles), 0, 0, 0
	for _, p := range profiles {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		tag, err := pool.Exec(ctx, `
            INSERT INTO timing_profiles (
              id, name, discipline, competition_type, surface_type,
              age_min, age_max, level, format,
              round_duration, rounds, break_duration, fight_pause
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
            ON CONFLICT (name) DO NOTHING
        `,
			p.ID,
			p.Name,
			nullString(string(p.Discipline)),
			nullString(string(p.CompetitionType)),
			nullString(string(p.SurfaceType)),
			p.AgeMin,
			p.AgeMax,
			nullString(p.Level),
			nullString(p.Format),
			p.RoundDuration,
			p.Rounds,
			p.BreakDuration,
			p.FightPause,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert %s: %v\n", p.Name, err)
			errs++
			continue
		}
		if tag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	fmt.Printf("timing profiles: total=%d inserted=%d skipped=%d errors=%d\n",
		total, inserted, skipped, errs)
	if errs > 0 {
		os.Exit(1)
	}
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
