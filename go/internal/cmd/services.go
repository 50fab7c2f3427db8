package main

import (
	"database/sql"

	"github.com/rs/zerolog/log"

	"github.com/mgrosjean/fightcard/go/internal/events"
	"github.com/mgrosjean/fightcard/go/internal/generation"
	"github.com/mgrosjean/fightcard/go/internal/schedule"
	"github.com/mgrosjean/fightcard/go/internal/storage"
)

type Services struct {
	Generation *generation.App
	Estimator  *schedule.Estimator
}

func setupServices(database *sql.DB, config *Config) (*Services, func(), error) {
	// Wire up dependency injection chain
	// Database layer → Store → App layer

	store := storage.NewStore(database)

	var publisher generation.EventPublisher
	cleanup := func() {}
	if config.Events.Enabled {
		cfg := events.DefaultConfig()
		cfg.URL = config.Events.URL
		cfg.StreamName = config.Events.StreamName
		cfg.SubjectPrefix = config.Events.SubjectPrefix

		p, err := events.NewPublisher(cfg)
		if err != nil {
			return nil, nil, err
		}
		publisher = p
		cleanup = p.Close
		log.Info().Str("stream", cfg.StreamName).Msg("event publishing enabled")
	}

	app := generation.NewApp(generation.Deps{
		Competitions: store,
		Categories:   store,
		Entries:      store,
		Profiles:     store,
		Fights:       store,
		WeighIns:     store,
		Settings:     store,
		Drafts:       store,
		Publisher:    publisher,
	})

	estimator := schedule.NewEstimator(store, store)

	return &Services{
		Generation: app,
		Estimator:  estimator,
	}, cleanup, nil
}
