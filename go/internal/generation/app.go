// Package generation is the fight auto-generation engine: it turns the
// validated entries of a competition into a draft fight card, schedules the
// card across surfaces, and commits the reviewed draft as durable fights.
package generation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mgrosjean/fightcard/go/internal/lease"
	"github.com/mgrosjean/fightcard/go/internal/models"
)

// LockTTL bounds how long one generation run may hold its competition lock.
const LockTTL = 60 * time.Second

// CompetitionRepository defines what the engine needs from competition storage.
type CompetitionRepository interface {
	GetCompetition(ctx context.Context, id uuid.UUID) (*models.Competition, error)
}

// CategoryRepository lists the categories of a competition in definition
// order; order is significant for first-match assignment.
type CategoryRepository interface {
	ListCategories(ctx context.Context, competitionID uuid.UUID) ([]models.Category, error)
}

// EntryRepository defines what the engine needs from entry storage.
type EntryRepository interface {
	ListEntries(ctx context.Context, competitionID uuid.UUID) ([]models.Entry, error)
}

// TimingProfileRepository lists the round-format presets.
type TimingProfileRepository interface {
	ListTimingProfiles(ctx context.Context) ([]models.TimingProfile, error)
}

// FightRepository defines what the engine needs from durable fight storage.
// InsertFights must apply all fights in one transaction or none.
type FightRepository interface {
	MaxFightNo(ctx context.Context, competitionID uuid.UUID) (int, error)
	InsertFights(ctx context.Context, fights []models.Fight) error
	ListFights(ctx context.Context, competitionID uuid.UUID) ([]models.Fight, error)
}

// WeighInRepository gates entries on their measured weight.
type WeighInRepository interface {
	HasWeighIns(ctx context.Context, competitionID uuid.UUID) (bool, error)
	HasValidWeighIn(ctx context.Context, competitionID, entryID uuid.UUID, tolerance float64, declared *float64) (bool, error)
}

// SettingsStore persists generation settings keyed by competition id.
type SettingsStore interface {
	GetSettings(ctx context.Context, competitionID uuid.UUID) (*models.GenerationSettings, error)
	SaveSettings(ctx context.Context, settings models.GenerationSettings) error
}

// DraftStore persists the staging draft keyed by competition id. At most one
// draft exists per competition.
type DraftStore interface {
	GetDraft(ctx context.Context, competitionID uuid.UUID) (*models.Draft, error)
	SaveDraft(ctx context.Context, draft models.Draft) error
	ClearDraft(ctx context.Context, competitionID uuid.UUID) error
}

// EventPublisher notifies downstream consumers of draft lifecycle changes.
// The engine treats a nil publisher as "no events".
type EventPublisher interface {
	DraftGenerated(ctx context.Context, competitionID uuid.UUID, fightCount int)
	FightsCommitted(ctx context.Context, competitionID uuid.UUID, fightCount int)
}

// App orchestrates fight generation for competitions.
type App struct {
	competitions CompetitionRepository
	categories   CategoryRepository
	entries      EntryRepository
	profiles     TimingProfileRepository
	fights       FightRepository
	weighIns     WeighInRepository
	settings     SettingsStore
	drafts       DraftStore
	locks        lease.Lease
	publisher    EventPublisher
	clock        clockwork.Clock
}

// Deps bundles the collaborators an App is wired with.
type Deps struct {
	Competitions CompetitionRepository
	Categories   CategoryRepository
	Entries      EntryRepository
	Profiles     TimingProfileRepository
	Fights       FightRepository
	WeighIns     WeighInRepository
	Settings     SettingsStore
	Drafts       DraftStore
	Locks        lease.Lease
	Publisher    EventPublisher
	Clock        clockwork.Clock
}

// NewApp creates the generation engine. Locks defaults to an in-memory
// lease store and Clock to the real clock when left nil.
func NewApp(deps Deps) *App {
	if deps.Locks == nil {
		deps.Locks = lease.NewMemory()
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	return &App{
		competitions: deps.Competitions,
		categories:   deps.Categories,
		entries:      deps.Entries,
		profiles:     deps.Profiles,
		fights:       deps.Fights,
		weighIns:     deps.WeighIns,
		settings:     deps.Settings,
		drafts:       deps.Drafts,
		locks:        deps.Locks,
		publisher:    deps.Publisher,
		clock:        deps.Clock,
	}
}

func (a *App) publishDraftGenerated(ctx context.Context, competitionID uuid.UUID, fights int) {
	if a.publisher != nil {
		a.publisher.DraftGenerated(ctx, competitionID, fights)
	}
}

func (a *App) publishFightsCommitted(ctx context.Context, competitionID uuid.UUID, fights int) {
	if a.publisher != nil {
		a.publisher.FightsCommitted(ctx, competitionID, fights)
	}
}
