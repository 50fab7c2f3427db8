package generation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

// fakeStore is an in-memory backend implementing every repository interface
// the engine depends on.
type fakeStore struct {
	comp          *models.Competition
	categories    []models.Category
	entries       []models.Entry
	profiles      []models.TimingProfile
	committed     []models.Fight
	maxFightNo    int
	hasWeighIns   bool
	validWeighIns map[uuid.UUID]bool
	settings      *models.GenerationSettings
	draft         *models.Draft

	insertErr error
	clearErr  error
}

func (s *fakeStore) GetCompetition(_ context.Context, id uuid.UUID) (*models.Competition, error) {
	if s.comp == nil || s.comp.ID != id {
		return nil, fmt.Errorf("competition %s not found", id)
	}
	c := *s.comp
	return &c, nil
}

func (s *fakeStore) ListCategories(context.Context, uuid.UUID) ([]models.Category, error) {
	return s.categories, nil
}

func (s *fakeStore) ListEntries(context.Context, uuid.UUID) ([]models.Entry, error) {
	return s.entries, nil
}

func (s *fakeStore) ListTimingProfiles(context.Context) ([]models.TimingProfile, error) {
	return s.profiles, nil
}

func (s *fakeStore) MaxFightNo(context.Context, uuid.UUID) (int, error) {
	return s.maxFightNo, nil
}

func (s *fakeStore) InsertFights(_ context.Context, fights []models.Fight) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.committed = append(s.committed, fights...)
	return nil
}

func (s *fakeStore) ListFights(context.Context, uuid.UUID) ([]models.Fight, error) {
	return s.committed, nil
}

func (s *fakeStore) HasWeighIns(context.Context, uuid.UUID) (bool, error) {
	return s.hasWeighIns, nil
}

func (s *fakeStore) HasValidWeighIn(_ context.Context, _, entryID uuid.UUID, _ float64, _ *float64) (bool, error) {
	return s.validWeighIns[entryID], nil
}

func (s *fakeStore) GetSettings(context.Context, uuid.UUID) (*models.GenerationSettings, error) {
	if s.settings == nil {
		return nil, nil
	}
	c := *s.settings
	return &c, nil
}

func (s *fakeStore) SaveSettings(_ context.Context, settings models.GenerationSettings) error {
	s.settings = &settings
	return nil
}

func (s *fakeStore) GetDraft(context.Context, uuid.UUID) (*models.Draft, error) {
	if s.draft == nil {
		return nil, nil
	}
	d := *s.draft
	d.Fights = make([]models.Fight, len(s.draft.Fights))
	copy(d.Fights, s.draft.Fights)
	return &d, nil
}

func (s *fakeStore) SaveDraft(_ context.Context, draft models.Draft) error {
	s.draft = &draft
	return nil
}

func (s *fakeStore) ClearDraft(context.Context, uuid.UUID) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.draft = nil
	return nil
}

type fakePublisher struct {
	draftsGenerated []int
	fightsCommitted []int
}

func (p *fakePublisher) DraftGenerated(_ context.Context, _ uuid.UUID, fightCount int) {
	p.draftsGenerated = append(p.draftsGenerated, fightCount)
}

func (p *fakePublisher) FightsCommitted(_ context.Context, _ uuid.UUID, fightCount int) {
	p.fightsCommitted = append(p.fightsCommitted, fightCount)
}

func newTestApp(store *fakeStore) (*App, *fakePublisher, *clockwork.FakeClock) {
	pub := &fakePublisher{}
	clock := clockwork.NewFakeClock()
	app := NewApp(Deps{
		Competitions: store,
		Categories:   store,
		Entries:      store,
		Profiles:     store,
		Fights:       store,
		WeighIns:     store,
		Settings:     store,
		Drafts:       store,
		Publisher:    pub,
		Clock:        clock,
	})
	return app, pub, clock
}

func validEntry(compID, catID uuid.UUID, weight float64) models.Entry {
	club := uuid.New()
	licensee := uuid.New()
	return models.Entry{
		ID:            uuid.New(),
		CompetitionID: compID,
		CategoryID:    &catID,
		ClubID:        &club,
		LicenseeID:    &licensee,
		Status:        models.EntryStatusValidated,
		Weight:        &weight,
		WeightClass:   "-63",
		BirthDate:     "2000-05-12",
		Sex:           "M",
	}
}
