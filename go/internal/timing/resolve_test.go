package timing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mgrosjean/fightcard/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFightDurationFormula(t *testing.T) {
	p := models.TimingProfile{RoundDuration: 2, Rounds: 3, BreakDuration: 1}
	// 3 rounds of 2 minutes with 2 breaks of 1 minute between them.
	assert.Equal(t, 8, p.FightDuration())

	single := models.TimingProfile{RoundDuration: 5, Rounds: 1, BreakDuration: 1}
	assert.Equal(t, 5, single.FightDuration())

	assert.Equal(t, 0, models.TimingProfile{RoundDuration: 2}.FightDuration())
}

func TestBestMatchScoring(t *testing.T) {
	comp := models.Competition{
		Discipline:      models.DisciplineLightContact,
		CompetitionType: models.CompetitionTypeRegional,
	}
	cat := models.Category{AgeMin: intPtr(18), AgeMax: intPtr(40), Level: "elite"}

	generic := models.TimingProfile{ID: uuid.New(), Name: "generic"}
	byDiscipline := models.TimingProfile{ID: uuid.New(), Name: "discipline", Discipline: models.DisciplineLightContact}
	full := models.TimingProfile{
		ID:         uuid.New(),
		Name:       "full",
		Discipline: models.DisciplineLightContact,
		AgeMin:     intPtr(18),
		AgeMax:     intPtr(40),
		Level:      "elite",
	}

	got := BestMatch([]models.TimingProfile{generic, byDiscipline, full}, cat, comp, models.SurfaceTypeTatami)
	require.NotNil(t, got)
	assert.Equal(t, full.ID, got.ID)

	got = BestMatch([]models.TimingProfile{generic, byDiscipline}, cat, comp, models.SurfaceTypeTatami)
	require.NotNil(t, got)
	assert.Equal(t, byDiscipline.ID, got.ID)
}

func TestBestMatchExcludesContradictions(t *testing.T) {
	comp := models.Competition{
		Discipline:      models.DisciplineLightContact,
		CompetitionType: models.CompetitionTypeRegional,
	}
	cat := models.Category{AgeMin: intPtr(12), AgeMax: intPtr(13)}

	// Scores high on discipline, type and surface, but its age range cannot
	// apply to the category. It must never be selected.
	contradicting := models.TimingProfile{
		ID:              uuid.New(),
		Discipline:      models.DisciplineLightContact,
		CompetitionType: models.CompetitionTypeRegional,
		SurfaceType:     models.SurfaceTypeTatami,
		AgeMin:          intPtr(18),
	}
	weak := models.TimingProfile{ID: uuid.New(), Name: "weak"}

	got := BestMatch([]models.TimingProfile{contradicting, weak}, cat, comp, models.SurfaceTypeTatami)
	require.NotNil(t, got)
	assert.Equal(t, weak.ID, got.ID)

	// With only the contradicting profile on file nothing matches.
	assert.Nil(t, BestMatch([]models.TimingProfile{contradicting}, cat, comp, models.SurfaceTypeTatami))
}

func TestBestMatchFirstFoundWinsTies(t *testing.T) {
	comp := models.Competition{Discipline: models.DisciplineK1}
	cat := models.Category{}

	first := models.TimingProfile{ID: uuid.New(), Discipline: models.DisciplineK1}
	second := models.TimingProfile{ID: uuid.New(), Discipline: models.DisciplineK1}

	got := BestMatch([]models.TimingProfile{first, second}, cat, comp, models.SurfaceTypeRing)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
}

func TestFromGlobalFallback(t *testing.T) {
	settings := models.GenerationSettings{FightDuration: 3, BreakDuration: 1}
	r := FromGlobal(settings)
	assert.Nil(t, r.ProfileID)
	assert.Equal(t, 3, r.FightDuration)
	assert.Equal(t, 1, r.FightPause)
}
