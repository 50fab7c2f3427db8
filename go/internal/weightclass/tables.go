package weightclass

import "github.com/mgrosjean/fightcard/go/internal/models"

// A threshold list is sorted ascending by magnitude and terminated by the
// openClass sentinel: the last band has no upper bound and renders as
// "+<last bounded magnitude>".
const openClass = float64(0)

// ageGroup maps an inclusive age range to its per-sex threshold lists.
// Neutral is the fallback when the sex is unknown.
type ageGroup struct {
	Name    string
	AgeMin  int
	AgeMax  int
	Male    []float64
	Female  []float64
	Neutral []float64
}

func (g ageGroup) contains(age int) bool {
	return age >= g.AgeMin && age <= g.AgeMax
}

// tatamiGroups covers the tatami disciplines (point fighting, light contact,
// kick light). Bounds follow the federation's published tables.
var tatamiGroups = []ageGroup{
	{
		Name:   "Poussin",
		AgeMin: 7, AgeMax: 9,
		Neutral: []float64{24, 27, 30, 33, 37, openClass},
	},
	{
		Name:   "Benjamin",
		AgeMin: 10, AgeMax: 11,
		Neutral: []float64{27, 30, 33, 37, 41, 45, openClass},
	},
	{
		Name:   "Minime",
		AgeMin: 12, AgeMax: 13,
		Neutral: []float64{33, 37, 41, 45, 50, 55, openClass},
	},
	{
		Name:   "Cadet",
		AgeMin: 14, AgeMax: 15,
		Male:   []float64{42, 47, 52, 57, 63, 69, openClass},
		Female: []float64{40, 44, 48, 52, 56, 60, openClass},
	},
	{
		Name:   "Junior",
		AgeMin: 16, AgeMax: 17,
		Male:   []float64{51, 57, 63, 69, 74, 79, 84, 89, 94, openClass},
		Female: []float64{44, 48, 52, 56, 60, 65, 70, openClass},
	},
	{
		Name:   "Senior",
		AgeMin: 18, AgeMax: 40,
		Male:   []float64{57, 63, 69, 74, 79, 84, 89, 94, openClass},
		Female: []float64{48, 52, 56, 60, 65, 70, openClass},
	},
	{
		Name:   "Vétéran",
		AgeMin: 41, AgeMax: 65,
		Male:   []float64{63, 74, 84, 94, openClass},
		Female: []float64{52, 60, 70, openClass},
	},
}

// ringGroups covers the ring disciplines (full contact, low kick, K1).
var ringGroups = []ageGroup{
	{
		Name:   "Cadet",
		AgeMin: 14, AgeMax: 15,
		Male:   []float64{45, 48, 51, 54, 57, 60, 63.5, 67, openClass},
		Female: []float64{44, 48, 52, 56, 60, openClass},
	},
	{
		Name:   "Junior",
		AgeMin: 16, AgeMax: 17,
		Male:   []float64{51, 54, 57, 60, 63.5, 67, 71, 75, 81, 86, openClass},
		Female: []float64{48, 52, 56, 60, 65, openClass},
	},
	{
		Name:   "Senior",
		AgeMin: 18, AgeMax: 40,
		Male:   []float64{51, 54, 57, 60, 63.5, 67, 71, 75, 81, 86, 91, openClass},
		Female: []float64{48, 52, 56, 60, 65, 70, openClass},
	},
}

// groupsFor selects the age-group table for a discipline. Ring disciplines
// get the ring table, everything else resolves on the tatami table.
func groupsFor(discipline models.Discipline) []ageGroup {
	switch discipline {
	case models.DisciplineFullContact, models.DisciplineLowKick, models.DisciplineK1:
		return ringGroups
	default:
		return tatamiGroups
	}
}
