package category

import (
	"strings"
	"time"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

// AgeAt returns the integer number of full years between birthDate and ref.
// An unparseable birth date counts as age 0, so such entries only ever land
// in age-unbounded categories.
func AgeAt(birthDate string, ref time.Time) int {
	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0
	}
	age := ref.Year() - born.Year()
	if ref.Month() < born.Month() || (ref.Month() == born.Month() && ref.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// MatchCategory scans categories in list order and returns the first one the
// entry satisfies, or nil. List order is significant: the first match wins.
func MatchCategory(categories []models.Category, entry models.Entry, ref time.Time) *models.Category {
	age := AgeAt(entry.BirthDate, ref)
	for i := range categories {
		if matches(categories[i], entry, age) {
			return &categories[i]
		}
	}
	return nil
}

func matches(cat models.Category, entry models.Entry, age int) bool {
	if cat.AgeMin != nil && age < *cat.AgeMin {
		return false
	}
	if cat.AgeMax != nil && age > *cat.AgeMax {
		return false
	}
	if cat.WeightMin != nil && (entry.Weight == nil || *entry.Weight < *cat.WeightMin) {
		return false
	}
	if cat.WeightMax != nil && (entry.Weight == nil || *entry.Weight > *cat.WeightMax) {
		return false
	}
	// An empty sex or level on either side never excludes; only an explicit
	// mismatch does.
	if cat.Sex != "" && entry.Sex != "" && !strings.EqualFold(cat.Sex, entry.Sex) {
		return false
	}
	if cat.Level != "" && entry.Level != "" && !strings.EqualFold(cat.Level, entry.Level) {
		return false
	}
	return true
}
