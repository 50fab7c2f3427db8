package weightclass

import (
	"strconv"
	"strings"
	"time"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

// Status is the outcome of a weight-class resolution.
type Status string

const (
	StatusOK               Status = "OK"
	StatusMissingWeight    Status = "MISSING_WEIGHT"
	StatusMissingBirthDate Status = "MISSING_BIRTH_DATE"
	StatusOutOfRange       Status = "OUT_OF_RANGE"
)

// OutOfRangeLabel is the fixed display label for athletes no table covers.
const OutOfRangeLabel = "Hors catégorie"

const maxResolvableWeight = 300

// Context carries the competition-side inputs of a resolution.
type Context struct {
	Discipline models.Discipline
	Reference  time.Time
}

// Result describes a resolved weight class. Label is empty unless the status
// is OK or OutOfRange.
type Result struct {
	Status   Status
	Label    string
	AgeGroup string
	Age      int
}

// Resolve returns only the display label, or "" when resolution fails.
func Resolve(birthDate, sex string, weight float64, ctx Context) string {
	return ResolveWithDetails(birthDate, sex, weight, ctx).Label
}

// ResolveWithDetails resolves the display weight-class label for an athlete.
// The weight must be in (0, 300] and the birth date parseable; otherwise a
// typed missing status comes back with an empty label and the caller decides
// whether to block. An age or weight no table covers resolves to the fixed
// out-of-range label.
func ResolveWithDetails(birthDate, sex string, weight float64, ctx Context) Result {
	if weight <= 0 || weight > maxResolvableWeight {
		return Result{Status: StatusMissingWeight}
	}
	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return Result{Status: StatusMissingBirthDate}
	}

	age := fullYears(born, ctx.Reference)
	for _, group := range groupsFor(ctx.Discipline) {
		if !group.contains(age) {
			continue
		}
		thresholds := group.thresholdsFor(sex)
		for i, bound := range thresholds {
			if bound == openClass {
				return Result{
					Status:   StatusOK,
					Label:    openLabel(thresholds, i),
					AgeGroup: group.Name,
					Age:      age,
				}
			}
			// Bounds are inclusive: a weight exactly on the threshold
			// belongs to that class.
			if weight <= bound {
				return Result{
					Status:   StatusOK,
					Label:    "-" + formatBound(bound),
					AgeGroup: group.Name,
					Age:      age,
				}
			}
		}
		return Result{Status: StatusOutOfRange, Label: OutOfRangeLabel, AgeGroup: group.Name, Age: age}
	}

	return Result{Status: StatusOutOfRange, Label: OutOfRangeLabel, Age: age}
}

// thresholdsFor picks the sex-specific list, falling back to the neutral one
// when the sex is unknown or the group has no split.
func (g ageGroup) thresholdsFor(sex string) []float64 {
	switch strings.ToUpper(strings.TrimSpace(sex)) {
	case "M", "H":
		if g.Male != nil {
			return g.Male
		}
	case "F", "W":
		if g.Female != nil {
			return g.Female
		}
	}
	if g.Neutral != nil {
		return g.Neutral
	}
	if g.Male != nil {
		return g.Male
	}
	return g.Female
}

// openLabel renders the open-class sentinel as "+<last bounded magnitude>".
func openLabel(thresholds []float64, sentinelIdx int) string {
	if sentinelIdx == 0 {
		return "+0"
	}
	return "+" + formatBound(thresholds[sentinelIdx-1])
}

// formatBound renders a magnitude without trailing zero noise: 63.5 stays
// "63.5", 60.0 becomes "60".
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fullYears(born, ref time.Time) int {
	years := ref.Year() - born.Year()
	if ref.Month() < born.Month() || (ref.Month() == born.Month() && ref.Day() < born.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
