// Package schedule estimates how a competition's fight card fits into a
// day. Estimation is read-only: it never mutates fights or drafts.
package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

// Source selects which fight set the estimate runs over.
type Source string

const (
	SourceDraft  Source = "DRAFT"
	SourceFights Source = "FIGHTS"
)

// DaySlot is one contiguous window of the competition day.
type DaySlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Minutes returns the slot length in whole minutes.
func (s DaySlot) Minutes() int {
	if !s.End.After(s.Start) {
		return 0
	}
	return int(s.End.Sub(s.Start) / time.Minute)
}

// SurfaceLoad is the projected load of one surface.
type SurfaceLoad struct {
	Surface      string     `json:"surface"`
	Fights       int        `json:"fights"`
	TotalMinutes int        `json:"total_minutes"`
	EndsAt       *time.Time `json:"ends_at,omitempty"`
}

// Estimate is the projection of a fight card onto the competition day.
type Estimate struct {
	TotalFights int           `json:"total_fights"`
	StartsAt    *time.Time    `json:"starts_at,omitempty"`
	EndsAt      *time.Time    `json:"ends_at,omitempty"`
	Surfaces    []SurfaceLoad `json:"surfaces"`
	// Overflow reports that the projected load does not fit the
	// configured day slots.
	Overflow bool `json:"overflow"`
}

// DraftStore reads the staging draft of a competition.
type DraftStore interface {
	GetDraft(ctx context.Context, competitionID uuid.UUID) (*models.Draft, error)
}

// FightRepository reads the committed fights of a competition.
type FightRepository interface {
	ListFights(ctx context.Context, competitionID uuid.UUID) ([]models.Fight, error)
}

// Estimator projects draft or committed fights onto day slots.
type Estimator struct {
	drafts DraftStore
	fights FightRepository
}

func NewEstimator(drafts DraftStore, fights FightRepository) *Estimator {
	return &Estimator{drafts: drafts, fights: fights}
}

// Estimate computes the projected start, end and per-surface load of a
// competition's fights. defaultPause is the fallback pause in minutes for
// fights that carry none of their own.
func (e *Estimator) Estimate(ctx context.Context, competitionID uuid.UUID, slots []DaySlot, defaultPause int, source Source) (Estimate, error) {
	fights, err := e.loadFights(ctx, competitionID, source)
	if err != nil {
		return Estimate{}, err
	}
	return EstimateFights(fights, slots, defaultPause), nil
}

func (e *Estimator) loadFights(ctx context.Context, competitionID uuid.UUID, source Source) ([]models.Fight, error) {
	switch source {
	case SourceDraft:
		draft, err := e.drafts.GetDraft(ctx, competitionID)
		if err != nil {
			return nil, fmt.Errorf("failed to get draft: %w", err)
		}
		if draft == nil {
			return nil, nil
		}
		return draft.Fights, nil
	case SourceFights:
		fights, err := e.fights.ListFights(ctx, competitionID)
		if err != nil {
			return nil, fmt.Errorf("failed to list fights: %w", err)
		}
		return fights, nil
	default:
		return nil, fmt.Errorf("unknown estimate source: %s", source)
	}
}

// EstimateFights is the pure projection over an in-memory fight set.
func EstimateFights(fights []models.Fight, slots []DaySlot, defaultPause int) Estimate {
	est := Estimate{TotalFights: len(fights)}
	if len(fights) == 0 {
		return est
	}

	type acc struct {
		fights  int
		minutes int
		endsAt  *time.Time
	}
	perSurface := make(map[string]*acc)
	var order []string

	for _, f := range fights {
		pause := f.FightPause
		if pause <= 0 {
			pause = defaultPause
		}
		block := f.FightDuration + pause

		a, ok := perSurface[f.Ring]
		if !ok {
			a = &acc{}
			perSurface[f.Ring] = a
			order = append(order, f.Ring)
		}
		a.fights++
		a.minutes += block

		if f.ScheduledAt != nil {
			end := f.ScheduledAt.Add(time.Duration(f.FightDuration) * time.Minute)
			if a.endsAt == nil || end.After(*a.endsAt) {
				a.endsAt = &end
			}
			if est.StartsAt == nil || f.ScheduledAt.Before(*est.StartsAt) {
				t := *f.ScheduledAt
				est.StartsAt = &t
			}
			if est.EndsAt == nil || end.After(*est.EndsAt) {
				est.EndsAt = &end
			}
		}
	}

	sort.Strings(order)
	for _, surface := range order {
		a := perSurface[surface]
		est.Surfaces = append(est.Surfaces, SurfaceLoad{
			Surface:      surface,
			Fights:       a.fights,
			TotalMinutes: a.minutes,
			EndsAt:       a.endsAt,
		})
	}

	est.Overflow = overflows(est, slots)
	return est
}

// overflows reports whether the projected load breaks out of the day
// slots: more minutes than the slots hold on any surface, or a projected
// end past the last slot.
func overflows(est Estimate, slots []DaySlot) bool {
	if len(slots) == 0 {
		return false
	}

	capacity := 0
	var lastEnd time.Time
	for _, slot := range slots {
		capacity += slot.Minutes()
		if slot.End.After(lastEnd) {
			lastEnd = slot.End
		}
	}

	for _, s := range est.Surfaces {
		if s.TotalMinutes > capacity {
			return true
		}
	}
	return est.EndsAt != nil && est.EndsAt.After(lastEnd)
}
