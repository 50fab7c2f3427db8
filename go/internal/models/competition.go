package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Discipline identifies the combat discipline a competition is run under.
type Discipline string

const (
	DisciplinePointFighting Discipline = "POINT_FIGHTING"
	DisciplineLightContact  Discipline = "LIGHT_CONTACT"
	DisciplineKickLight     Discipline = "KICK_LIGHT"
	DisciplineFullContact   Discipline = "FULL_CONTACT"
	DisciplineLowKick       Discipline = "LOW_KICK"
	DisciplineK1            Discipline = "K1"
)

// CompetitionType defines the level a competition is sanctioned at.
type CompetitionType string

const (
	CompetitionTypeClub     CompetitionType = "CLUB"
	CompetitionTypeRegional CompetitionType = "REGIONAL"
	CompetitionTypeNational CompetitionType = "NATIONAL"
	CompetitionTypeOpen     CompetitionType = "OPEN"
)

// CompetitionStatus defines the status of a competition.
type CompetitionStatus string

const (
	CompetitionStatusDraft    CompetitionStatus = "DRAFT"
	CompetitionStatusOpen     CompetitionStatus = "OPEN"
	CompetitionStatusRunning  CompetitionStatus = "RUNNING"
	CompetitionStatusFinished CompetitionStatus = "FINISHED"
)

// Competition is a read-only input to fight generation. AgeReference is a
// "MM-DD" month-day; ages are computed as of that day in the season year.
type Competition struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Discipline      Discipline        `json:"discipline"`
	CompetitionType CompetitionType   `json:"competition_type"`
	Season          int               `json:"season"`
	AgeReference    string            `json:"age_reference,omitempty"`
	WeightTolerance float64           `json:"weight_tolerance"`
	Status          CompetitionStatus `json:"status"`
	FightsStartAt   *time.Time        `json:"fights_start_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// ReferenceDate returns the date ages are computed as of. Falls back to
// December 31 of the season year when no age reference is configured.
func (c Competition) ReferenceDate() time.Time {
	ref := c.AgeReference
	if ref == "" {
		ref = "12-31"
	}
	t, err := time.Parse("2006-01-02", fmt.Sprintf("%04d-%s", c.Season, ref))
	if err != nil {
		return time.Date(c.Season, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	return t
}
