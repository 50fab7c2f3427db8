package models

import "github.com/google/uuid"

// TimingProfile is a reusable round-format preset. A zero-value constraint
// field ("" or nil) places no restriction on what the profile applies to.
// Duration fields are minutes.
type TimingProfile struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Discipline      Discipline      `json:"discipline,omitempty"`
	CompetitionType CompetitionType `json:"competition_type,omitempty"`
	SurfaceType     SurfaceType     `json:"surface_type,omitempty"`
	AgeMin          *int            `json:"age_min,omitempty"`
	AgeMax          *int            `json:"age_max,omitempty"`
	Level           string          `json:"level,omitempty"`
	Format          string          `json:"format,omitempty"`
	RoundDuration   int             `json:"round_duration"`
	Rounds          int             `json:"rounds"`
	BreakDuration   int             `json:"break_duration"`
	FightPause      int             `json:"fight_pause"`
}

// FightDuration returns the total bout length in minutes: all rounds plus
// the breaks between them.
func (p TimingProfile) FightDuration() int {
	if p.Rounds <= 0 {
		return 0
	}
	return p.RoundDuration*p.Rounds + p.BreakDuration*(p.Rounds-1)
}
