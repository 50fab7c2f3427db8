package models

import "github.com/google/uuid"

// Category is a grouping bucket entries are matched against. Nil bounds mean
// "no restriction"; an empty Sex or Level accepts anyone. CompetitionID is
// nil for categories reusable across competitions.
type Category struct {
	ID            uuid.UUID  `json:"id"`
	CompetitionID *uuid.UUID `json:"competition_id,omitempty"`
	Name          string     `json:"name"`
	AgeMin        *int       `json:"age_min,omitempty"`
	AgeMax        *int       `json:"age_max,omitempty"`
	WeightMin     *float64   `json:"weight_min,omitempty"`
	WeightMax     *float64   `json:"weight_max,omitempty"`
	Sex           string     `json:"sex,omitempty"`
	Level         string     `json:"level,omitempty"`
	Format        string     `json:"format,omitempty"`
}
