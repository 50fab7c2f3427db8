package models

import (
	"time"

	"github.com/google/uuid"
)

// DraftStats summarizes one generation run for operator feedback.
type DraftStats struct {
	EntriesConsidered int `json:"entries_considered"`
	EntriesEligible   int `json:"entries_eligible"`
	EntriesExcluded   int `json:"entries_excluded"`
	Groups            int `json:"groups"`
	Fights            int `json:"fights"`
}

// Draft is the staging set of generated fights for a competition, pending
// operator review. At most one draft exists per competition; a successful
// commit destroys it.
type Draft struct {
	CompetitionID uuid.UUID          `json:"competition_id"`
	GeneratedAt   time.Time          `json:"generated_at"`
	GeneratedBy   string             `json:"generated_by,omitempty"`
	Settings      GenerationSettings `json:"settings"`
	Stats         DraftStats         `json:"stats"`
	Warnings      []string           `json:"warnings,omitempty"`
	Fights        []Fight            `json:"fights"`
}
