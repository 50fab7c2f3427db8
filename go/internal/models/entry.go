package models

import (
	"time"

	"github.com/google/uuid"
)

// EntryStatus defines the registration status of an entry.
type EntryStatus string

const (
	EntryStatusDraft     EntryStatus = "DRAFT"
	EntryStatusSubmitted EntryStatus = "SUBMITTED"
	EntryStatusValidated EntryStatus = "VALIDATED"
	EntryStatusRejected  EntryStatus = "REJECTED"
	EntryStatusCancelled EntryStatus = "CANCELLED"
)

// Entry is one athlete registered into a competition. BirthDate is kept as
// the raw submitted string; registration data arrives unvalidated and an
// unparseable date must not crash generation.
type Entry struct {
	ID            uuid.UUID   `json:"id"`
	CompetitionID uuid.UUID   `json:"competition_id"`
	CategoryID    *uuid.UUID  `json:"category_id,omitempty"`
	ClubID        *uuid.UUID  `json:"club_id,omitempty"`
	LicenseeID    *uuid.UUID  `json:"licensee_id,omitempty"`
	Status        EntryStatus `json:"status"`
	Weight        *float64    `json:"weight,omitempty"`
	WeightClass   string      `json:"weight_class,omitempty"`
	BirthDate     string      `json:"birth_date,omitempty"`
	Sex           string      `json:"sex,omitempty"`
	Level         string      `json:"level,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// BirthDateTime parses the raw birth date. The second return is false when
// the date is missing or unparseable.
func (e Entry) BirthDateTime() (time.Time, bool) {
	if e.BirthDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", e.BirthDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// WeighInStatus defines the outcome of an on-site weigh-in.
type WeighInStatus string

const (
	WeighInStatusPending WeighInStatus = "PENDING"
	WeighInStatusPassed  WeighInStatus = "PASSED"
	WeighInStatusFailed  WeighInStatus = "FAILED"
)

// WeighIn records a measured weight for one entry of a competition.
type WeighIn struct {
	CompetitionID  uuid.UUID     `json:"competition_id"`
	EntryID        uuid.UUID     `json:"entry_id"`
	Status         WeighInStatus `json:"status"`
	WeightMeasured *float64      `json:"weight_measured,omitempty"`
	RecordedAt     time.Time     `json:"recorded_at"`
}
