package models

import (
	"time"

	"github.com/google/uuid"
)

// FightStatus defines the status of a fight.
type FightStatus string

const (
	FightStatusScheduled FightStatus = "SCHEDULED"
	FightStatusOngoing   FightStatus = "ONGOING"
	FightStatusFinished  FightStatus = "FINISHED"
	FightStatusCancelled FightStatus = "CANCELLED"
)

// Round numbers for generated fights. Pool and round-robin fights run in
// round 1; the cross-pool elimination stage runs in round 2.
const (
	RoundPool    = 1
	RoundBracket = 2
)

// Fight is a single bout between at most two entries. Either corner may be
// nil (a bye). Duration fields are minutes. FightNo is provisional while the
// fight lives in a draft and becomes definitive at commit.
type Fight struct {
	ID              uuid.UUID   `json:"id"`
	CompetitionID   uuid.UUID   `json:"competition_id"`
	CategoryID      *uuid.UUID  `json:"category_id,omitempty"`
	FightNo         int         `json:"fight_no"`
	Ring            string      `json:"ring,omitempty"`
	RoundNo         int         `json:"round_no"`
	RedEntryID      *uuid.UUID  `json:"red_entry_id,omitempty"`
	BlueEntryID     *uuid.UUID  `json:"blue_entry_id,omitempty"`
	WinnerEntryID   *uuid.UUID  `json:"winner_entry_id,omitempty"`
	Status          FightStatus `json:"status"`
	ScheduledAt     *time.Time  `json:"scheduled_at,omitempty"`
	TimingProfileID *uuid.UUID  `json:"timing_profile_id,omitempty"`
	// ManualTiming marks a duration set by hand on the draft; schedule
	// recalculation keeps it instead of re-resolving.
	ManualTiming  bool `json:"manual_timing,omitempty"`
	RoundDuration int  `json:"round_duration"`
	Rounds        int  `json:"rounds"`
	BreakDuration int  `json:"break_duration"`
	FightPause    int  `json:"fight_pause"`
	FightDuration int  `json:"fight_duration"`
}

// IsBye reports whether the fight has at most one competitor.
func (f Fight) IsBye() bool {
	return f.RedEntryID == nil || f.BlueEntryID == nil
}
