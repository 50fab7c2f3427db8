package models

import "github.com/google/uuid"

// SurfaceType defines the kind of physical competition area.
type SurfaceType string

const (
	SurfaceTypeTatami SurfaceType = "TATAMI"
	SurfaceTypeRing   SurfaceType = "RING"
)

// TimingMode selects how fight durations are resolved.
type TimingMode string

const (
	TimingModeGlobal   TimingMode = "GLOBAL"
	TimingModeCategory TimingMode = "CATEGORY"
)

// GenerationMode selects whether fights are auto-generated or entered by hand.
type GenerationMode string

const (
	GenerationModeAuto   GenerationMode = "AUTO"
	GenerationModeManual GenerationMode = "MANUAL"
)

// SurfaceDetail describes one configured surface.
type SurfaceDetail struct {
	Name string      `json:"name"`
	Type SurfaceType `json:"type"`
}

// GenerationSettings holds the per-competition fight generation
// configuration. FightDuration and BreakDuration are minutes and act as the
// global fallback when no timing profile applies.
type GenerationSettings struct {
	CompetitionID  uuid.UUID       `json:"competition_id"`
	SurfaceCount   int             `json:"surface_count"`
	Surfaces       []SurfaceDetail `json:"surfaces"`
	FightDuration  int             `json:"fight_duration"`
	BreakDuration  int             `json:"break_duration"`
	TimingMode     TimingMode      `json:"timing_mode"`
	Mode           GenerationMode  `json:"mode"`
	AutoLock       bool            `json:"auto_lock"`
	AllowUnweighed bool            `json:"allow_unweighed"`
}

// DefaultGenerationSettings returns the settings a competition starts with
// before an operator has saved anything.
func DefaultGenerationSettings(competitionID uuid.UUID) GenerationSettings {
	return GenerationSettings{
		CompetitionID: competitionID,
		SurfaceCount:  1,
		Surfaces:      []SurfaceDetail{{Name: "Surface 1", Type: SurfaceTypeTatami}},
		FightDuration: 3,
		BreakDuration: 1,
		TimingMode:    TimingModeGlobal,
		Mode:          GenerationModeAuto,
	}
}
