package generation

import (
	"fmt"

	"github.com/mgrosjean/fightcard/go/internal/models"
)

// Result reports the outcome of a mutating operation. Expected business
// conditions (lock held, no eligible entries, invalid draft) come back as
// OK=false with an operator-readable message instead of an error.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func success(format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, args...)}
}

// GenerateResult is the outcome of one generation run.
type GenerateResult struct {
	Result
	Draft *models.Draft `json:"draft,omitempty"`
	// ExclusionReasons counts excluded entries per failing rule so the
	// operator can see why few or no fights were generated.
	ExclusionReasons map[string]int `json:"exclusion_reasons,omitempty"`
}

func generateFailure(format string, args ...any) GenerateResult {
	return GenerateResult{Result: failure(format, args...)}
}

// Counters is the pre-flight eligibility summary for display.
type Counters struct {
	Considered       int            `json:"considered"`
	Eligible         int            `json:"eligible"`
	Excluded         int            `json:"excluded"`
	ExclusionReasons map[string]int `json:"exclusion_reasons,omitempty"`
}
