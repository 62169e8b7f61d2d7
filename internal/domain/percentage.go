package domain

import (
	"math"
	"strconv"

	"github.com/alexanderramin/scholarform/internal/validate"
)

type PercentState string

const (
	PercentUnset PercentState = "unset"
	PercentSet   PercentState = "set"
	PercentError PercentState = "error"
)

// Percentage is the derived score/total ratio of a subject row.
type Percentage struct {
	State PercentState
	Value float64 // meaningful only when State == PercentSet
}

// ComputePercentage derives the percentage from raw total and score input.
// Non-numeric input counts as 0. A missing or non-positive total always
// yields Unset, even when a score is present.
func ComputePercentage(totalRaw, scoreRaw string) Percentage {
	total := validate.NumberOrZero(totalRaw)
	score := validate.NumberOrZero(scoreRaw)

	switch {
	case total <= 0:
		return Percentage{State: PercentUnset}
	case score > total:
		return Percentage{State: PercentError}
	default:
		v := math.Round(score/total*1000) / 10
		if v == 0 {
			v = 0 // drop negative zero
		}
		return Percentage{State: PercentSet, Value: v}
	}
}

// String renders the display form: "85.0%", "Error" or "-".
func (p Percentage) String() string {
	switch p.State {
	case PercentSet:
		return strconv.FormatFloat(p.Value, 'f', 1, 64) + "%"
	case PercentError:
		return "Error"
	default:
		return "-"
	}
}
