// Package ttconfig holds the explicit configuration record threaded into
// the encoder and solver driver. There is no process-wide mutable state:
// every solve takes its own Config value.
package ttconfig

import (
	"time"

	"github.com/coursecraft/timetable/internal/ttlerr"
)

// SectionGroup names one of the six section buckets.
type SectionGroup string

const (
	S1 SectionGroup = "S1"
	S2 SectionGroup = "S2"
	S3 SectionGroup = "S3"
	S4 SectionGroup = "S4"
	S5 SectionGroup = "S5"
	S6 SectionGroup = "S6"
)

// SectionGroupsAC and SectionGroupsBD are the fixed section-naming tuples
// from spec section 6.
var (
	SectionGroupsAC = [3]SectionGroup{S1, S2, S3}
	SectionGroupsBD = [3]SectionGroup{S4, S5, S6}
)

// Limits bounds the solver call.
type Limits struct {
	MaxTimeInSeconds float64
	NumSearchWorkers int
}

// DefaultLimits matches spec section 4.3's defaults.
func DefaultLimits() Limits {
	return Limits{MaxTimeInSeconds: 15, NumSearchWorkers: 8}
}

// Duration converts MaxTimeInSeconds to a time.Duration for the solver call.
func (l Limits) Duration() time.Duration {
	return time.Duration(l.MaxTimeInSeconds * float64(time.Second))
}

// Config carries the enumerated parameters from spec section 6 except the
// fixed section-group tuples, which are the package-level SectionGroupsAC
// and SectionGroupsBD.
type Config struct {
	Days       []string
	StartHour  int
	EndHour    int
	F2FDaysAB  map[int]bool
	F2FDaysCD  map[int]bool
	Limits     Limits
}

// NumDays returns D, the number of weekday indices 0..D-1.
func (c Config) NumDays() int {
	return len(c.Days)
}

// IsF2F reports whether day d is a face-to-face day for the given bucket's
// F2F day set. bucket must be one of "AB" or "CD"; callers translate the six
// section groups onto AB/CD via GroupFamily.
func (c Config) IsF2F(bucket string, day int) bool {
	switch bucket {
	case "AB":
		return c.F2FDaysAB[day]
	case "CD":
		return c.F2FDaysCD[day]
	}
	return false
}

// GroupFamily maps a group bucket (AB, CD, S1..S6) onto the F2F day-set
// family it follows, per spec section 3: AB and S4/S5/S6 share F2F_DAYS_AB;
// CD and S1/S2/S3 share F2F_DAYS_CD.
func GroupFamily(bucket string) string {
	switch bucket {
	case "AB", string(S4), string(S5), string(S6):
		return "AB"
	case "CD", string(S1), string(S2), string(S3):
		return "CD"
	}
	return ""
}

// Validate checks the structural preconditions from spec section 7 that do
// not depend on rooms/instructors/subjects (those are checked by
// ttdomain.Validate once the full input set is available).
func (c Config) Validate() error {
	if len(c.Days) == 0 {
		return ttlerr.ErrEmptyDays
	}
	if c.EndHour <= c.StartHour {
		return ttlerr.ErrBadHourWindow
	}
	for d := range c.F2FDaysAB {
		if c.F2FDaysCD[d] {
			return ttlerr.New(ttlerr.CodeValidation, "F2F_DAYS_AB and F2F_DAYS_CD must be disjoint")
		}
	}
	return nil
}
