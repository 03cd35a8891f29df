// Package timetable is the university timetabling core: given rooms,
// instructors, and subjects, it produces a weekly schedule assigning every
// lecture and section a day, starting hour, and (when required) a room.
//
// The package is a thin facade over internal/ttdomain (input entities),
// internal/ttevent (event generation), internal/ttencode (constraint
// encoding against github.com/nextmv-io/sdk/mip), and internal/ttsolve
// (solve + extraction). No input loading, printing, or optimization
// objective lives here or anywhere downstream of it.
package timetable

import (
	"context"

	"go.uber.org/zap"

	"github.com/coursecraft/timetable/internal/ttconfig"
	"github.com/coursecraft/timetable/internal/ttdomain"
	"github.com/coursecraft/timetable/internal/ttencode"
	"github.com/coursecraft/timetable/internal/ttsolve"
)

// Re-exported so callers never need to import the internal packages
// directly.
type (
	Config      = ttconfig.Config
	Limits      = ttconfig.Limits
	Room        = ttdomain.Room
	RoomType    = ttdomain.RoomType
	Instructor  = ttdomain.Instructor
	Subject     = ttdomain.Subject
	Inputs      = ttdomain.Inputs
	Status      = ttsolve.Status
	Placement   = ttsolve.Placement
	Result      = ttsolve.Result
)

const (
	RoomTypeLab  = ttdomain.RoomTypeLab
	RoomTypeRoom = ttdomain.RoomTypeRoom

	Optimal    = ttsolve.Optimal
	Feasible   = ttsolve.Feasible
	Infeasible = ttsolve.Infeasible
	Timeout    = ttsolve.Timeout

	RemoteRoom = ttsolve.RemoteRoom
)

// Solve runs the full pipeline: validate inputs, generate events, encode
// constraints, and solve within the configured time bound. The configured
// worker count is recorded on the Result but not passed to the solver.
//
// On OPTIMAL or FEASIBLE, Result.Placements has exactly one entry per
// generated event. On INFEASIBLE or TIMEOUT, Result.Placements is empty
// and the returned error is one of ttlerr's sentinels (check with
// errors.Is against ttlerr.ErrInfeasible / ttlerr.ErrTimeout), per spec
// section 7's failure semantics: no partial schedule is ever produced.
func Solve(ctx context.Context, in Inputs, log *zap.Logger) (Result, error) {
	enc, err := ttencode.Build(in)
	if err != nil {
		return Result{}, err
	}
	return ttsolve.Solve(ctx, enc, in.Config.Limits, log)
}
