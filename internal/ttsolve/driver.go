package ttsolve

import (
	"context"
	"sort"
	"time"

	"github.com/nextmv-io/sdk/mip"
	"go.uber.org/zap"

	"github.com/coursecraft/timetable/internal/ttconfig"
	"github.com/coursecraft/timetable/internal/ttencode"
	"github.com/coursecraft/timetable/internal/ttlerr"
)

// Solve invokes the mip-backed solver on a built Encoding, bounded by
// limits.MaxTimeInSeconds, and extracts placements on a feasible result.
// Cancelling ctx does not interrupt the solver: Solve still waits for it to
// return, and the status is taken from the returned solution and the
// elapsed time against limits.MaxTimeInSeconds. This is the one blocking,
// suspension-capable call in the whole pipeline (spec section 5).
func Solve(ctx context.Context, enc *ttencode.Encoding, limits ttconfig.Limits, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	solver, err := mip.NewSolver(mip.Highs, enc.Model)
	if err != nil {
		return Result{}, ttlerr.Wrap(err, ttlerr.CodeSolverInternal, "failed to construct solver")
	}

	solveOptions := mip.NewSolveOptions()
	if err := solveOptions.SetMaximumDuration(limits.Duration()); err != nil {
		return Result{}, ttlerr.Wrap(err, ttlerr.CodeSolverInternal, "failed to configure solve duration")
	}

	// NumSearchWorkers is recorded on the Result but not passed to the
	// solver options: the open-source HiGHS MIP backend bundled behind this
	// SDK does not expose a CP-SAT-style worker-count knob, so
	// WorkersHonored is always false. See DESIGN.md's Open Question
	// resolution.
	workersHonored := false

	start := time.Now()
	done := make(chan struct{})
	var solution mip.Solution
	var solveErr error
	go func() {
		solution, solveErr = solver.Solve(solveOptions)
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		// The deadline bound is the only cancellation path (spec section 5);
		// the in-flight solve still has to return before we can extract.
		<-done
	}
	elapsed := time.Since(start)

	if solveErr != nil {
		log.Error("solver failed", zap.Error(solveErr))
		return Result{}, ttlerr.Wrap(solveErr, ttlerr.CodeSolverInternal, "solver returned an error")
	}

	status, ok := classify(solution, elapsed, limits.Duration())
	log.Info("solve finished",
		zap.String("status", string(status)),
		zap.Duration("elapsed", elapsed),
	)

	result := Result{
		Status:           status,
		WorkersRequested: limits.NumSearchWorkers,
		WorkersHonored:   workersHonored,
	}

	if !ok {
		switch status {
		case Infeasible:
			return result, ttlerr.ErrInfeasible
		case Timeout:
			return result, ttlerr.ErrTimeout
		}
		return result, nil
	}

	result.Placements = extract(enc, solution)
	return result, nil
}

// classify maps the solver's solution onto spec section 4.3's status
// vocabulary and reports whether a usable (extractable) solution exists.
func classify(solution mip.Solution, elapsed, limit time.Duration) (Status, bool) {
	if solution.IsOptimal() {
		return Optimal, true
	}
	if solution.IsSubOptimal() {
		return Feasible, true
	}
	if elapsed >= limit {
		return Timeout, false
	}
	return Infeasible, false
}

// extract walks every variable assigned 1 and emits one placement per
// event, per spec section 4.3. 2-hour sections are emitted as a single
// placement with duration=2, read off the pair-start auxiliary.
func extract(enc *ttencode.Encoding, solution mip.Solution) []Placement {
	const assigned = 0.5

	out := make([]Placement, 0, len(enc.Arena.Events))

	for idx, ev := range enc.Arena.Events {
		placed := false

		if ev.DurationHrs == 2 {
			for k, v := range enc.PairStart {
				if k.Event != idx || solution.Value(v) < assigned {
					continue
				}
				out = append(out, Placement{
					Branch:       ev.Branch,
					Day:          k.Day,
					Hour:         k.Hour,
					Room:         enc.Rooms[k.Room].ID,
					SubjectID:    ev.SubjectID,
					EventKind:    ev.Kind.String(),
					GroupBucket:  ev.Bucket,
					InstructorID: ev.Instructor,
					Level:        ev.Level,
					DurationHrs:  2,
					EventID:      ev.ID,
				})
				placed = true
				break
			}
			if placed {
				continue
			}
		}

		for k, v := range enc.XF {
			if k.Event != idx || solution.Value(v) < assigned {
				continue
			}
			out = append(out, Placement{
				Branch:       ev.Branch,
				Day:          k.Day,
				Hour:         k.Hour,
				Room:         enc.Rooms[k.Room].ID,
				SubjectID:    ev.SubjectID,
				EventKind:    ev.Kind.String(),
				GroupBucket:  ev.Bucket,
				InstructorID: ev.Instructor,
				Level:        ev.Level,
				DurationHrs:  1,
				EventID:      ev.ID,
			})
			placed = true
			break
		}
		if placed {
			continue
		}

		for k, v := range enc.XR {
			if k.Event != idx || solution.Value(v) < assigned {
				continue
			}
			out = append(out, Placement{
				Branch:       ev.Branch,
				Day:          k.Day,
				Hour:         k.Hour,
				Room:         RemoteRoom,
				SubjectID:    ev.SubjectID,
				EventKind:    ev.Kind.String(),
				GroupBucket:  ev.Bucket,
				InstructorID: ev.Instructor,
				Level:        ev.Level,
				DurationHrs:  1,
				EventID:      ev.ID,
			})
			break
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Branch != b.Branch {
			return a.Branch < b.Branch
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Hour != b.Hour {
			return a.Hour < b.Hour
		}
		return a.Room < b.Room
	})

	return out
}
