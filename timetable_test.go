package timetable

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecraft/timetable/internal/ttencode"
	"github.com/coursecraft/timetable/internal/ttevent"
	"github.com/coursecraft/timetable/internal/ttfixture"
	"github.com/coursecraft/timetable/internal/ttlerr"
	"github.com/coursecraft/timetable/internal/ttlog"
)

func solveScenario(t *testing.T, in Inputs) Result {
	t.Helper()
	in.Config.Limits.MaxTimeInSeconds = 15
	in.Config.Limits.NumSearchWorkers = 8
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result, err := Solve(ctx, in, ttlog.Nop())
	if result.Status.Succeeded() {
		require.NoError(t, err)
	}
	return result
}

// Scenario A — baseline feasibility (spec section 8).
func TestScenarioA_BaselineFeasibility(t *testing.T) {
	in := ttfixture.ScenarioA()
	result := solveScenario(t, in)

	require.True(t, result.Status.Succeeded(), "expected OPTIMAL or FEASIBLE, got %s", result.Status)

	arena := ttevent.Generate(in.Subjects)
	assert.Len(t, result.Placements, len(arena.Events))
}

// Scenario B — cohort coupling.
func TestScenarioB_CohortCoupling(t *testing.T) {
	in := ttfixture.ScenarioA()
	result := solveScenario(t, in)
	require.True(t, result.Status.Succeeded())

	arena := ttevent.Generate(in.Subjects)
	byEventID := placementsByEventID(result.Placements)

	for _, pair := range arena.CohortPairs {
		ab := arena.Events[pair.AB]
		cd := arena.Events[pair.CD]
		abPlacement, ok := byEventID[ab.ID]
		require.True(t, ok)
		cdPlacement, ok := byEventID[cd.ID]
		require.True(t, ok)
		assert.Equal(t, abPlacement.Day, cdPlacement.Day, "AB/CD of the same occurrence must share a day")
	}
}

// Scenario C — lab-only enforcement for Networks sections.
func TestScenarioC_LabOnlyEnforcement(t *testing.T) {
	in := ttfixture.ScenarioA()
	result := solveScenario(t, in)
	require.True(t, result.Status.Succeeded())

	rooms := make(map[string]Room, len(in.Rooms))
	for _, r := range in.Rooms {
		rooms[r.ID] = r
	}

	for _, p := range result.Placements {
		if p.SubjectID != "NET" || p.EventKind != "SECTION" {
			continue
		}
		require.NotEqual(t, RemoteRoom, p.Room)
		assert.Equal(t, RoomTypeLab, rooms[p.Room].Type)
	}
}

// Scenario D — remote on non-F2F days, face-to-face on F2F days.
func TestScenarioD_RemoteOnNonF2FDays(t *testing.T) {
	in := ttfixture.ScenarioA()
	result := solveScenario(t, in)
	require.True(t, result.Status.Succeeded())

	for _, p := range result.Placements {
		if p.SubjectID != "ALG" || p.EventKind != "LECTURE" {
			continue
		}
		isF2FDay := in.Config.F2FDaysAB[p.Day]
		if p.GroupBucket == "CD" {
			isF2FDay = in.Config.F2FDaysCD[p.Day]
		}
		if isF2FDay {
			assert.NotEqual(t, RemoteRoom, p.Room, "ALG %s on F2F day %d must be face-to-face", p.GroupBucket, p.Day)
		} else {
			assert.Equal(t, RemoteRoom, p.Room, "ALG %s on non-F2F day %d must be remote", p.GroupBucket, p.Day)
		}
	}
}

// Scenario E — instructor availability restricts Data Science to Mon/Tue/Thu.
func TestScenarioE_InstructorAvailability(t *testing.T) {
	in := ttfixture.ScenarioA()
	result := solveScenario(t, in)
	require.True(t, result.Status.Succeeded())

	for _, p := range result.Placements {
		if p.SubjectID != "DS" {
			continue
		}
		assert.Contains(t, []int{ttfixture.Mon, ttfixture.Tue, ttfixture.Thu}, p.Day)
		assert.NotContains(t, []int{ttfixture.Sun, ttfixture.Wed}, p.Day)
	}
}

// Scenario F — infeasibility when every instructor is only available Sunday.
func TestScenarioF_Infeasibility(t *testing.T) {
	in := ttfixture.ScenarioF()
	in.Config.Limits.MaxTimeInSeconds = 15
	in.Config.Limits.NumSearchWorkers = 8

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := Solve(ctx, in, ttlog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ttlerr.ErrInfeasible)
	assert.Equal(t, Infeasible, result.Status)
	assert.Empty(t, result.Placements)

	enc, buildErr := ttencode.Build(in)
	require.NoError(t, buildErr)
	assert.NotEmpty(t, ttencode.Explain(enc))
}

func placementsByEventID(placements []Placement) map[string]Placement {
	out := make(map[string]Placement, len(placements))
	for _, p := range placements {
		out[p.EventID] = p
	}
	return out
}
