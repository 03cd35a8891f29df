package ttdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecraft/timetable/internal/ttconfig"
	"github.com/coursecraft/timetable/internal/ttlerr"
)

func baseInputs() Inputs {
	return Inputs{
		Config: ttconfig.Config{
			Days:      []string{"Sun", "Mon"},
			StartHour: 8,
			EndHour:   10,
			F2FDaysAB: map[int]bool{1: true},
			F2FDaysCD: map[int]bool{0: true},
			Limits:    ttconfig.DefaultLimits(),
		},
		Rooms: []Room{
			{ID: "R1", Branch: "Main", Type: RoomTypeRoom, Capacity: 10},
		},
		Instructors: map[string]Instructor{
			"D1": {ID: "D1", AvailableDays: map[int]bool{0: true, 1: true}},
		},
		Subjects: []Subject{
			{
				ID: "S1", Level: "L1", LectureOccurrences: 1,
				LectureInstructor: "D1", SectionInstructor: "D1",
				SectionDurationHrs: 1, Branch: "Main",
				CapacityAB: 5, CapacityCD: 5, CapacitySectionsAC: 5, CapacitySectionsBD: 5,
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, baseInputs().Validate())
}

func TestValidate_UnknownInstructor(t *testing.T) {
	in := baseInputs()
	in.Subjects[0].LectureInstructor = "ghost"
	err := in.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ttlerr.ErrUnknownInstructor)
}

func TestValidate_UnknownBranch(t *testing.T) {
	in := baseInputs()
	in.Subjects[0].Branch = "Nowhere"
	err := in.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ttlerr.ErrUnknownBranch)
}

func TestValidate_BadOccurrenceCount(t *testing.T) {
	in := baseInputs()
	in.Subjects[0].LectureOccurrences = 3
	err := in.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ttlerr.ErrBadOccurrenceCount)
}

func TestValidate_BadSectionDuration(t *testing.T) {
	in := baseInputs()
	in.Subjects[0].SectionDurationHrs = 3
	err := in.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ttlerr.ErrBadSectionDuration)
}

func TestValidate_PropagatesConfigErrors(t *testing.T) {
	in := baseInputs()
	in.Config.Days = nil
	err := in.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ttlerr.ErrEmptyDays)
}
