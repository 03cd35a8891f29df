// Package ttfixture builds the concrete reference dataset from spec
// section 8's testable-properties scenarios (A through F), in Go literal
// form rather than parsed from a file — input loading is out of scope for
// the core, so the fixtures exist purely for tests and the demo CLI.
package ttfixture

import (
	"github.com/coursecraft/timetable/internal/ttconfig"
	"github.com/coursecraft/timetable/internal/ttdomain"
)

// Weekday indices for the reference DAYS = [Sun, Mon, Tue, Wed, Thu].
const (
	Sun = 0
	Mon = 1
	Tue = 2
	Wed = 3
	Thu = 4
)

// Config returns the Scenario A configuration: five weekdays, working
// hours 8-18, AB face-to-face on Wed/Thu, CD face-to-face on Sun/Mon/Tue.
func Config() ttconfig.Config {
	return ttconfig.Config{
		Days:      []string{"Sun", "Mon", "Tue", "Wed", "Thu"},
		StartHour: 8,
		EndHour:   18,
		F2FDaysAB: map[int]bool{Wed: true, Thu: true},
		F2FDaysCD: map[int]bool{Sun: true, Mon: true, Tue: true},
		Limits:    ttconfig.DefaultLimits(),
	}
}

// Rooms returns the five Scenario A rooms, spanning the Main and City
// branches.
func Rooms() []ttdomain.Room {
	return []ttdomain.Room{
		{ID: "MAIN-101", Branch: "Main", Type: ttdomain.RoomTypeRoom, Capacity: 40},
		{ID: "MAIN-102", Branch: "Main", Type: ttdomain.RoomTypeRoom, Capacity: 35},
		{ID: "MAIN-LAB1", Branch: "Main", Type: ttdomain.RoomTypeLab, Capacity: 25},
		{ID: "CITY-201", Branch: "City", Type: ttdomain.RoomTypeRoom, Capacity: 30},
		{ID: "CITY-LAB1", Branch: "City", Type: ttdomain.RoomTypeLab, Capacity: 20},
	}
}

// Instructors returns the three Scenario A instructors. D_DS's
// availability ({Mon, Tue, Thu}) is Scenario E's fixture.
func Instructors() map[string]ttdomain.Instructor {
	return map[string]ttdomain.Instructor{
		"D_ALG": {
			ID:            "D_ALG",
			Name:          "Dr. Alger",
			AvailableDays: map[int]bool{Sun: true, Mon: true, Tue: true, Wed: true, Thu: true},
		},
		"D_NET": {
			ID:            "D_NET",
			Name:          "Dr. Netz",
			AvailableDays: map[int]bool{Sun: true, Mon: true, Tue: true, Wed: true, Thu: true},
		},
		"D_DS": {
			ID:            "D_DS",
			Name:          "Dr. Dawson",
			AvailableDays: map[int]bool{Mon: true, Tue: true, Thu: true},
		},
	}
}

// Subjects returns the three Scenario A subjects: Algorithms (two weekly
// lecture occurrences), Networks (one occurrence, lab sections), and Data
// Science (one occurrence).
func Subjects() []ttdomain.Subject {
	return []ttdomain.Subject{
		{
			ID:                 "ALG",
			Level:              "L1",
			LectureOccurrences: 2,
			LectureInstructor:  "D_ALG",
			SectionInstructor:  "D_ALG",
			SectionIsLab:       false,
			SectionDurationHrs: 1,
			CapacityAB:         30,
			CapacityCD:         30,
			CapacitySectionsAC: 20,
			CapacitySectionsBD: 20,
			Branch:             "Main",
		},
		{
			ID:                 "NET",
			Level:              "L2",
			LectureOccurrences: 1,
			LectureInstructor:  "D_NET",
			SectionInstructor:  "D_NET",
			SectionIsLab:       true,
			SectionDurationHrs: 2,
			CapacityAB:         25,
			CapacityCD:         25,
			CapacitySectionsAC: 15,
			CapacitySectionsBD: 15,
			Branch:             "Main",
		},
		{
			ID:                 "DS",
			Level:              "L3",
			LectureOccurrences: 1,
			LectureInstructor:  "D_DS",
			SectionInstructor:  "D_DS",
			SectionIsLab:       false,
			SectionDurationHrs: 1,
			CapacityAB:         20,
			CapacityCD:         20,
			CapacitySectionsAC: 15,
			CapacitySectionsBD: 15,
			Branch:             "City",
		},
	}
}

// ScenarioA assembles the baseline feasibility fixture (spec section 8).
func ScenarioA() ttdomain.Inputs {
	return ttdomain.Inputs{
		Config:      Config(),
		Rooms:       Rooms(),
		Instructors: Instructors(),
		Subjects:    Subjects(),
	}
}

// ScenarioF returns Scenario A with every instructor's availability
// collapsed to Sunday only, which spec section 8 asserts is INFEASIBLE:
// the AB-family sections (S4, S5, S6) of every subject need a Wed/Thu
// F2F day that no instructor is ever available on.
func ScenarioF() ttdomain.Inputs {
	in := ScenarioA()
	only := map[int]bool{Sun: true}
	narrowed := make(map[string]ttdomain.Instructor, len(in.Instructors))
	for id, instr := range in.Instructors {
		instr.AvailableDays = only
		narrowed[id] = instr
	}
	in.Instructors = narrowed
	return in
}
