// Package ttdomain holds the immutable input entities: rooms, instructors,
// and subjects. Values here are loaded once and never mutated once event
// generation begins.
package ttdomain

import "github.com/coursecraft/timetable/internal/ttconfig"

// RoomType distinguishes a lab room from a regular room.
type RoomType string

const (
	RoomTypeLab  RoomType = "LAB"
	RoomTypeRoom RoomType = "ROOM"
)

// Room is a physical, branch-scoped teaching space.
type Room struct {
	ID       string
	Branch   string
	Type     RoomType
	Capacity int
	// Tags is an inert passenger field carried over from the teacher's
	// tag-driven Room/Time modeling. No hard constraint reads it; it exists
	// so a future preference layer (out of this spec's scope) has somewhere
	// to attach without a schema change.
	Tags []string
}

// Instructor is identified by ID and carries the set of weekdays they are
// available to teach.
type Instructor struct {
	ID            string
	Name          string
	AvailableDays map[int]bool
	Tags          []string
}

// Subject is one weekly course offering.
type Subject struct {
	ID                 string
	Level              string
	LectureOccurrences int // 1 or 2
	LectureInstructor  string
	SectionInstructor  string
	SectionIsLab       bool
	SectionDurationHrs int // 1 or 2
	CapacityAB         int
	CapacityCD         int
	CapacitySectionsAC int
	CapacitySectionsBD int
	Branch             string
}

// Inputs bundles the three immutable collections plus the configuration
// they are solved under. Rooms and subjects are kept as slices (subject
// order is the event-generation order; the encoder walks rooms sorted by
// ID); instructors are keyed by ID per spec section 6.
type Inputs struct {
	Config      ttconfig.Config
	Rooms       []Room
	Instructors map[string]Instructor
	Subjects    []Subject
}
