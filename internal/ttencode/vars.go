package ttencode

import (
	"github.com/coursecraft/timetable/internal/ttdomain"
	"github.com/coursecraft/timetable/internal/ttevent"
)

// roomCandidates returns, in room-identifier order, the indices of rooms
// satisfying filter 4 (branch, type, capacity) for the given event. This
// does not depend on day or hour, so it is computed once per event.
func roomCandidates(ev ttevent.Event, rooms []ttdomain.Room) []int {
	var out []int
	for i, r := range rooms {
		if r.Branch != ev.Branch {
			continue
		}
		if ev.Kind == ttevent.Section && ev.RequiresLab && r.Type != ttdomain.RoomTypeLab {
			continue
		}
		if r.Capacity < ev.CapNeeded {
			continue
		}
		out = append(out, i)
	}
	return out
}

// instructorDays returns, ascending, the weekday indices the instructor is
// available on (filter 1).
func instructorDays(instr ttdomain.Instructor, numDays int) []int {
	var out []int
	for d := 0; d < numDays; d++ {
		if instr.AvailableDays[d] {
			out = append(out, d)
		}
	}
	return out
}

// hourRange returns the candidate start hours for an event of the given
// duration within [startHour, endHour), per filter 3.
func hourRange(startHour, endHour, duration int) []int {
	var out []int
	for h := startHour; h < endHour; h++ {
		if duration == 2 && h+1 >= endHour {
			continue
		}
		out = append(out, h)
	}
	return out
}
