package ttevent

import (
	"fmt"

	"github.com/coursecraft/timetable/internal/ttdomain"
)

var sectionBuckets = [6]string{"S1", "S2", "S3", "S4", "S5", "S6"}

// sectionCapacity returns the capacity a section event of the given bucket
// needs: S1-S3 draw from the AC bucket family, S4-S6 from BD, per
// SECTION_GROUPS_AC/BD in spec section 6.
func sectionCapacity(s ttdomain.Subject, bucket string) int {
	switch bucket {
	case "S1", "S2", "S3":
		return s.CapacitySectionsAC
	default:
		return s.CapacitySectionsBD
	}
}

// Generate expands subjects into the deterministic, ordered event sequence
// from spec section 4.1. Subjects are walked in input order; within a
// subject, lecture occurrences come first (AB then CD per occurrence, in
// increasing occurrence number) followed by the six section events in
// S1..S6 order.
func Generate(subjects []ttdomain.Subject) Arena {
	var arena Arena

	for _, s := range subjects {
		for k := 1; k <= s.LectureOccurrences; k++ {
			abID := fmt.Sprintf("%s_L%d_AB", s.ID, k)
			cdID := fmt.Sprintf("%s_L%d_CD", s.ID, k)

			abIdx := len(arena.Events)
			arena.Events = append(arena.Events, Event{
				ID:          abID,
				Kind:        Lecture,
				SubjectID:   s.ID,
				Level:       s.Level,
				Branch:      s.Branch,
				Instructor:  s.LectureInstructor,
				Bucket:      "AB",
				DurationHrs: 1,
				NeedsRoom:   Auto,
				CapNeeded:   s.CapacityAB,
			})

			cdIdx := len(arena.Events)
			arena.Events = append(arena.Events, Event{
				ID:          cdID,
				Kind:        Lecture,
				SubjectID:   s.ID,
				Level:       s.Level,
				Branch:      s.Branch,
				Instructor:  s.LectureInstructor,
				Bucket:      "CD",
				DurationHrs: 1,
				NeedsRoom:   Auto,
				CapNeeded:   s.CapacityCD,
			})

			arena.CohortPairs = append(arena.CohortPairs, CohortPair{
				OccurrenceID: fmt.Sprintf("%s_L%d", s.ID, k),
				AB:           abIdx,
				CD:           cdIdx,
			})
		}

		for _, bucket := range sectionBuckets {
			arena.Events = append(arena.Events, Event{
				ID:          fmt.Sprintf("%s_%s", s.ID, bucket),
				Kind:        Section,
				SubjectID:   s.ID,
				Level:       s.Level,
				Branch:      s.Branch,
				Instructor:  s.SectionInstructor,
				Bucket:      bucket,
				DurationHrs: s.SectionDurationHrs,
				RequiresLab: s.SectionIsLab,
				NeedsRoom:   Yes,
				CapNeeded:   sectionCapacity(s, bucket),
			})
		}
	}

	return arena
}
