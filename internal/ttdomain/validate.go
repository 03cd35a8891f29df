package ttdomain

import "github.com/coursecraft/timetable/internal/ttlerr"

// Validate runs the input-validation checks from spec section 7, before any
// decision variable is created. It returns the first failure it finds,
// deterministically walking subjects in order.
func (in Inputs) Validate() error {
	if err := in.Config.Validate(); err != nil {
		return err
	}

	branches := make(map[string]bool, len(in.Rooms))
	for _, r := range in.Rooms {
		branches[r.Branch] = true
	}

	for _, s := range in.Subjects {
		if s.LectureOccurrences != 1 && s.LectureOccurrences != 2 {
			return ttlerr.ErrBadOccurrenceCount
		}
		if s.SectionDurationHrs != 1 && s.SectionDurationHrs != 2 {
			return ttlerr.ErrBadSectionDuration
		}
		if !branches[s.Branch] {
			return ttlerr.ErrUnknownBranch
		}
		if _, ok := in.Instructors[s.LectureInstructor]; !ok {
			return ttlerr.ErrUnknownInstructor
		}
		if _, ok := in.Instructors[s.SectionInstructor]; !ok {
			return ttlerr.ErrUnknownInstructor
		}
	}

	return nil
}
