// Package ttsolve drives the CP-SAT-style solve and extracts placements.
package ttsolve

// Status is the solve outcome, per spec section 4.3.
type Status string

const (
	Optimal     Status = "OPTIMAL"
	Feasible    Status = "FEASIBLE"
	Infeasible  Status = "INFEASIBLE"
	Timeout     Status = "TIMEOUT"
)

// Succeeded reports whether placements were produced.
func (s Status) Succeeded() bool {
	return s == Optimal || s == Feasible
}

// RemoteRoom is the sentinel room value for a remote lecture placement.
const RemoteRoom = "REMOTE"

// Placement is the final (day, hour, room-or-REMOTE) assignment for one
// event, per spec section 3 and the output record shape in section 6.
type Placement struct {
	Branch       string `json:"branch"`
	Day          int    `json:"day_index"`
	Hour         int    `json:"hour"`
	Room         string `json:"room"`
	SubjectID    string `json:"subject_id"`
	EventKind    string `json:"event_kind"`
	GroupBucket  string `json:"group_bucket"`
	InstructorID string `json:"instructor_id"`
	Level        string `json:"level"`
	DurationHrs  int    `json:"duration_hours"`
	// EventID is additive traceability beyond spec section 6's enumerated
	// fields: it disambiguates placements that otherwise share every other
	// field (e.g. a subject with two weekly lecture occurrences produces
	// two AB placements with identical branch/subject/bucket/level).
	EventID string `json:"event_id"`
}

// Result is the full outcome of one solve.
type Result struct {
	Status           Status      `json:"status"`
	Placements       []Placement `json:"placements,omitempty"`
	WorkersRequested int         `json:"workers_requested"`
	WorkersHonored   bool        `json:"workers_honored"`
}
