package ttencode

// DeadEnd names an event that had zero surviving candidate variables after
// every filter in spec section 4.2 — a hard modeling dead end (e.g. no
// room of the right branch/type/capacity exists, or the instructor is
// available on no day that is F2F for the event's bucket). This is purely
// diagnostic: it never relaxes or retries anything, it only distinguishes
// "this event could never have been placed" from "this event had
// candidates that lost out to conflicts."
type DeadEnd struct {
	EventID string
	Reason  string
}

// Explain is a best-effort diagnostic pass run after an INFEASIBLE result.
// It does not attempt to pinpoint which constraint caused infeasibility —
// that is full unsat-core extraction, out of scope — it only flags events
// that never had a chance.
func Explain(enc *Encoding) []DeadEnd {
	hasVar := make(map[int]bool, len(enc.Arena.Events))
	for k := range enc.XF {
		hasVar[k.Event] = true
	}
	for k := range enc.XR {
		hasVar[k.Event] = true
	}
	for k := range enc.PairStart {
		hasVar[k.Event] = true
	}

	var out []DeadEnd
	for idx, ev := range enc.Arena.Events {
		if hasVar[idx] {
			continue
		}
		out = append(out, DeadEnd{
			EventID: ev.ID,
			Reason:  "no candidate day/hour/room survived the instructor, day, hour, or room filters",
		})
	}
	return out
}
