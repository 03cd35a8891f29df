// Package ttencode builds the decision variables and hard constraints for
// one solve: xF[e,d,h,r] face-to-face placement booleans, xR[e,d,h] remote
// booleans, and the auxiliary booleans needed for 2-hour sections and the
// cohort same-day pairing. Variables are created lazily — only for cells
// that survive every filter in spec section 4.2 — and keyed by small
// integer structs rather than strings, per the Decision-variable-storage
// design note.
package ttencode

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/coursecraft/timetable/internal/ttconfig"
	"github.com/coursecraft/timetable/internal/ttdomain"
	"github.com/coursecraft/timetable/internal/ttevent"
)

// fKey identifies one xF[e,d,h,r] cell. Room is an index into Encoding.Rooms.
type fKey struct {
	Event, Day, Hour, Room int
}

// rKey identifies one xR[e,d,h] cell.
type rKey struct {
	Event, Day, Hour int
}

// pairKey identifies the pair-start auxiliary for a 2-hour section
// candidate; Hour is the block's starting hour.
type pairKey = fKey

// dayIndKey identifies one cohort day-indicator y[event,d].
type dayIndKey struct {
	Event, Day int
}

// Encoding is the built model plus every index the solver driver needs to
// walk assigned variables back into placements.
type Encoding struct {
	Model mip.Model

	Cfg   ttconfig.Config
	Arena ttevent.Arena
	Rooms []ttdomain.Room

	XF        map[fKey]mip.Bool
	XR        map[rKey]mip.Bool
	PairStart map[pairKey]mip.Bool

	dayInd map[dayIndKey]mip.Bool
}

func newEncoding(cfg ttconfig.Config, arena ttevent.Arena, rooms []ttdomain.Room) *Encoding {
	return &Encoding{
		Model:     mip.NewModel(),
		Cfg:       cfg,
		Arena:     arena,
		Rooms:     rooms,
		XF:        make(map[fKey]mip.Bool),
		XR:        make(map[rKey]mip.Bool),
		PairStart: make(map[pairKey]mip.Bool),
		dayInd:    make(map[dayIndKey]mip.Bool),
	}
}
