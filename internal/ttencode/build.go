package ttencode

import (
	"sort"

	"github.com/nextmv-io/sdk/mip"

	"github.com/coursecraft/timetable/internal/ttconfig"
	"github.com/coursecraft/timetable/internal/ttdomain"
	"github.com/coursecraft/timetable/internal/ttevent"
)

// builder accumulates the per-(day,hour,*) occupancy lists used to post the
// room/instructor/level non-overlap constraints once every event's
// variables have been created. Lists are appended in variable-creation
// order (events in generation order, days ascending, hours ascending,
// rooms by identifier), so posting order is reproducible even though the
// occupancy lookups themselves are keyed by map for O(1) access.
type builder struct {
	enc    *Encoding
	inputs ttdomain.Inputs

	roomOcc  map[int]map[int]map[int][]mip.Bool    // room idx -> day -> hour -> vars
	instrOcc map[string]map[int]map[int][]mip.Bool // instructor ID -> day -> hour -> vars
	levelOcc map[string]map[int]map[int][]mip.Bool // level -> day -> hour -> vars

	instrOrder []string
	instrSeen  map[string]bool
	levelOrder []string
	levelSeen  map[string]bool

	// eventDayVars caches, per lecture event, the placement variables
	// created on each day it has any — the cohort same-day constraint
	// (spec section 4.2, family 5) reifies these into day indicators.
	eventDayVars map[int]map[int][]mip.Bool
}

// Build encodes inputs into a fully-posted mip.Model, ready to hand to a
// solver. It returns a validation error unchanged if inputs do not pass
// ttdomain.Inputs.Validate; no variable is created in that case.
func Build(inputs ttdomain.Inputs) (*Encoding, error) {
	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	arena := ttevent.Generate(inputs.Subjects)
	rooms := append([]ttdomain.Room(nil), inputs.Rooms...)
	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	enc := newEncoding(inputs.Config, arena, rooms)

	b := &builder{
		enc:       enc,
		inputs:    inputs,
		roomOcc:   make(map[int]map[int]map[int][]mip.Bool),
		instrOcc:  make(map[string]map[int]map[int][]mip.Bool),
		levelOcc:  make(map[string]map[int]map[int][]mip.Bool),
		instrSeen:    make(map[string]bool),
		levelSeen:    make(map[string]bool),
		eventDayVars: make(map[int]map[int][]mip.Bool),
	}

	for idx, ev := range arena.Events {
		b.buildEvent(idx, ev)
	}

	b.postRoomNonOverlap()
	b.postInstructorNonOverlap()
	b.postLevelNonOverlap()
	b.postCohortPairing()

	return enc, nil
}

func (b *builder) occRoom(room, day, hour int, v mip.Bool) {
	byDay, ok := b.roomOcc[room]
	if !ok {
		byDay = make(map[int]map[int][]mip.Bool)
		b.roomOcc[room] = byDay
	}
	byHour, ok := byDay[day]
	if !ok {
		byHour = make(map[int][]mip.Bool)
		byDay[day] = byHour
	}
	byHour[hour] = append(byHour[hour], v)
}

func (b *builder) occInstr(instr string, day, hour int, v mip.Bool) {
	if !b.instrSeen[instr] {
		b.instrSeen[instr] = true
		b.instrOrder = append(b.instrOrder, instr)
	}
	byDay, ok := b.instrOcc[instr]
	if !ok {
		byDay = make(map[int]map[int][]mip.Bool)
		b.instrOcc[instr] = byDay
	}
	byHour, ok := byDay[day]
	if !ok {
		byHour = make(map[int][]mip.Bool)
		byDay[day] = byHour
	}
	byHour[hour] = append(byHour[hour], v)
}

func (b *builder) occLevel(level string, day, hour int, v mip.Bool) {
	if !b.levelSeen[level] {
		b.levelSeen[level] = true
		b.levelOrder = append(b.levelOrder, level)
	}
	byDay, ok := b.levelOcc[level]
	if !ok {
		byDay = make(map[int]map[int][]mip.Bool)
		b.levelOcc[level] = byDay
	}
	byHour, ok := byDay[day]
	if !ok {
		byHour = make(map[int][]mip.Bool)
		byDay[day] = byHour
	}
	byHour[hour] = append(byHour[hour], v)
}

// buildEvent creates every surviving variable for one event and posts its
// exactly-one-placement constraint (spec section 4.2, constraint family 1).
func (b *builder) buildEvent(idx int, ev ttevent.Event) {
	enc := b.enc
	cfg := enc.Cfg
	instr, ok := b.inputs.Instructors[ev.Instructor]
	if !ok {
		// ttdomain.Inputs.Validate already rejects this; defensive no-op.
		return
	}
	days := instructorDays(instr, cfg.NumDays())
	family := ttconfig.GroupFamily(ev.Bucket)
	rooms := roomCandidates(ev, enc.Rooms)

	switch ev.Kind {
	case ttevent.Lecture:
		var terms []mip.Bool
		byDay := make(map[int][]mip.Bool)
		for _, d := range days {
			if cfg.IsF2F(family, d) {
				for _, h := range hourRange(cfg.StartHour, cfg.EndHour, 1) {
					for _, r := range rooms {
						v := enc.Model.NewBool()
						enc.XF[fKey{idx, d, h, r}] = v
						b.occRoom(r, d, h, v)
						b.occInstr(ev.Instructor, d, h, v)
						b.occLevel(ev.Level, d, h, v)
						terms = append(terms, v)
						byDay[d] = append(byDay[d], v)
					}
				}
			} else {
				for _, h := range hourRange(cfg.StartHour, cfg.EndHour, 1) {
					v := enc.Model.NewBool()
					enc.XR[rKey{idx, d, h}] = v
					b.occInstr(ev.Instructor, d, h, v)
					b.occLevel(ev.Level, d, h, v)
					terms = append(terms, v)
					byDay[d] = append(byDay[d], v)
				}
			}
		}
		postExactlyOne(enc.Model, terms)
		b.eventDayVars[idx] = byDay

	case ttevent.Section:
		if ev.DurationHrs == 1 {
			var terms []mip.Bool
			for _, d := range days {
				if !cfg.IsF2F(family, d) {
					continue
				}
				for _, h := range hourRange(cfg.StartHour, cfg.EndHour, 1) {
					for _, r := range rooms {
						v := enc.Model.NewBool()
						enc.XF[fKey{idx, d, h, r}] = v
						b.occRoom(r, d, h, v)
						b.occInstr(ev.Instructor, d, h, v)
						b.occLevel(ev.Level, d, h, v)
						terms = append(terms, v)
					}
				}
			}
			postExactlyOne(enc.Model, terms)
			return
		}

		// 2-hour sections: one pair-start boolean per (day, start-hour, room)
		// candidate, tied to both underlying hour booleans.
		var pairs []mip.Bool
		for _, d := range days {
			if !cfg.IsF2F(family, d) {
				continue
			}
			for _, h := range hourRange(cfg.StartHour, cfg.EndHour, 2) {
				for _, r := range rooms {
					first := enc.Model.NewBool()
					second := enc.Model.NewBool()
					enc.XF[fKey{idx, d, h, r}] = first
					enc.XF[fKey{idx, d, h + 1, r}] = second

					p := enc.Model.NewBool()
					enc.PairStart[pairKey{idx, d, h, r}] = p

					// p => first and p => second.
					impliesFirst := enc.Model.NewConstraint(mip.LessThanOrEqual, 0)
					impliesFirst.NewTerm(1, p)
					impliesFirst.NewTerm(-1, first)
					impliesSecond := enc.Model.NewConstraint(mip.LessThanOrEqual, 0)
					impliesSecond.NewTerm(1, p)
					impliesSecond.NewTerm(-1, second)

					b.occRoom(r, d, h, p)
					b.occRoom(r, d, h+1, p)
					b.occInstr(ev.Instructor, d, h, p)
					b.occInstr(ev.Instructor, d, h+1, p)
					b.occLevel(ev.Level, d, h, p)
					b.occLevel(ev.Level, d, h+1, p)

					pairs = append(pairs, p)
				}
			}
		}
		postExactlyOne(enc.Model, pairs)
	}
}

// postExactlyOne posts Sum(terms) == 1. An event with no surviving
// candidates (terms empty) posts an unsatisfiable 0 == 1 constraint, which
// is the correct behavior: it forces the whole model infeasible rather than
// silently dropping the event.
func postExactlyOne(m mip.Model, terms []mip.Bool) {
	c := m.NewConstraint(mip.Equal, 1)
	for _, v := range terms {
		c.NewTerm(1, v)
	}
}
