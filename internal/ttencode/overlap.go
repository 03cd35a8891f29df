package ttencode

import "github.com/nextmv-io/sdk/mip"

// postRoomNonOverlap posts constraint family 2: for every (d,h,r), at most
// one face-to-face placement. Rooms are walked in identifier order (their
// slice order in Encoding.Rooms), days ascending, hours ascending.
func (b *builder) postRoomNonOverlap() {
	cfg := b.enc.Cfg
	for r := range b.enc.Rooms {
		byDay, ok := b.roomOcc[r]
		if !ok {
			continue
		}
		for d := 0; d < cfg.NumDays(); d++ {
			byHour, ok := byDay[d]
			if !ok {
				continue
			}
			for h := cfg.StartHour; h < cfg.EndHour; h++ {
				vars := byHour[h]
				if len(vars) < 2 {
					continue
				}
				postAtMostOne(b.enc.Model, vars)
			}
		}
	}
}

// postInstructorNonOverlap posts constraint family 3: for every
// (d,h,instructor), at most one event of that instructor, counting both
// delivery modes.
func (b *builder) postInstructorNonOverlap() {
	cfg := b.enc.Cfg
	for _, instr := range b.instrOrder {
		byDay := b.instrOcc[instr]
		for d := 0; d < cfg.NumDays(); d++ {
			byHour, ok := byDay[d]
			if !ok {
				continue
			}
			for h := cfg.StartHour; h < cfg.EndHour; h++ {
				vars := byHour[h]
				if len(vars) < 2 {
					continue
				}
				postAtMostOne(b.enc.Model, vars)
			}
		}
	}
}

// postLevelNonOverlap posts constraint family 4: for every (d,h,level), at
// most one event of that academic level, counting both delivery modes.
func (b *builder) postLevelNonOverlap() {
	cfg := b.enc.Cfg
	for _, level := range b.levelOrder {
		byDay := b.levelOcc[level]
		for d := 0; d < cfg.NumDays(); d++ {
			byHour, ok := byDay[d]
			if !ok {
				continue
			}
			for h := cfg.StartHour; h < cfg.EndHour; h++ {
				vars := byHour[h]
				if len(vars) < 2 {
					continue
				}
				postAtMostOne(b.enc.Model, vars)
			}
		}
	}
}

func postAtMostOne(m mip.Model, vars []mip.Bool) {
	c := m.NewConstraint(mip.LessThanOrEqual, 1)
	for _, v := range vars {
		c.NewTerm(1, v)
	}
}
