package ttencode

import "github.com/nextmv-io/sdk/mip"

// dayIndicator returns (creating and caching on first use) the reified
// boolean y[event,day] that is 1 iff any of the event's placement
// variables on that day is 1 — the two-sided conditional from spec
// section 9: under y=1, Sum(vars) >= 1; under y=0, Sum(vars) = 0. If the
// event has no candidates at all on that day, y is pinned to 0 directly.
func (b *builder) dayIndicator(event, day int) mip.Bool {
	key := dayIndKey{event, day}
	if v, ok := b.enc.dayInd[key]; ok {
		return v
	}

	vars := b.eventDayVars[event][day]
	y := b.enc.Model.NewBool()

	if len(vars) == 0 {
		pin := b.enc.Model.NewConstraint(mip.Equal, 0)
		pin.NewTerm(1, y)
		b.enc.dayInd[key] = y
		return y
	}

	// Sum(vars) - n*y <= 0: y=0 forces the sum to 0.
	upper := b.enc.Model.NewConstraint(mip.LessThanOrEqual, 0)
	for _, v := range vars {
		upper.NewTerm(1, v)
	}
	upper.NewTerm(float64(-len(vars)), y)

	// Sum(vars) - y >= 0: y=1 forces the sum to at least 1.
	lower := b.enc.Model.NewConstraint(mip.GreaterThanOrEqual, 0)
	for _, v := range vars {
		lower.NewTerm(1, v)
	}
	lower.NewTerm(-1, y)

	b.enc.dayInd[key] = y
	return y
}

// postCohortPairing posts constraint family 5: for each lecture occurrence,
// its AB and CD events land on the same day.
func (b *builder) postCohortPairing() {
	cfg := b.enc.Cfg
	for _, pair := range b.enc.Arena.CohortPairs {
		var abIndicators, cdIndicators []mip.Bool
		for d := 0; d < cfg.NumDays(); d++ {
			yab := b.dayIndicator(pair.AB, d)
			ycd := b.dayIndicator(pair.CD, d)
			abIndicators = append(abIndicators, yab)
			cdIndicators = append(cdIndicators, ycd)

			same := b.enc.Model.NewConstraint(mip.Equal, 0)
			same.NewTerm(1, yab)
			same.NewTerm(-1, ycd)
		}

		sumAB := b.enc.Model.NewConstraint(mip.Equal, 1)
		for _, v := range abIndicators {
			sumAB.NewTerm(1, v)
		}
		sumCD := b.enc.Model.NewConstraint(mip.Equal, 1)
		for _, v := range cdIndicators {
			sumCD.NewTerm(1, v)
		}
	}
}
