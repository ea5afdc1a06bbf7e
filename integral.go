package sfhandle

import "math"

// Recorded look-back times are in Myr while rates are per year.
const yearsPerMyr = 1.0e6

// Integral returns the total stellar mass formed over the recorded history,
// in solar masses. Each interior gap between consecutive time edges
// contributes its width times the rate at the older edge; the youngest
// edge's rate starts no bin of its own. NaN terms are skipped so a partially
// defined record still integrates to the sum of its finite bins.
func (s *SFH) Integral() float64 {
	var mass float64
	for i := s.Len() - 1; i > 0; i-- {
		term := s.rate[i] * (s.lbTime[i] - s.lbTime[i-1])
		if math.IsNaN(term) {
			continue
		}
		mass += term
	}
	return mass * yearsPerMyr
}

// IntegralAt returns the stellar mass formed at look-back times of at least
// t, in solar masses. Edges younger than t are ignored; the bin between t
// and the first retained edge is counted at its fractional width, so t may
// fall anywhere between recorded edges. Querying beyond the oldest edge
// returns exactly zero. Like Integral, the sum skips NaN terms.
func (s *SFH) IntegralAt(t float64) float64 {
	var mass float64
	prev := t
	for i := 0; i < s.Len(); i++ {
		if math.IsNaN(s.lbTime[i]) || s.lbTime[i] < t {
			continue
		}
		term := s.rate[i] * (s.lbTime[i] - prev)
		if !math.IsNaN(term) {
			mass += term
		}
		prev = s.lbTime[i]
	}
	return mass * yearsPerMyr
}
