package core

// Stats counts render work for one task. Each tile task owns an instance
// and threads a pointer through the hit path, so the hot per-ray counters
// need no atomics or locks; the scheduler merges tile stats after the
// parallel join.
type Stats struct {
	TracedRays     uint64
	Intersections  uint64
	DroppedSamples uint64
}

// CountRay records one traced ray. Safe on a nil receiver, so callers
// without a stats sink may pass nil.
func (s *Stats) CountRay() {
	if s != nil {
		s.TracedRays++
	}
}

// CountIntersection records one primitive intersection test
func (s *Stats) CountIntersection() {
	if s != nil {
		s.Intersections++
	}
}

// CountDroppedSample records a non-finite radiance sample that was discarded
func (s *Stats) CountDroppedSample() {
	if s != nil {
		s.DroppedSamples++
	}
}

// Merge adds the counters from other into s
func (s *Stats) Merge(other Stats) {
	s.TracedRays += other.TracedRays
	s.Intersections += other.Intersections
	s.DroppedSamples += other.DroppedSamples
}

// IntersectionsPerRay returns the average number of intersection tests per
// traced ray, or zero when no rays were traced
func (s *Stats) IntersectionsPerRay() float64 {
	if s.TracedRays == 0 {
		return 0
	}
	return float64(s.Intersections) / float64(s.TracedRays)
}
