package sensor

import "sort"

// ObstacleSet is a deduplicated set of readings that exceeded the
// detection threshold. Uniqueness is by value equality; insertion
// order is irrelevant.
type ObstacleSet map[Reading]struct{}

func (o ObstacleSet) Add(r Reading) { o[r] = struct{}{} }

func (o ObstacleSet) Contains(r Reading) bool {
	_, ok := o[r]
	return ok
}

func (o ObstacleSet) Len() int { return len(o) }

// Values returns the set sorted ascending, for stable reporting.
func (o ObstacleSet) Values() []Reading {
	out := make([]Reading, 0, len(o))
	for r := range o {
		out = append(out, r)
	}
	sort.Float64s(out)
	return out
}

// Detect reduces raw readings to the set of values strictly exceeding
// threshold. The map-backed set keeps membership O(1), so the whole
// pass is O(len(readings)).
func Detect(readings []Reading, threshold float64) ObstacleSet {
	obstacles := make(ObstacleSet)
	for _, r := range readings {
		if r > threshold {
			obstacles.Add(r)
		}
	}
	return obstacles
}
