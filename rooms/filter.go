package rooms

// StatusFilter selects rooms by their availability classification.
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusFree
	StatusBusy
)

// FilterCriteria is the pure predicate input for room filtering. Zero values
// mean "not requested"; the struct is never mutated after construction.
type FilterCriteria struct {
	Status      StatusFilter
	Features    []string
	MinCapacity int64
	Floor       string
}

// HasFeatures reports whether the room has every requested feature, by
// case-sensitive exact name match. An empty request is vacuously true; a room
// without a feature list fails any non-empty request.
func HasFeatures(r Room, features []string) bool {
	if len(features) == 0 {
		return true
	}
	if len(r.Features) == 0 {
		return false
	}
	for _, want := range features {
		found := false
		for _, have := range r.Features {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// HasCapacity reports whether the room seats at least min people. A zero
// minimum means no capacity was requested.
func HasCapacity(r Room, min int64) bool {
	if min <= 0 {
		return true
	}
	return r.Capacity >= min
}

// OnFloor reports whether the room is on the requested floor, by exact string
// match. An empty floor means no floor was requested.
func OnFloor(r Room, floor string) bool {
	if floor == "" {
		return true
	}
	return r.Floor == floor
}

// Matches is the conjunction of the feature, capacity and floor predicates.
// Status filtering happens against probe output, not here.
func Matches(r Room, c FilterCriteria) bool {
	return HasFeatures(r, c.Features) && HasCapacity(r, c.MinCapacity) && OnFloor(r, c.Floor)
}
