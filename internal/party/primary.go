package party

// SetPrimary rewrites the primary flag across the whole draft collection so
// that exactly the member at index carries it. An out-of-range index clears
// the flag everywhere.
func SetPrimary[T any](items []T, index int, set func(*T, bool)) {
	for i := range items {
		set(&items[i], i == index)
	}
}

// ReassignAfterRemoval hands the primary flag to the first remaining member
// when the removed one held it. The index-0 tie-break is deterministic but
// arbitrary. An emptied collection keeps no primary; callers enforce the
// minimum-one-member rule at the presentation layer.
func ReassignAfterRemoval[T any](items []T, removedWasPrimary bool, set func(*T, bool)) {
	if !removedWasPrimary || len(items) == 0 {
		return
	}
	set(&items[0], true)
}
