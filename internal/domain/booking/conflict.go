package booking

import "github.com/google/uuid"

// OccupiedSlot is the projection of an existing booking the conflict check
// needs: its identity, its range and whether its status still holds the slot.
type OccupiedSlot struct {
	BookingID uuid.UUID
	Start     TimeOfDay
	End       TimeOfDay
	Status    Status
}

// HasConflict reports whether the candidate range would overlap any existing
// booking on the same turf and date. Half-open semantics: [s1,e1) and
// [s2,e2) conflict iff s1 < e2 && s2 < e1, so back-to-back slots touch
// without conflicting. The exclude ID lets a modify-in-place operation
// ignore its own prior row; pass uuid.Nil otherwise. Pure, no side effects.
func HasConflict(existing []OccupiedSlot, start, end TimeOfDay, excludeID uuid.UUID) bool {
	for _, occ := range existing {
		if occ.BookingID == excludeID {
			continue
		}
		if !occ.Status.Occupies() {
			continue
		}
		if start < occ.End && occ.Start < end {
			return true
		}
	}
	return false
}

// FreeRanges returns the complement of the occupied ranges within
// [open,close), merged and sorted. Used by the availability query.
func FreeRanges(existing []OccupiedSlot, open, close TimeOfDay) []Range {
	occupied := make([]Range, 0, len(existing))
	for _, occ := range existing {
		if !occ.Status.Occupies() {
			continue
		}
		s, e := occ.Start, occ.End
		if e <= open || s >= close {
			continue
		}
		if s < open {
			s = open
		}
		if e > close {
			e = close
		}
		occupied = append(occupied, Range{Start: s, End: e})
	}

	sortRanges(occupied)
	merged := mergeRanges(occupied)

	free := make([]Range, 0, len(merged)+1)
	cursor := open
	for _, r := range merged {
		if r.Start > cursor {
			free = append(free, Range{Start: cursor, End: r.Start})
		}
		if r.End > cursor {
			cursor = r.End
		}
	}
	if cursor < close {
		free = append(free, Range{Start: cursor, End: close})
	}
	return free
}

type Range struct {
	Start TimeOfDay
	End   TimeOfDay
}

func sortRanges(rs []Range) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j].Start < rs[j-1].Start; j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}

func mergeRanges(sorted []Range) []Range {
	if len(sorted) == 0 {
		return nil
	}
	merged := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
