// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tracker implements the stateful, per-frame formant slot
// assignment described in spec §4.5: nearest-match assignment,
// duplicate removal, and unassigned-peak placement.
package tracker

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Male and female adult formant seed tables (Hz), spec §6.
var (
	MaleEstimates   = [4]float64{320, 1440, 2760, 3200}
	FemaleEstimates = [4]float64{480, 1760, 3200, 3520}
)

// Tracker holds the current per-slot formant estimates, carried
// across frames. The zero value is not usable; construct with New.
type Tracker[S constraints.Float] struct {
	numFormants int
	bufs        [2][]S // double-buffered estimate vectors, swapped each frame
	cur         int     // index into bufs of the current estimate vector

	// scratch reused across calls to Next: slots and present are sized
	// to numFormants; indices grows to the longest frame seen.
	slots   []S
	present []bool
	indices []int
}

// New constructs a tracker with the given number of formant slots,
// seeded from initialEstimates (typically MaleEstimates,
// FemaleEstimates, or a caller-supplied prior). On the first call to
// Next, estimates is exactly this caller-supplied prior (spec §3).
func New[S constraints.Float](numFormants int, initialEstimates []S) *Tracker[S] {
	t := &Tracker[S]{
		numFormants: numFormants,
		slots:       make([]S, numFormants),
		present:     make([]bool, numFormants),
		indices:     make([]int, 0, 64),
	}
	t.bufs[0] = make([]S, len(initialEstimates), numFormants)
	copy(t.bufs[0], initialEstimates)
	t.bufs[1] = make([]S, 0, numFormants)
	return t
}

// Estimates returns the tracker's current per-slot estimate vector.
func (t *Tracker[S]) Estimates() []S {
	return t.bufs[t.cur]
}

// Reset re-seeds the tracker's estimate vector, e.g. after a voicing
// dropout (spec §9's "re-seed after voicing dropouts").
func (t *Tracker[S]) Reset(estimates []S) {
	buf := t.bufs[t.cur][:0]
	buf = append(buf, estimates...)
	t.bufs[t.cur] = buf
}

// Next consumes one incoming, ascending-sorted frame of resonance
// frequencies and advances the tracker's estimate vector, returning
// the next estimate vector sorted ascending. The returned slice aliases
// the tracker's internal buffer and is only valid until the next call
// to Next.
func (t *Tracker[S]) Next(frame []S) []S {
	cur := t.bufs[t.cur]
	numSlots := len(cur)

	slots := t.slots[:numSlots]
	present := t.present[:numSlots]

	// Step 1: nearest-match assignment, ties broken by lower frame index.
	if cap(t.indices) < len(frame) {
		t.indices = make([]int, len(frame))
	}
	indices := t.indices[:len(frame)]
	for s := 0; s < numSlots; s++ {
		if len(frame) == 0 {
			present[s] = false
			continue
		}
		for i := range indices {
			indices[i] = i
		}
		est := cur[s]
		sort.SliceStable(indices, func(a, b int) bool {
			da := absDiff(frame[indices[a]], est)
			db := absDiff(frame[indices[b]], est)
			return da < db
		})
		slots[s] = frame[indices[0]]
		present[s] = true
	}

	// Step 2: deduplicate. Sweep left to right tracking winner w; if
	// slot r ties slot w on value, keep whichever estimate is closer.
	hasUnassigned := false
	w := 0
	for r := 1; r < numSlots; r++ {
		if !present[r] {
			continue
		}
		if present[w] && slots[r] == slots[w] {
			if absDiff(slots[r], cur[r]) < absDiff(slots[w], cur[w]) {
				present[w] = false
				hasUnassigned = true
				w = r
			} else {
				present[r] = false
				hasUnassigned = true
			}
		} else {
			w = r
		}
	}

	// Step 3: fill unassigned slots from peaks that lost step 1/2.
	if hasUnassigned {
		for j := 0; j < len(frame); j++ {
			peak := frame[j]
			if containsPresent(slots, present, peak) {
				continue
			}
			switch {
			case j < numSlots && !present[j]:
				slots[j] = peak
				present[j] = true
			case j > 0 && j < numSlots && !present[j-1]:
				slots[j], slots[j-1] = slots[j-1], slots[j]
				present[j], present[j-1] = present[j-1], present[j]
				slots[j] = peak
				present[j] = true
			case j+1 < numSlots && !present[j+1]:
				slots[j], slots[j+1] = slots[j+1], slots[j]
				present[j], present[j+1] = present[j+1], present[j]
				slots[j] = peak
				present[j] = true
			}
		}
	}

	// Step 4: emit non-cleared, strictly-positive slots as the next
	// estimate vector, sorted ascending, into the other buffer.
	next := t.bufs[1-t.cur][:0]
	for s := 0; s < numSlots; s++ {
		if present[s] && slots[s] > 0 {
			next = append(next, slots[s])
		}
	}
	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
	t.bufs[1-t.cur] = next
	t.cur = 1 - t.cur
	return next
}

func absDiff[S constraints.Float](a, b S) S {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

func containsPresent[S constraints.Float](slots []S, present []bool, v S) bool {
	for i, p := range slots {
		if present[i] && p == v {
			return true
		}
	}
	return false
}
