package scheduler

import (
	"math"
	"sort"
)

// Allocate splits totalHours across items proportionally to weights and
// returns whole-hour shares that sum to exactly totalHours.
//
// Each exact share is floored, then the leftover hours are awarded one at
// a time to the items with the largest fractional remainders (ties broken
// by original index). No item ends more than one hour away from its exact
// proportional share.
//
// Edge cases: totalHours <= 0 yields all zeros; a zero weight sum falls
// back to an equal split; a single item receives everything.
func Allocate(totalHours int, weights []float64) []int {
	n := len(weights)
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	if totalHours <= 0 {
		return out
	}

	weightSum := 0.0
	for _, w := range weights {
		if w > 0 {
			weightSum += w
		}
	}

	type slot struct {
		index     int
		remainder float64
	}
	slots := make([]slot, n)
	floorSum := 0

	for i, w := range weights {
		var exact float64
		if weightSum == 0 {
			exact = float64(totalHours) / float64(n)
		} else if w > 0 {
			exact = float64(totalHours) * w / weightSum
		}
		fl := math.Floor(exact)
		out[i] = int(fl)
		floorSum += int(fl)
		slots[i] = slot{index: i, remainder: exact - fl}
	}

	deficit := totalHours - floorSum
	if deficit <= 0 {
		return out
	}

	sort.SliceStable(slots, func(a, b int) bool {
		return slots[a].remainder > slots[b].remainder
	})

	for i := 0; deficit > 0; i = (i + 1) % n {
		out[slots[i].index]++
		deficit--
	}

	return out
}

// AllocateWithFloor behaves like Allocate but guarantees every item at
// least minHours, provided the budget allows it. Used for AI task
// rescaling and global normalization where a task must stay non-trivial.
// When totalHours cannot cover the floors, the floors win and the result
// sums to n*minHours instead.
func AllocateWithFloor(totalHours int, weights []float64, minHours int) []int {
	out := Allocate(totalHours, weights)
	if minHours <= 0 {
		return out
	}

	// Raise items below the floor, then claw the excess back from the
	// largest items that can spare it.
	excess := 0
	for i := range out {
		if out[i] < minHours {
			excess += minHours - out[i]
			out[i] = minHours
		}
	}
	for excess > 0 {
		best := -1
		for i := range out {
			if out[i] > minHours && (best == -1 || out[i] > out[best]) {
				best = i
			}
		}
		if best == -1 {
			break
		}
		out[best]--
		excess--
	}
	return out
}

// IntWeights converts integer hour values into allocator weights.
func IntWeights(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
