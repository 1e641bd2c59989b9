// Copyright 2025 go-wavecodec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compress

import (
	"container/heap"
	"math"
	"slices"

	"github.com/ajroetker/go-wavecodec/wavelet"
)

// magnitudeHeap is a min-heap of absolute values.
type magnitudeHeap []float64

func (h magnitudeHeap) Len() int           { return len(h) }
func (h magnitudeHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h magnitudeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *magnitudeHeap) Push(x any)        { *h = append(*h, x.(float64)) }
func (h *magnitudeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// SortHighest returns the count largest absolute values found in d, in
// ascending order. Fewer values are returned when d holds fewer than count.
func SortHighest(count int, d wavelet.Decomposed) []float64 {
	if count <= 0 {
		return nil
	}

	highest := make(magnitudeHeap, 0, count)
	for _, row := range d {
		for _, value := range row {
			magnitude := math.Abs(value)
			if len(highest) < count {
				heap.Push(&highest, magnitude)
				continue
			}
			if magnitude > highest[0] {
				// Replace the smallest kept value.
				highest[0] = magnitude
				heap.Fix(&highest, 0)
			}
		}
	}

	slices.Sort(highest)
	return highest
}

// PreserveHighest keeps the floor(keepRatio * Count(d)) coefficients with the
// largest magnitude and zeroes the rest, in place. It returns the threshold:
// the smallest kept magnitude, but never less than 1. Every coefficient whose
// magnitude is strictly below the threshold is set to zero, so ties at the
// threshold are all kept.
//
// When the ratio keeps nothing, every coefficient is zeroed and the threshold
// is +Inf.
func PreserveHighest(d wavelet.Decomposed, keepRatio float64) float64 {
	sortedCount := int(keepRatio * float64(Count(d)))

	threshold := math.Inf(1)
	if highest := SortHighest(sortedCount, d); len(highest) > 0 {
		threshold = max(1.0, highest[0])
	}

	for _, row := range d {
		for i, value := range row {
			if math.Abs(value) < threshold {
				row[i] = 0
			}
		}
	}
	return threshold
}
