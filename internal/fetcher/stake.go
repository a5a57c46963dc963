package fetcher

import "sort"

// topShare returns the percentage of total stake held by the n largest
// holders. Returns 0 when there is no stake.
func topShare(stakes []float64, n int) float64 {
	if len(stakes) == 0 {
		return 0
	}
	sorted := make([]float64, len(stakes))
	copy(sorted, stakes)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var total, top float64
	for i, s := range sorted {
		total += s
		if i < n {
			top += s
		}
	}
	if total == 0 {
		return 0
	}
	return top / total * 100
}

// nakamoto returns the minimum number of holders whose combined stake
// exceeds the given fraction of the total (the halting threshold for
// BFT-style chains is 1/3).
func nakamoto(stakes []float64, fraction float64) int {
	if len(stakes) == 0 {
		return 0
	}
	sorted := make([]float64, len(stakes))
	copy(sorted, stakes)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var total float64
	for _, s := range sorted {
		total += s
	}
	if total == 0 {
		return 0
	}

	var acc float64
	for i, s := range sorted {
		acc += s
		if acc > total*fraction {
			return i + 1
		}
	}
	return len(sorted)
}
