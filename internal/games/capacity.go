package games

import (
	"sort"
	"strconv"
	"strings"
)

// VerifyPlayerCount reports whether a queue of size n may start a game whose
// factory declared the given acceptable counts. An empty declaration accepts
// any non-empty queue.
func VerifyPlayerCount(counts []int, n int) bool {
	if len(counts) == 0 {
		return n > 0
	}
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

// DescribePlayerCounts renders the acceptable counts for display, collapsing
// consecutive runs: [2 3 4 6] -> "2-4, 6".
func DescribePlayerCounts(counts []int) string {
	if len(counts) == 0 {
		return "Any"
	}
	nums := make([]int, 0, len(counts))
	seen := make(map[int]bool, len(counts))
	for _, c := range counts {
		if !seen[c] {
			seen[c] = true
			nums = append(nums, c)
		}
	}
	sort.Ints(nums)

	var parts []string
	start := nums[0]
	for i := 1; i <= len(nums); i++ {
		if i < len(nums) && nums[i] == nums[i-1]+1 {
			continue
		}
		if start == nums[i-1] {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, strconv.Itoa(start)+"-"+strconv.Itoa(nums[i-1]))
		}
		if i < len(nums) {
			start = nums[i]
		}
	}
	return strings.Join(parts, ", ")
}
