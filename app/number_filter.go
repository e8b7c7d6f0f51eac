package app

import (
	"sort"

	"fourcast/domain/draw"
)

// FilterResult explains what happened to a candidate number list. Recent
// winners appeared in any tier within the recent span; top-three winners took
// a top-3 prize within the long span; repeat winners won more than once in
// that span.
type FilterResult struct {
	Kept                 []string `json:"kept"`
	RecentWinners        []string `json:"recent_winners"`
	TopThreeWinners      []string `json:"top_three_winners"`
	RepeatWinners        []string `json:"repeat_winners"`
	CandidatesConsidered int      `json:"candidates_considered"`
}

// FilterNumbers removes candidates that recently won, won a top-3 prize in
// the long span, or won repeatedly in the long span. Output slices are sorted
// so results are stable across runs.
func FilterNumbers(candidates []string, recent, longSpan []draw.WinningNumber) FilterResult {
	recentSet := make(map[string]bool, len(recent))
	for _, w := range recent {
		recentSet[w.Number] = true
	}

	topThree := make(map[string]bool)
	longCounts := make(map[string]int, len(longSpan))
	for _, w := range longSpan {
		longCounts[w.Number]++
		switch w.Tier {
		case draw.TierFirst, draw.TierSecond, draw.TierThird:
			topThree[w.Number] = true
		}
	}

	seen := make(map[string]bool, len(candidates))
	result := FilterResult{}
	for _, num := range candidates {
		if seen[num] {
			continue
		}
		seen[num] = true
		result.CandidatesConsidered++

		switch {
		case recentSet[num]:
			result.RecentWinners = append(result.RecentWinners, num)
		case topThree[num]:
			result.TopThreeWinners = append(result.TopThreeWinners, num)
		case longCounts[num] > 1:
			result.RepeatWinners = append(result.RepeatWinners, num)
		default:
			result.Kept = append(result.Kept, num)
		}
	}

	sort.Strings(result.Kept)
	sort.Strings(result.RecentWinners)
	sort.Strings(result.TopThreeWinners)
	sort.Strings(result.RepeatWinners)
	return result
}
