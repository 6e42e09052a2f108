package game

import "math/rand"

// Daily set size bounds. The target is the number of selected categories
// clamped into this range.
const (
	minDailyChallenges = 3
	maxDailyChallenges = 5
)

// SelectDaily picks the day's challenge set for a user. First pass: one random
// not-yet-completed challenge per selected category (a category whose pool is
// exhausted for today is skipped). Second pass: fill remaining slots up to the
// target by drawing a random selected category and a random eligible challenge
// from it, stopping early when nothing eligible remains anywhere. No challenge
// id repeats within the returned set.
func SelectDaily(selected []string, completedToday []string, rng *rand.Rand) []Challenge {
	if len(selected) == 0 {
		return nil
	}

	target := clamp(len(selected), minDailyChallenges, maxDailyChallenges)

	done := make(map[string]bool, len(completedToday))
	for _, id := range completedToday {
		done[id] = true
	}
	chosen := make(map[string]bool, target)

	eligible := func(category string) []Challenge {
		var out []Challenge
		for _, ch := range catalog[category] {
			if !done[ch.ID] && !chosen[ch.ID] {
				out = append(out, ch)
			}
		}
		return out
	}

	var picks []Challenge
	for _, category := range selected {
		if len(picks) >= target {
			break
		}
		pool := eligible(category)
		if len(pool) == 0 {
			continue
		}
		ch := pool[rng.Intn(len(pool))]
		chosen[ch.ID] = true
		picks = append(picks, ch)
	}

	for len(picks) < target {
		category := selected[rng.Intn(len(selected))]
		pool := eligible(category)
		if len(pool) == 0 {
			// drawn category is dry; bail out only when every category is
			if exhausted(selected, eligible) {
				break
			}
			continue
		}
		ch := pool[rng.Intn(len(pool))]
		chosen[ch.ID] = true
		picks = append(picks, ch)
	}

	return picks
}

func exhausted(selected []string, eligible func(string) []Challenge) bool {
	for _, category := range selected {
		if len(eligible(category)) > 0 {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
