// Package fallback implements the natural-bidding fallback: when no
// conventional rule fires, it derives a call from combined-points and
// Law-of-Total-Tricks heuristics.
package fallback

import "github.com/eseidel/yarborough/internal/call"

// soundPoints is the combined-HCP table for sound bidding, indexed
// [level-1][suited=0/notrump=1].
var soundPoints = [7][2]int{
	{16, 19}, // level 1
	{19, 22}, // level 2
	{22, 25}, // level 3
	{25, 28}, // level 4
	{28, 30}, // level 5
	{33, 33}, // level 6
	{37, 37}, // level 7
}

// levelForCombinedHCP returns the highest level (1-7) whose combined-HCP
// threshold the hand meets, or 0 if it meets none.
func levelForCombinedHCP(combinedHCP int, notrump bool) int {
	col := 0
	if notrump {
		col = 1
	}
	best := 0
	for level := 1; level <= 7; level++ {
		if combinedHCP >= soundPoints[level-1][col] {
			best = level
		}
	}
	return best
}

// lottLevel implements the Law of Total Tricks: for a suit where
// my_length + partner_min_length >= 8, the safe level is
// my_length + partner_min_length - 6. Returns 0 if the
// combined length does not reach the 8-card fit threshold.
func lottLevel(myLength, partnerMinLength int) int {
	total := myLength + partnerMinLength
	if total < 8 {
		return 0
	}
	level := total - 6
	if level > 7 {
		level = 7
	}
	return level
}

// preemptRuleOf234Bonus implements the "rule of 2-3-4" adjustment to a
// raw LOTT preempt level: vulnerable, bid expecting to be down no more
// than 2 (no bonus beyond LOTT); non-vulnerable in 1st/2nd seat, down no
// more than 3 (still no bonus, LOTT's own assumption already covers it);
// non-vulnerable in 3rd/4th seat, down no more than 4, which licenses
// one extra level of preempt.
func preemptRuleOf234Bonus(vulnerable bool, seat3rdOr4th bool) int {
	if vulnerable {
		return 0
	}
	if seat3rdOr4th {
		return 1
	}
	return 0
}

// gameLevel returns the level at which strain becomes game:
// 3NT / 4H / 4S / 5C / 5D.
func gameLevel(strain call.Strain) int {
	if strain.IsNotrump() {
		return 3
	}
	if strain.IsMajor() {
		return 4
	}
	return 5
}
