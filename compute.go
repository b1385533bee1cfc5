package textdiff

// computeDiff diffs a middle block that has no common prefix or suffix,
// picking the cheapest strategy that applies:
//
//  1. One side empty: a single insert or delete.
//  2. One side contained in the other: the match becomes an equality and
//     the flanks become edits. Not minimal when a smaller edit exists,
//     but always correct, and much faster than bisecting.
//  3. Shorter side is a single rune: it cannot be part of an equality
//     (containment was already ruled out), so delete-all plus insert-all.
//  4. Both sides large and checkLines set: line-granularity first pass.
//  5. Otherwise: full Myers bisection.
func computeDiff(text1, text2 []rune, checkLines bool) []edit {
	if len(text1) == 0 {
		return []edit{{op: Insert, text: text2}}
	}
	if len(text2) == 0 {
		return []edit{{op: Delete, text: text1}}
	}

	long, short := text1, text2
	flank := Delete // flanks come from text1
	if len(text1) <= len(text2) {
		long, short = text2, text1
		flank = Insert
	}
	if i := runesIndex(long, short); i != -1 {
		return []edit{
			{op: flank, text: long[:i]},
			{op: Equal, text: short},
			{op: flank, text: long[i+len(short):]},
		}
	}

	if len(short) == 1 {
		return []edit{
			{op: Delete, text: text1},
			{op: Insert, text: text2},
		}
	}

	if checkLines && len(text1) > lineModeThreshold && len(text2) > lineModeThreshold {
		return lineModeDiff(text1, text2)
	}

	return bisect(text1, text2)
}
