package textdiff

// Common affix detection.
//
// Prefix and suffix lengths are found by binary search on substring
// equality rather than a rune-by-rune walk; slice comparison is a tight
// loop, so probing whole segments is faster in the common case of a long
// shared affix. Performance analysis in Neil Fraser's writeup:
// https://neil.fraser.name/news/2007/10/09/

// commonPrefixLen returns the number of runes shared at the start of the
// two texts.
func commonPrefixLen(text1, text2 []rune) int {
	if len(text1) == 0 || len(text2) == 0 || text1[0] != text2[0] {
		return 0
	}

	lo := 0
	hi := min(len(text1), len(text2))
	mid := hi
	start := 0
	for lo < mid {
		if runesEqual(text1[start:mid], text2[start:mid]) {
			lo = mid
			start = lo
		} else {
			hi = mid
		}
		mid = (hi-lo)/2 + lo
	}
	return mid
}

// commonSuffixLen returns the number of runes shared at the end of the
// two texts.
func commonSuffixLen(text1, text2 []rune) int {
	if len(text1) == 0 || len(text2) == 0 || text1[len(text1)-1] != text2[len(text2)-1] {
		return 0
	}

	lo := 0
	hi := min(len(text1), len(text2))
	mid := hi
	end := 0
	for lo < mid {
		if runesEqual(text1[len(text1)-mid:len(text1)-end], text2[len(text2)-mid:len(text2)-end]) {
			lo = mid
			end = lo
		} else {
			hi = mid
		}
		mid = (hi-lo)/2 + lo
	}
	return mid
}

// commonOverlapLen returns the number of runes shared between the end of
// text1 and the start of text2, e.g. "abcxxx" and "xxxdef" overlap by 3.
func commonOverlapLen(text1, text2 []rune) int {
	if len(text1) == 0 || len(text2) == 0 {
		return 0
	}

	// Truncate the longer side; only the overlap window matters.
	if len(text1) > len(text2) {
		text1 = text1[len(text1)-len(text2):]
	} else if len(text1) < len(text2) {
		text2 = text2[:len(text1)]
	}
	length := min(len(text1), len(text2))

	// Quick check for the worst case.
	if runesEqual(text1, text2) {
		return length
	}

	// Start with a single-rune match and grow the candidate overlap each
	// time the pattern is found. Performance analysis:
	// https://neil.fraser.name/news/2010/11/04/
	best := 0
	n := 1
	for {
		pattern := text1[len(text1)-n:]
		found := runesIndex(text2, pattern)
		if found == -1 {
			return best
		}
		n += found
		if found == 0 || runesEqual(text1[len(text1)-n:], text2[:n]) {
			best = n
			n++
		}
	}
}
