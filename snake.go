package textdiff

// Myers bisection core.
//
// Algorithm source: Myers 1986, "An O(ND) Difference Algorithm and Its
// Variations", section 4b (the linear-space refinement).
// http://www.xmailserver.org/diff2.pdf
//
// Two breadth-first searches over the edit graph run simultaneously: a
// front path from (0,0) and a reverse path from (len1,len2). Each step
// along a diagonal is extended greedily through any run of matching runes
// (a "snake"). The first point where the paths overlap is the middle
// snake, and the problem is split there and solved recursively. Which
// path performs the overlap check depends on the parity of the length
// delta; checking on the correct side guarantees an overlap is seen the
// moment it exists.

// bisect finds the middle snake of a diff, splits the problem in two and
// returns the recursively constructed edit script. The inputs must share
// no common prefix or suffix and neither may be empty.
func bisect(text1, text2 []rune) []edit {
	len1 := len(text1)
	len2 := len(text2)

	maxD := (len1 + len2 + 1) / 2
	vOffset := maxD
	vLength := 2 * maxD
	v1 := make([]int, vLength)
	v2 := make([]int, vLength)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOffset+1] = 0
	v2[vOffset+1] = 0

	delta := len1 - len2
	// If the total number of runes is odd, the front path will collide
	// with the reverse path; if even, the reverse path collides with the
	// front.
	front := delta%2 != 0

	// Offsets trimming the k loops once a path runs off the edge of the
	// grid; there is no point walking diagonals that left the graph.
	k1start, k1end := 0, 0
	k2start, k2end := 0, 0

	for d := 0; d < maxD; d++ {
		// Walk the front path one step.
		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1Offset := vOffset + k1
			var x1 int
			if k1 == -d || (k1 != d && v1[k1Offset-1] < v1[k1Offset+1]) {
				x1 = v1[k1Offset+1]
			} else {
				x1 = v1[k1Offset-1] + 1
			}
			y1 := x1 - k1
			for x1 < len1 && y1 < len2 && text1[x1] == text2[y1] {
				x1++
				y1++
			}
			v1[k1Offset] = x1
			if x1 > len1 {
				// Ran off the right of the graph.
				k1end += 2
			} else if y1 > len2 {
				// Ran off the bottom of the graph.
				k1start += 2
			} else if front {
				k2Offset := vOffset + delta - k1
				if k2Offset >= 0 && k2Offset < vLength && v2[k2Offset] != -1 {
					// Mirror x2 onto the top-left coordinate system.
					x2 := len1 - v2[k2Offset]
					if x1 >= x2 {
						// Overlap detected.
						return bisectSplit(text1, text2, x1, y1)
					}
				}
			}
		}

		// Walk the reverse path one step.
		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2Offset := vOffset + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2Offset-1] < v2[k2Offset+1]) {
				x2 = v2[k2Offset+1]
			} else {
				x2 = v2[k2Offset-1] + 1
			}
			y2 := x2 - k2
			for x2 < len1 && y2 < len2 && text1[len1-x2-1] == text2[len2-y2-1] {
				x2++
				y2++
			}
			v2[k2Offset] = x2
			if x2 > len1 {
				// Ran off the left of the graph.
				k2end += 2
			} else if y2 > len2 {
				// Ran off the top of the graph.
				k2start += 2
			} else if !front {
				k1Offset := vOffset + delta - k2
				if k1Offset >= 0 && k1Offset < vLength && v1[k1Offset] != -1 {
					x1 := v1[k1Offset]
					y1 := vOffset + x1 - k1Offset
					// Mirror x2 onto the top-left coordinate system.
					x2 = len1 - x2
					if x1 >= x2 {
						// Overlap detected.
						return bisectSplit(text1, text2, x1, y1)
					}
				}
			}
		}
	}

	// The search bound guarantees an overlap for well-formed inputs, so
	// reaching here means the texts share nothing at all. The number of
	// edits equals the number of runes.
	return []edit{
		{op: Delete, text: text1},
		{op: Insert, text: text2},
	}
}

// bisectSplit splits the diff at the middle snake coordinates (x, y) and
// diffs both halves, concatenating the results.
func bisectSplit(text1, text2 []rune, x, y int) []edit {
	diffs := diffRunes(text1[:x], text2[:y], false)
	diffsB := diffRunes(text1[x:], text2[y:], false)
	return append(diffs, diffsB...)
}
