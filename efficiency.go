package textdiff

// Efficiency cleanup.
//
// Applying an edit script has a fixed per-fragment overhead, so a short
// equality that splits two edits can cost more than it saves. This pass
// absorbs such equalities into the surrounding edits, trading diff
// minimality for fewer, larger fragments.

// cleanupEfficiency reduces the number of edits by eliminating
// operationally trivial equalities. An equality shorter than editCost and
// preceded by some edit is a candidate; it is absorbed when edits exist
// on all four sides of it, or when it is shorter than half the cost and
// edits exist on three of the four sides. "Shorter than half" is integer
// arithmetic: len*2 < editCost.
func cleanupEfficiency(diffs []edit, editCost int) []edit {
	changes := false
	var equalities []int // stack of indices of candidate equalities
	var lastEquality []rune
	pointer := 0
	preIns := false  // insertion before the last candidate
	preDel := false  // deletion before the last candidate
	postIns := false // insertion after the last candidate
	postDel := false // deletion after the last candidate
	for pointer < len(diffs) {
		if diffs[pointer].op == Equal {
			if len(diffs[pointer].text) < editCost && (postIns || postDel) {
				// Candidate found.
				equalities = append(equalities, pointer)
				preIns = postIns
				preDel = postDel
				lastEquality = diffs[pointer].text
			} else {
				// Not a candidate, and can never become one.
				equalities = equalities[:0]
				lastEquality = nil
			}
			postIns = false
			postDel = false
		} else {
			if diffs[pointer].op == Delete {
				postDel = true
			} else {
				postIns = true
			}

			// Five configurations to be split, X being the candidate:
			//   <ins>A</ins><del>B</del>X<ins>C</ins><del>D</del>
			//   <ins>A</ins>X<ins>C</ins><del>D</del>
			//   <ins>A</ins><del>B</del>X<ins>C</ins>
			//   <del>A</del>X<ins>C</ins><del>D</del>
			//   <ins>A</ins><del>B</del>X<del>C</del>
			if len(lastEquality) > 0 &&
				((preIns && preDel && postIns && postDel) ||
					(len(lastEquality)*2 < editCost &&
						b2i(preIns)+b2i(preDel)+b2i(postIns)+b2i(postDel) == 3)) {
				// Absorb: duplicate as a delete before and an insert
				// after, same as the semantic demotion.
				insertAt := equalities[len(equalities)-1]
				diffs = splice(diffs, insertAt, 0, edit{op: Delete, text: copyRunes(lastEquality)})
				diffs[insertAt+1].op = Insert
				equalities = equalities[:len(equalities)-1]
				lastEquality = nil
				if preIns && preDel {
					// No changes made which could affect a previous
					// candidate; keep scanning forward.
					postIns = true
					postDel = true
					equalities = equalities[:0]
				} else {
					// Rewind to reevaluate the previous candidate.
					if len(equalities) > 0 {
						equalities = equalities[:len(equalities)-1]
					}
					if len(equalities) > 0 {
						pointer = equalities[len(equalities)-1]
					} else {
						pointer = -1
					}
					postIns = false
					postDel = false
				}
				changes = true
			}
		}
		pointer++
	}

	if changes {
		diffs = cleanupMerge(diffs)
	}
	return diffs
}
