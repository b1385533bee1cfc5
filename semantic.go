package textdiff

import "unicode"

// Semantic cleanup.
//
// The raw bisection output is minimal but often meaningless to a human:
// single characters matching across unrelated regions, edits cutting
// through the middle of words. Three passes fix that: trivially small
// equalities are folded into the surrounding edits, edit boundaries are
// slid to land on word and line boundaries, and overlapping delete/insert
// pairs are reshaped into a true edit around a shared equality.

// cleanupSemantic reduces the number of edits by eliminating semantically
// trivial equalities, then aligns boundaries and extracts overlaps.
func cleanupSemantic(diffs []edit) []edit {
	changes := false
	var equalities []int // stack of indices of kept equalities
	var lastEquality []rune
	pointer := 0
	// Number of runes changed before and after the last kept equality.
	lengthInsertions1, lengthDeletions1 := 0, 0
	lengthInsertions2, lengthDeletions2 := 0, 0
	for pointer < len(diffs) {
		if diffs[pointer].op == Equal {
			equalities = append(equalities, pointer)
			lengthInsertions1, lengthInsertions2 = lengthInsertions2, 0
			lengthDeletions1, lengthDeletions2 = lengthDeletions2, 0
			lastEquality = diffs[pointer].text
		} else {
			if diffs[pointer].op == Insert {
				lengthInsertions2 += len(diffs[pointer].text)
			} else {
				lengthDeletions2 += len(diffs[pointer].text)
			}
			// An equality no longer than the edits on both sides of it is
			// not worth keeping.
			if len(lastEquality) > 0 &&
				len(lastEquality) <= max(lengthInsertions1, lengthDeletions1) &&
				len(lastEquality) <= max(lengthInsertions2, lengthDeletions2) {
				// Demote it: duplicate as a delete before and an insert
				// after.
				insertAt := equalities[len(equalities)-1]
				diffs = splice(diffs, insertAt, 0, edit{op: Delete, text: copyRunes(lastEquality)})
				diffs[insertAt+1].op = Insert
				// Throw away the equality we just deleted.
				equalities = equalities[:len(equalities)-1]
				// Throw away the previous equality too; it needs to be
				// reevaluated now that its right side grew.
				if len(equalities) > 0 {
					equalities = equalities[:len(equalities)-1]
				}
				if len(equalities) > 0 {
					pointer = equalities[len(equalities)-1]
				} else {
					pointer = -1
				}
				lengthInsertions1, lengthDeletions1 = 0, 0
				lengthInsertions2, lengthDeletions2 = 0, 0
				lastEquality = nil
				changes = true
			}
		}
		pointer++
	}

	if changes {
		diffs = cleanupMerge(diffs)
	}
	diffs = cleanupSemanticLossless(diffs)
	return extractOverlaps(diffs)
}

// extractOverlaps finds overlaps between adjacent deletions and
// insertions and pulls them out as shared equalities:
//
//	<del>abcxxx</del><ins>xxxdef</ins> -> <del>abc</del>xxx<ins>def</ins>
//	<del>xxxabc</del><ins>defxxx</ins> -> <ins>def</ins>xxx<del>abc</del>
//
// An overlap is only extracted if it is at least half as long as the
// edit ahead of or behind it.
func extractOverlaps(diffs []edit) []edit {
	pointer := 1
	for pointer < len(diffs) {
		if diffs[pointer-1].op == Delete && diffs[pointer].op == Insert {
			deletion := diffs[pointer-1].text
			insertion := diffs[pointer].text
			overlap1 := commonOverlapLen(deletion, insertion)
			overlap2 := commonOverlapLen(insertion, deletion)
			if overlap1 >= overlap2 {
				if overlap1*2 >= len(deletion) || overlap1*2 >= len(insertion) {
					repl := overlapSplit(Delete, deletion[:len(deletion)-overlap1], insertion[:overlap1], Insert, insertion[overlap1:])
					diffs = splice(diffs, pointer-1, 2, repl...)
					pointer += len(repl) - 2
				}
			} else {
				if overlap2*2 >= len(deletion) || overlap2*2 >= len(insertion) {
					// Reverse overlap: the delete and insert swap sides.
					repl := overlapSplit(Insert, insertion[:len(insertion)-overlap2], deletion[:overlap2], Delete, deletion[overlap2:])
					diffs = splice(diffs, pointer-1, 2, repl...)
					pointer += len(repl) - 2
				}
			}
			pointer++
		}
		pointer++
	}
	return diffs
}

// overlapSplit assembles the replacement for an extracted overlap: the
// leftover flanks around the shared equality, dropping a flank entirely
// when the overlap consumed it. No empty edits are ever emitted.
func overlapSplit(beforeOp OpType, before, overlap []rune, afterOp OpType, after []rune) []edit {
	repl := make([]edit, 0, 3)
	if len(before) > 0 {
		repl = append(repl, edit{op: beforeOp, text: copyRunes(before)})
	}
	repl = append(repl, edit{op: Equal, text: copyRunes(overlap)})
	if len(after) > 0 {
		repl = append(repl, edit{op: afterOp, text: copyRunes(after)})
	}
	return repl
}

// cleanupSemanticLossless looks for single edits surrounded on both sides
// by equalities which can be shifted sideways to align the edit to a word
// boundary, e.g. "The c<ins>at c</ins>ame." -> "The <ins>cat </ins>came."
// The shift is lossless: the script still reproduces the same texts.
func cleanupSemanticLossless(diffs []edit) []edit {
	pointer := 1
	// The first and last element don't need checking.
	for pointer < len(diffs)-1 {
		if diffs[pointer-1].op == Equal && diffs[pointer+1].op == Equal {
			// This is a single edit surrounded by equalities.
			equality1 := diffs[pointer-1].text
			editText := diffs[pointer].text
			equality2 := diffs[pointer+1].text

			// First, shift the edit as far left as possible; that never
			// worsens the boundary and opens up the rightward scan.
			if n := commonSuffixLen(equality1, editText); n > 0 {
				common := editText[len(editText)-n:]
				equality1 = equality1[:len(equality1)-n]
				editText = concatRunes(common, editText[:len(editText)-n])
				equality2 = concatRunes(common, equality2)
			}

			// Second, step rune by rune to the right, keeping the
			// best-scoring position.
			bestEquality1 := equality1
			bestEdit := editText
			bestEquality2 := equality2
			bestScore := boundaryScore(equality1, editText) + boundaryScore(editText, equality2)
			for len(editText) > 0 && len(equality2) > 0 && editText[0] == equality2[0] {
				equality1 = concatRunes(equality1, editText[:1])
				editText = concatRunes(editText[1:], equality2[:1])
				equality2 = equality2[1:]
				score := boundaryScore(equality1, editText) + boundaryScore(editText, equality2)
				// The >= encourages trailing rather than leading
				// whitespace on edits.
				if score >= bestScore {
					bestScore = score
					bestEquality1 = equality1
					bestEdit = editText
					bestEquality2 = equality2
				}
			}

			if !runesEqual(diffs[pointer-1].text, bestEquality1) {
				// An improvement was found; save it back, dropping either
				// flanking equality if it emptied out.
				if len(bestEquality1) > 0 {
					diffs[pointer-1].text = bestEquality1
				} else {
					diffs = splice(diffs, pointer-1, 1)
					pointer--
				}
				diffs[pointer].text = bestEdit
				if len(bestEquality2) > 0 {
					diffs[pointer+1].text = bestEquality2
				} else {
					diffs = splice(diffs, pointer+1, 1)
					pointer--
				}
			}
		}
		pointer++
	}
	return diffs
}

// boundaryScore rates the cut point between two strings from 6 (best) to
// 0 (worst) by how well it lands on a logical boundary:
//
//	6  edge of the text
//	5  blank line
//	4  line break
//	3  end of sentence
//	2  whitespace
//	1  any non-alphanumeric rune
//	0  mid-token
//
// Alphanumeric here follows Go's unicode tables; ports of this heuristic
// differ slightly in what counts as a letter, and that's fine because the
// score is purely cosmetic.
func boundaryScore(one, two []rune) int {
	if len(one) == 0 || len(two) == 0 {
		// Edges are the best.
		return 6
	}

	char1 := one[len(one)-1]
	char2 := two[0]
	nonAlphaNumeric1 := !unicode.IsLetter(char1) && !unicode.IsNumber(char1)
	nonAlphaNumeric2 := !unicode.IsLetter(char2) && !unicode.IsNumber(char2)
	whitespace1 := nonAlphaNumeric1 && unicode.IsSpace(char1)
	whitespace2 := nonAlphaNumeric2 && unicode.IsSpace(char2)
	lineBreak1 := whitespace1 && (char1 == '\r' || char1 == '\n')
	lineBreak2 := whitespace2 && (char2 == '\r' || char2 == '\n')
	blankLine1 := lineBreak1 && endsWithBlankLine(one)
	blankLine2 := lineBreak2 && startsWithBlankLine(two)

	switch {
	case blankLine1 || blankLine2:
		return 5
	case lineBreak1 || lineBreak2:
		return 4
	case nonAlphaNumeric1 && !whitespace1 && whitespace2:
		// End of sentence: punctuation followed by whitespace.
		return 3
	case whitespace1 || whitespace2:
		return 2
	case nonAlphaNumeric1 || nonAlphaNumeric2:
		return 1
	}
	return 0
}

// endsWithBlankLine reports whether text ends with a blank line, i.e.
// matches \n\r?\n at the end.
func endsWithBlankLine(text []rune) bool {
	n := len(text)
	if n >= 2 && text[n-1] == '\n' && text[n-2] == '\n' {
		return true
	}
	return n >= 3 && text[n-1] == '\n' && text[n-2] == '\r' && text[n-3] == '\n'
}

// startsWithBlankLine reports whether text starts with a blank line, i.e.
// matches \r?\n\r?\n at the start.
func startsWithBlankLine(text []rune) bool {
	i := 0
	if i < len(text) && text[i] == '\r' {
		i++
	}
	if i >= len(text) || text[i] != '\n' {
		return false
	}
	i++
	if i < len(text) && text[i] == '\r' {
		i++
	}
	return i < len(text) && text[i] == '\n'
}
