package textdiff

// Merge normalization.
//
// cleanupMerge is the canonical form every other pass relies on: runs of
// same-type operations coalesced, delete-before-insert ordering inside a
// replacement, common affixes of a replacement factored into the
// neighboring equalities, and no empty operations. It is used internally
// after every structural rewrite and once more as the final step.

// splice replaces diffs[index:index+amount] with elements and returns the
// resulting slice. It never writes through shared backing arrays unless
// the replacement is the same length as the removed range.
func splice(diffs []edit, index, amount int, elements ...edit) []edit {
	if len(elements) == amount {
		copy(diffs[index:], elements)
		return diffs
	}
	result := make([]edit, len(diffs)-amount+len(elements))
	copy(result, diffs[:index])
	copy(result[index:], elements)
	copy(result[index+len(elements):], diffs[index+amount:])
	return result
}

// cleanupMerge reorders and merges like edit sections and merges
// equalities. Any edit section can move as long as it doesn't cross an
// equality.
func cleanupMerge(diffs []edit) []edit {
	if len(diffs) == 0 {
		return diffs
	}

	// Dummy equality at the end; always removed before returning.
	diffs = append(diffs, edit{op: Equal})

	pointer := 0
	countDelete := 0
	countInsert := 0
	var textDelete, textInsert []rune
	for pointer < len(diffs) {
		switch diffs[pointer].op {
		case Insert:
			countInsert++
			textInsert = append(textInsert, diffs[pointer].text...)
			pointer++
		case Delete:
			countDelete++
			textDelete = append(textDelete, diffs[pointer].text...)
			pointer++
		case Equal:
			// Upon reaching an equality, merge any preceding run.
			if countDelete+countInsert > 1 {
				if countDelete != 0 && countInsert != 0 {
					// Factor out a common prefix into the equality before
					// the run, creating one if the run starts the script.
					if n := commonPrefixLen(textInsert, textDelete); n != 0 {
						x := pointer - countDelete - countInsert - 1
						if x >= 0 && diffs[x].op == Equal {
							diffs[x].text = concatRunes(diffs[x].text, textInsert[:n])
						} else {
							diffs = splice(diffs, 0, 0, edit{op: Equal, text: copyRunes(textInsert[:n])})
							pointer++
						}
						textInsert = textInsert[n:]
						textDelete = textDelete[n:]
					}
					// Factor out a common suffix into the equality after
					// the run.
					if n := commonSuffixLen(textInsert, textDelete); n != 0 {
						diffs[pointer].text = concatRunes(textInsert[len(textInsert)-n:], diffs[pointer].text)
						textInsert = textInsert[:len(textInsert)-n]
						textDelete = textDelete[:len(textDelete)-n]
					}
				}
				// Replace the run with at most one delete and one insert.
				pointer -= countDelete + countInsert
				var merged []edit
				if len(textDelete) > 0 {
					merged = append(merged, edit{op: Delete, text: copyRunes(textDelete)})
				}
				if len(textInsert) > 0 {
					merged = append(merged, edit{op: Insert, text: copyRunes(textInsert)})
				}
				diffs = splice(diffs, pointer, countDelete+countInsert, merged...)
				// Leave pointer on the current equality so the next
				// iteration re-examines it: a run that factored entirely
				// into the affixes leaves it adjacent to the preceding
				// equality, and the two must coalesce.
				pointer += len(merged)
			} else if pointer != 0 && diffs[pointer-1].op == Equal {
				// Merge this equality with the previous one.
				diffs[pointer-1].text = concatRunes(diffs[pointer-1].text, diffs[pointer].text)
				diffs = splice(diffs, pointer, 1)
			} else {
				pointer++
			}
			countInsert = 0
			countDelete = 0
			textDelete = nil
			textInsert = nil
		}
	}

	if len(diffs[len(diffs)-1].text) == 0 {
		diffs = diffs[:len(diffs)-1] // remove the dummy
	}

	// Second pass: look for single edits surrounded on both sides by
	// equalities which can be shifted sideways to eliminate an equality,
	// e.g. A<ins>BA</ins>C -> <ins>AB</ins>AC.
	changes := false
	pointer = 1
	for pointer < len(diffs)-1 {
		if diffs[pointer-1].op == Equal && diffs[pointer+1].op == Equal {
			cur := diffs[pointer].text
			prev := diffs[pointer-1].text
			next := diffs[pointer+1].text
			if runesHasSuffix(cur, prev) {
				// Shift the edit over the previous equality.
				diffs[pointer].text = concatRunes(prev, cur[:len(cur)-len(prev)])
				diffs[pointer+1].text = concatRunes(prev, next)
				diffs = splice(diffs, pointer-1, 1)
				changes = true
			} else if runesHasPrefix(cur, next) {
				// Shift the edit over the next equality.
				diffs[pointer-1].text = concatRunes(prev, next)
				diffs[pointer].text = concatRunes(cur[len(next):], next)
				diffs = splice(diffs, pointer+1, 1)
				changes = true
			}
		}
		pointer++
	}

	// A shift exposes new merge opportunities; one more round reaches the
	// fixed point.
	if changes {
		diffs = cleanupMerge(diffs)
	}
	return diffs
}
