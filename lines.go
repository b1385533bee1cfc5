package textdiff

// Line-granularity first pass.
//
// Large, mostly line-aligned texts (the common case for source code) are
// reduced to one symbol rune per distinct line and diffed at that
// granularity, which is roughly linear. Regions the coarse pass marks as
// replaced are then re-diffed rune by rune, recovering fine-grained
// detail only where something actually changed.

// symbolTable is a per-call bijection between tokens (lines or words,
// terminator included) and symbol runes. Symbol values are compared
// numerically and never encoded, so they may exceed the valid Unicode
// scalar range without harm.
type symbolTable struct {
	tokens [][]rune // symbol value -> token text
	index  map[string]rune
}

// newSymbolTable returns an empty table. Symbol 0 is reserved so that no
// token ever maps to a zero rune.
func newSymbolTable() *symbolTable {
	return &symbolTable{
		tokens: make([][]rune, 1),
		index:  make(map[string]rune),
	}
}

// symbol returns the symbol for token, assigning the next free value on
// first sight.
func (t *symbolTable) symbol(token []rune) rune {
	key := string(token)
	if sym, ok := t.index[key]; ok {
		return sym
	}
	sym := rune(len(t.tokens))
	t.tokens = append(t.tokens, token)
	t.index[key] = sym
	return sym
}

// expand converts a symbol string back to the literal text it encodes.
func (t *symbolTable) expand(symbols []rune) []rune {
	var n int
	for _, sym := range symbols {
		n += len(t.tokens[sym])
	}
	out := make([]rune, 0, n)
	for _, sym := range symbols {
		out = append(out, t.tokens[sym]...)
	}
	return out
}

// encodeLines maps each line of text, trailing terminator included, to a
// symbol and returns the encoded form.
func (t *symbolTable) encodeLines(text []rune) []rune {
	var symbols []rune
	lineStart := 0
	for lineStart < len(text) {
		lineEnd := lineStart
		for lineEnd < len(text) && text[lineEnd] != '\n' {
			lineEnd++
		}
		if lineEnd < len(text) {
			lineEnd++ // keep the terminator with its line
		}
		symbols = append(symbols, t.symbol(text[lineStart:lineEnd]))
		lineStart = lineEnd
	}
	return symbols
}

// lineModeDiff runs the two-level diff: encode both texts against a
// shared table, diff the symbol strings (with line mode off, to avoid
// recursing back here), expand the symbols to literal text, clean up
// spurious line-level matches such as solitary blank lines, and re-diff
// every replaced region rune by rune.
func lineModeDiff(text1, text2 []rune) []edit {
	table := newSymbolTable()
	chars1 := table.encodeLines(text1)
	chars2 := table.encodeLines(text2)

	diffs := diffRunes(chars1, chars2, false)

	// Convert the symbol diff back to literal text.
	for i := range diffs {
		diffs[i].text = table.expand(diffs[i].text)
	}

	// Eliminate freak matches (e.g. blank lines).
	diffs = cleanupSemantic(diffs)

	return rediffReplacements(diffs)
}

// rediffReplacements re-diffs every run of consecutive deletes and
// inserts bounded by equalities, this time rune by rune, and splices the
// finer script in place of the coarse run.
func rediffReplacements(diffs []edit) []edit {
	// Dummy equality so the final run is flushed like any other.
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
		case Delete:
			countDelete++
			textDelete = append(textDelete, diffs[pointer].text...)
		case Equal:
			// Upon reaching an equality, re-diff any preceding
			// delete/insert run.
			if countDelete >= 1 && countInsert >= 1 {
				sub := diffRunes(textDelete, textInsert, false)
				diffs = splice(diffs, pointer-countDelete-countInsert, countDelete+countInsert, sub...)
				pointer = pointer - countDelete - countInsert + len(sub)
			}
			countInsert = 0
			countDelete = 0
			textDelete = nil
			textInsert = nil
		}
		pointer++
	}

	return diffs[:len(diffs)-1] // drop the dummy
}
