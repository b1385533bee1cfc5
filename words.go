package textdiff

import "github.com/clipperhouse/uax29/v2/words"

// Word-granularity diffing.
//
// Same two-level idea as the line pass, but tokenized on UAX #29 word
// boundaries, which keeps edits aligned to whole words in prose where a
// rune-level diff would happily match fragments of unrelated words. The
// segmenter returns every token including whitespace and punctuation
// runs, so the encoding is reversible and the round-trip invariant holds.

// DiffWords computes a word-granularity edit script that transforms old
// into new. Matching is anchored on whole UAX #29 segments; the cleanup
// passes then operate on the expanded text, so cut points may still move
// within runs of repeated text to find a better boundary.
func DiffWords(old, new string, opts ...Option) ([]Edit, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := checkSize(runeLen(old)+runeLen(new), o); err != nil {
		return nil, err
	}

	table := newSymbolTable()
	syms1 := encodeWords(old, table)
	syms2 := encodeWords(new, table)

	diffs := diffRunes(syms1, syms2, false)
	for i := range diffs {
		diffs[i].text = table.expand(diffs[i].text)
	}

	diffs = runCleanups(diffs, o)
	return toEdits(diffs), nil
}

// encodeWords maps each UAX #29 segment of text to a symbol from the
// shared table and returns the encoded form.
func encodeWords(text string, table *symbolTable) []rune {
	var symbols []rune
	iter := words.FromString(text)
	for iter.Next() {
		symbols = append(symbols, table.symbol([]rune(iter.Value())))
	}
	return symbols
}
