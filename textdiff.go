// Package textdiff computes character-level differences between two texts
// and applies the resulting edit script to a mutable buffer.
//
// The core is the Myers O(ND) bisection algorithm with the pre- and
// post-processing steps needed for useful output on real text:
//   - Preprocessing: common prefix/suffix trimming and an optional
//     line-granularity first pass for large inputs
//   - Postprocessing: semantic cleanup that aligns edit boundaries to
//     word and line boundaries, and an optional efficiency cleanup that
//     trades minimality for fewer, larger edit fragments
//
// Every returned edit script satisfies a round-trip invariant: the Equal
// and Delete texts concatenate to the old text, and the Equal and Insert
// texts concatenate to the new text. Patch replays a script against a
// live buffer, verifying that invariant as it goes.
package textdiff

import (
	"errors"
	"fmt"
)

// OpType identifies the type of edit operation.
type OpType int

const (
	// Equal means the text is unchanged.
	Equal OpType = iota
	// Insert means text was added that is not in the old text.
	Insert
	// Delete means text was removed from the old text.
	Delete
)

// String returns a string representation of the OpType.
func (t OpType) String() string {
	switch t {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Edit is a single tagged fragment of an edit script. Text is always an
// owned copy; it never aliases the inputs the script was computed from.
type Edit struct {
	Type OpType
	Text string
}

// edit is the internal form of Edit. All diffing and cleanup operates on
// rune slices so that line-mode and word-mode symbol runes are compared
// numerically and never pass through UTF-8 encoding.
type edit struct {
	op   OpType
	text []rune
}

// ErrInputTooLarge is returned by Diff and DiffWords when a size limit is
// configured and the combined input length exceeds it.
var ErrInputTooLarge = errors.New("textdiff: input too large")

// lineModeThreshold is the input length, in runes, above which the
// line-granularity first pass kicks in. Below this the bisection is cheap
// enough that the coarse pass isn't worth it.
const lineModeThreshold = 100

// defaultEditCost is the cost of an empty edit operation in terms of edit
// characters, used by the efficiency cleanup.
const defaultEditCost = 4

// options holds configuration for the diff pipeline.
type options struct {
	lineMode   bool
	semantic   bool
	efficiency bool
	editCost   int
	sizeLimit  int
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		lineMode:   true,
		semantic:   true,
		efficiency: false,
		editCost:   defaultEditCost,
		sizeLimit:  0, // unlimited
	}
}

// Option configures diff behavior.
type Option func(*options)

// WithLineMode enables or disables the line-granularity first pass for
// inputs longer than 100 runes. The pass is faster on large, mostly
// line-aligned texts but can produce a slightly less optimal diff.
// Default: true.
func WithLineMode(enabled bool) Option {
	return func(o *options) {
		o.lineMode = enabled
	}
}

// WithSemanticCleanup enables or disables the semantic cleanup pass that
// removes meaningless short equalities and aligns edit boundaries to
// word and line boundaries.
// Default: true.
func WithSemanticCleanup(enabled bool) Option {
	return func(o *options) {
		o.semantic = enabled
	}
}

// WithEfficiencyCleanup enables or disables the efficiency cleanup pass
// that absorbs equalities shorter than the edit cost into surrounding
// edits, producing fewer fragments at the price of a larger diff.
// Default: false.
func WithEfficiencyCleanup(enabled bool) Option {
	return func(o *options) {
		o.efficiency = enabled
	}
}

// WithEditCost sets the equality-length threshold used by the efficiency
// cleanup. Values below 1 are ignored.
// Default: 4.
func WithEditCost(cost int) Option {
	return func(o *options) {
		if cost >= 1 {
			o.editCost = cost
		}
	}
}

// WithSizeLimit sets the maximum combined input length, in runes, that
// Diff will accept. Pathological inputs (two large, maximally dissimilar
// texts) make the bisection quadratic; a limit fails fast instead of
// letting the computation run away. 0 means unlimited.
// Default: 0.
func WithSizeLimit(n int) Option {
	return func(o *options) {
		o.sizeLimit = n
	}
}

// Diff computes the edit script that transforms old into new.
//
// The script is normalized: adjacent operations never share a type, no
// operation has empty text, and the round-trip invariant holds (see
// OldText and NewText).
func Diff(old, new string, opts ...Option) ([]Edit, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	oldRunes := []rune(old)
	newRunes := []rune(new)
	if err := checkSize(len(oldRunes)+len(newRunes), o); err != nil {
		return nil, err
	}

	diffs := diffRunes(oldRunes, newRunes, o.lineMode)
	diffs = runCleanups(diffs, o)
	return toEdits(diffs), nil
}

// checkSize enforces the configured size limit before any diffing starts.
func checkSize(n int, o *options) error {
	if o.sizeLimit > 0 && n > o.sizeLimit {
		return fmt.Errorf("%w: %d runes, limit %d", ErrInputTooLarge, n, o.sizeLimit)
	}
	return nil
}

// runCleanups applies the configured cleanup passes and the final
// normalization to a raw edit script.
func runCleanups(diffs []edit, o *options) []edit {
	if o.semantic {
		diffs = cleanupSemantic(diffs)
	}
	if o.efficiency {
		diffs = cleanupEfficiency(diffs, o.editCost)
	}
	return cleanupMerge(diffs)
}

// diffRunes is the orchestrator: it strips the common prefix and suffix,
// diffs the remaining middle block, re-attaches the affixes as equalities
// and normalizes the result. checkLines controls whether large middles go
// through the line-granularity first pass.
func diffRunes(text1, text2 []rune, checkLines bool) []edit {
	if runesEqual(text1, text2) {
		if len(text1) > 0 {
			return []edit{{op: Equal, text: text1}}
		}
		return nil
	}

	// Trim off the common prefix.
	n := commonPrefixLen(text1, text2)
	prefix := text1[:n]
	text1 = text1[n:]
	text2 = text2[n:]

	// Trim off the common suffix.
	n = commonSuffixLen(text1, text2)
	suffix := text1[len(text1)-n:]
	text1 = text1[:len(text1)-n]
	text2 = text2[:len(text2)-n]

	diffs := computeDiff(text1, text2, checkLines)

	// Restore the prefix and suffix. Re-attachment can leave two adjacent
	// equalities, so normalize once more.
	if len(prefix) > 0 {
		diffs = append([]edit{{op: Equal, text: prefix}}, diffs...)
	}
	if len(suffix) > 0 {
		diffs = append(diffs, edit{op: Equal, text: suffix})
	}
	return cleanupMerge(diffs)
}

// toEdits converts the internal rune-based script to the public form,
// copying every text into a fresh string.
func toEdits(diffs []edit) []Edit {
	if len(diffs) == 0 {
		return nil
	}
	edits := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		if len(d.text) == 0 {
			continue
		}
		edits = append(edits, Edit{Type: d.op, Text: string(d.text)})
	}
	return edits
}

// OldText reconstructs the old text from an edit script by concatenating
// the Equal and Delete fragments.
func OldText(edits []Edit) string {
	var n int
	for _, e := range edits {
		if e.Type != Insert {
			n += len(e.Text)
		}
	}
	b := make([]byte, 0, n)
	for _, e := range edits {
		if e.Type != Insert {
			b = append(b, e.Text...)
		}
	}
	return string(b)
}

// NewText reconstructs the new text from an edit script by concatenating
// the Equal and Insert fragments.
func NewText(edits []Edit) string {
	var n int
	for _, e := range edits {
		if e.Type != Delete {
			n += len(e.Text)
		}
	}
	b := make([]byte, 0, n)
	for _, e := range edits {
		if e.Type != Delete {
			b = append(b, e.Text...)
		}
	}
	return string(b)
}

// Levenshtein computes the edit distance represented by a script: the
// number of inserted or deleted runes, counting a paired delete/insert
// region as the larger of its two sides.
func Levenshtein(edits []Edit) int {
	levenshtein := 0
	insertions := 0
	deletions := 0
	for _, e := range edits {
		switch e.Type {
		case Insert:
			insertions += runeLen(e.Text)
		case Delete:
			deletions += runeLen(e.Text)
		case Equal:
			// A deletion and an insertion are one substitution.
			levenshtein += max(insertions, deletions)
			insertions = 0
			deletions = 0
		}
	}
	return levenshtein + max(insertions, deletions)
}
