package textdiff_test

import (
	"fmt"

	"github.com/dacharyc/textdiff"
)

func ExampleDiff() {
	edits, err := textdiff.Diff("The cat came.", "The cat ate.")
	if err != nil {
		panic(err)
	}
	for _, e := range edits {
		fmt.Printf("%s %q\n", e.Type, e.Text)
	}
	// Output:
	// Equal "The cat "
	// Delete "cam"
	// Insert "at"
	// Equal "e."
}

func ExampleDiffWords() {
	edits, err := textdiff.DiffWords("the quick brown fox", "the slow brown dog")
	if err != nil {
		panic(err)
	}
	for _, e := range edits {
		fmt.Printf("%s %q\n", e.Type, e.Text)
	}
	// Output:
	// Equal "the "
	// Delete "quick"
	// Insert "slow"
	// Equal " brown "
	// Delete "fox"
	// Insert "dog"
}

func ExampleApply() {
	old := "hello world"
	edits, err := textdiff.Diff(old, "hello there")
	if err != nil {
		panic(err)
	}
	patched, err := textdiff.Apply(old, edits)
	if err != nil {
		panic(err)
	}
	fmt.Println(patched)
	// Output:
	// hello there
}

func ExamplePatch() {
	buf := textdiff.NewStringBuffer("version one of the text")
	edits, err := textdiff.Diff(buf.String(), "version two of the text")
	if err != nil {
		panic(err)
	}
	if err := textdiff.Patch(buf, edits); err != nil {
		panic(err)
	}
	fmt.Println(buf.String())
	// Output:
	// version two of the text
}

func ExampleLevenshtein() {
	edits := []textdiff.Edit{
		{Type: textdiff.Delete, Text: "abc"},
		{Type: textdiff.Insert, Text: "1234"},
		{Type: textdiff.Equal, Text: "xyz"},
	}
	fmt.Println(textdiff.Levenshtein(edits))
	// Output:
	// 4
}
