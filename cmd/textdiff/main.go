// Command textdiff prints a character-level diff between two files.
//
// Equal text is printed as-is, deletions in red, insertions in green.
// Color is disabled automatically when stdout is not a terminal, and can
// be forced on or off with -color.
//
// Exit status is 0 when the files are identical, 1 when they differ, 2 on
// error.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/dacharyc/textdiff"
)

func main() {
	var (
		lineMode   = flag.Bool("lines", true, "use the line-granularity first pass for large inputs")
		wordMode   = flag.Bool("words", false, "diff at word granularity instead of runes")
		efficiency = flag.Bool("efficiency", false, "absorb short equalities into surrounding edits")
		editCost   = flag.Int("edit-cost", 4, "equality-length threshold for -efficiency")
		sizeLimit  = flag.Int("size-limit", 0, "maximum combined input size in runes (0 = unlimited)")
		colorMode  = flag.String("color", "auto", "colorize output: auto, always or never")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] old-file new-file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	switch *colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = !isatty.IsTerminal(os.Stdout.Fd())
	default:
		fmt.Fprintf(os.Stderr, "textdiff: invalid -color value %q\n", *colorMode)
		os.Exit(2)
	}

	old, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "textdiff:", err)
		os.Exit(2)
	}
	new, err := os.ReadFile(flag.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, "textdiff:", err)
		os.Exit(2)
	}

	opts := []textdiff.Option{
		textdiff.WithLineMode(*lineMode),
		textdiff.WithEfficiencyCleanup(*efficiency),
		textdiff.WithEditCost(*editCost),
		textdiff.WithSizeLimit(*sizeLimit),
	}

	var edits []textdiff.Edit
	if *wordMode {
		edits, err = textdiff.DiffWords(string(old), string(new), opts...)
	} else {
		edits, err = textdiff.Diff(string(old), string(new), opts...)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "textdiff:", err)
		os.Exit(2)
	}

	changed := render(edits)
	if changed {
		os.Exit(1)
	}
}

// render prints the inline diff and reports whether anything changed.
func render(edits []textdiff.Edit) bool {
	del := color.New(color.FgRed, color.CrossedOut)
	ins := color.New(color.FgGreen)

	changed := false
	for _, e := range edits {
		switch e.Type {
		case textdiff.Equal:
			fmt.Print(e.Text)
		case textdiff.Delete:
			del.Print(e.Text)
			changed = true
		case textdiff.Insert:
			ins.Print(e.Text)
			changed = true
		}
	}
	return changed
}
