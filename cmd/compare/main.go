// Comparison tool for validating textdiff output quality against other
// diff implementations.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dacharyc/textdiff"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
)

func main() {
	// Test cases that expose fragmentation and boundary issues.
	testCases := []struct {
		name     string
		old, new string
	}{
		{
			name: "Word boundary alignment",
			old:  "The quick brown fox jumps over the lazy dog in the park",
			new:  "A slow red fox leaps over the sleeping cat in the garden",
		},
		{
			name: "Code-like text",
			old:  "func main() {\n\tfmt.Println(hello)\n}\n",
			new:  "func main() {\n\tlog.Printf(world)\n}\n",
		},
		{
			name: "Overlapping edit",
			old:  "abcxxx",
			new:  "xxxdef",
		},
	}

	// Add a large test case exercising line mode.
	testCases = append(testCases, struct {
		name     string
		old, new string
	}{
		name: "Large file (500 lines, scattered changes)",
		old:  generateLargeText(500, 0),
		new:  generateLargeText(500, 42),
	})

	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("old: %d bytes, new: %d bytes\n", len(tc.old), len(tc.new))

		start := time.Now()
		edits, err := textdiff.Diff(tc.old, tc.new)
		textdiffTime := time.Since(start)
		if err != nil {
			fmt.Println("textdiff error:", err)
			continue
		}

		dmp := godiff.New()
		start = time.Now()
		goDiffs := dmp.DiffMain(tc.old, tc.new, true)
		goDiffs = dmp.DiffCleanupSemantic(goDiffs)
		goDiffTime := time.Since(start)

		textdiffStats := analyzeTextdiff(edits)
		goDiffStats := analyzeGoDiff(goDiffs)

		fmt.Printf("\ntextdiff: %v\n", textdiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			textdiffStats.total, textdiffStats.equal, textdiffStats.delete, textdiffStats.insert)
		fmt.Printf("  Change regions: %d, levenshtein: %d\n",
			textdiffStats.changeRegions, textdiff.Levenshtein(edits))

		fmt.Printf("\ngo-diff:  %v\n", goDiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			goDiffStats.total, goDiffStats.equal, goDiffStats.delete, goDiffStats.insert)
		fmt.Printf("  Change regions: %d, levenshtein: %d\n",
			goDiffStats.changeRegions, dmp.DiffLevenshtein(goDiffs))

		// Show detailed output for small cases.
		if len(tc.old) <= 80 {
			fmt.Println("\ntextdiff output:")
			for _, e := range edits {
				switch e.Type {
				case textdiff.Equal:
					fmt.Printf("  = %q\n", e.Text)
				case textdiff.Delete:
					fmt.Printf("  - %q\n", e.Text)
				case textdiff.Insert:
					fmt.Printf("  + %q\n", e.Text)
				}
			}
		}
	}
}

type diffStats struct {
	total, equal, delete, insert int
	changeRegions                int
}

func analyzeTextdiff(edits []textdiff.Edit) diffStats {
	var s diffStats
	s.total = len(edits)
	inChange := false
	for _, e := range edits {
		switch e.Type {
		case textdiff.Equal:
			s.equal++
			inChange = false
		case textdiff.Delete:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case textdiff.Insert:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	s.total = len(diffs)
	inChange := false
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.equal++
			inChange = false
		case godiff.DiffDelete:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case godiff.DiffInsert:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func generateLargeText(lines int, seed int) string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	// Scatter seed-dependent changes over the shared base text.
	if seed > 0 {
		for i := seed % 10; i < lines; i += 10 + seed%5 {
			result[i] = "CHANGED LINE " + fmt.Sprint(i)
		}
	}

	return strings.Join(result, "\n") + "\n"
}
