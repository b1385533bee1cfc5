package textdiff

import "testing"

// mk builds an internal edit from a string, for test tables.
func mk(op OpType, text string) edit {
	return edit{op: op, text: []rune(text)}
}

// editsString renders an internal script for failure messages.
func editsString(diffs []edit) string {
	s := ""
	for _, d := range diffs {
		s += "[" + d.op.String() + " " + string(d.text) + "]"
	}
	return s
}

func editsEqual(a, b []edit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].op != b[i].op || string(a[i].text) != string(b[i].text) {
			return false
		}
	}
	return true
}

func TestCleanupMerge(t *testing.T) {
	tests := []struct {
		name  string
		diffs []edit
		want  []edit
	}{
		{
			name:  "empty",
			diffs: nil,
			want:  nil,
		},
		{
			name: "no change case",
			diffs: []edit{
				mk(Equal, "a"), mk(Delete, "b"), mk(Insert, "c"),
			},
			want: []edit{
				mk(Equal, "a"), mk(Delete, "b"), mk(Insert, "c"),
			},
		},
		{
			name: "merge equalities",
			diffs: []edit{
				mk(Equal, "a"), mk(Equal, "b"), mk(Equal, "c"),
			},
			want: []edit{mk(Equal, "abc")},
		},
		{
			name: "merge deletions",
			diffs: []edit{
				mk(Delete, "a"), mk(Delete, "b"), mk(Delete, "c"),
			},
			want: []edit{mk(Delete, "abc")},
		},
		{
			name: "merge insertions",
			diffs: []edit{
				mk(Insert, "a"), mk(Insert, "b"), mk(Insert, "c"),
			},
			want: []edit{mk(Insert, "abc")},
		},
		{
			name: "merge interweave",
			diffs: []edit{
				mk(Delete, "a"), mk(Insert, "b"), mk(Delete, "c"),
				mk(Insert, "d"), mk(Equal, "e"), mk(Equal, "f"),
			},
			want: []edit{
				mk(Delete, "ac"), mk(Insert, "bd"), mk(Equal, "ef"),
			},
		},
		{
			name: "prefix and suffix detection",
			diffs: []edit{
				mk(Delete, "a"), mk(Insert, "abc"), mk(Delete, "dc"),
			},
			want: []edit{
				mk(Equal, "a"), mk(Delete, "d"), mk(Insert, "b"), mk(Equal, "c"),
			},
		},
		{
			name: "prefix and suffix detection with equalities",
			diffs: []edit{
				mk(Equal, "x"), mk(Delete, "a"), mk(Insert, "abc"),
				mk(Delete, "dc"), mk(Equal, "y"),
			},
			want: []edit{
				mk(Equal, "xa"), mk(Delete, "d"), mk(Insert, "b"), mk(Equal, "cy"),
			},
		},
		{
			name: "slide edit left",
			diffs: []edit{
				mk(Equal, "a"), mk(Insert, "ba"), mk(Equal, "c"),
			},
			want: []edit{
				mk(Insert, "ab"), mk(Equal, "ac"),
			},
		},
		{
			name: "slide edit right",
			diffs: []edit{
				mk(Equal, "c"), mk(Insert, "ab"), mk(Equal, "a"),
			},
			want: []edit{
				mk(Equal, "ca"), mk(Insert, "ba"),
			},
		},
		{
			name: "slide edit left recursive",
			diffs: []edit{
				mk(Equal, "a"), mk(Delete, "b"), mk(Equal, "c"),
				mk(Delete, "ac"), mk(Equal, "x"),
			},
			want: []edit{
				mk(Delete, "abc"), mk(Equal, "acx"),
			},
		},
		{
			name: "slide edit right recursive",
			diffs: []edit{
				mk(Equal, "x"), mk(Delete, "ca"), mk(Equal, "c"),
				mk(Delete, "b"), mk(Equal, "a"),
			},
			want: []edit{
				mk(Equal, "xca"), mk(Delete, "cba"),
			},
		},
		{
			name: "run collapses into factored affixes",
			diffs: []edit{
				mk(Equal, "x"), mk(Insert, "a"), mk(Delete, "a"), mk(Equal, "y"),
			},
			want: []edit{mk(Equal, "xay")},
		},
		{
			name: "run collapses at script start",
			diffs: []edit{
				mk(Insert, "a"), mk(Delete, "a"), mk(Equal, "y"),
			},
			want: []edit{mk(Equal, "ay")},
		},
		{
			name: "empty texts dropped",
			diffs: []edit{
				mk(Equal, "a"), mk(Delete, ""), mk(Insert, "b"), mk(Equal, ""),
			},
			want: []edit{
				mk(Equal, "a"), mk(Insert, "b"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanupMerge(tt.diffs)
			if !editsEqual(got, tt.want) {
				t.Errorf("cleanupMerge() = %s, want %s", editsString(got), editsString(tt.want))
			}
		})
	}
}

func TestCleanupMerge_Idempotent(t *testing.T) {
	// Normalizing an already-normalized script is a no-op.
	scripts := [][]edit{
		{mk(Equal, "abc")},
		{mk(Delete, "abc"), mk(Insert, "xyz")},
		{mk(Equal, "a"), mk(Delete, "b"), mk(Insert, "c"), mk(Equal, "d")},
		{mk(Insert, "start"), mk(Equal, "mid"), mk(Delete, "end")},
	}
	for _, script := range scripts {
		once := cleanupMerge(script)
		twice := cleanupMerge(once)
		if !editsEqual(once, twice) {
			t.Errorf("cleanupMerge not idempotent: %s -> %s", editsString(once), editsString(twice))
		}
	}
}

func TestSplice(t *testing.T) {
	diffs := []edit{mk(Equal, "a"), mk(Delete, "b"), mk(Equal, "c")}

	got := splice(diffs, 1, 1, mk(Insert, "x"), mk(Delete, "y"))
	want := []edit{mk(Equal, "a"), mk(Insert, "x"), mk(Delete, "y"), mk(Equal, "c")}
	if !editsEqual(got, want) {
		t.Errorf("splice() = %s, want %s", editsString(got), editsString(want))
	}

	got = splice(got, 1, 2)
	want = []edit{mk(Equal, "a"), mk(Equal, "c")}
	if !editsEqual(got, want) {
		t.Errorf("splice() = %s, want %s", editsString(got), editsString(want))
	}
}
