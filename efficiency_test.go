package textdiff

import "testing"

func TestCleanupEfficiency(t *testing.T) {
	tests := []struct {
		name     string
		editCost int
		diffs    []edit
		want     []edit
	}{
		{
			name:     "empty",
			editCost: 4,
			diffs:    nil,
			want:     nil,
		},
		{
			name:     "no elimination",
			editCost: 4,
			diffs: []edit{
				mk(Delete, "ab"), mk(Insert, "12"), mk(Equal, "wxyz"),
				mk(Delete, "cd"), mk(Insert, "34"),
			},
			want: []edit{
				mk(Delete, "ab"), mk(Insert, "12"), mk(Equal, "wxyz"),
				mk(Delete, "cd"), mk(Insert, "34"),
			},
		},
		{
			name:     "four-edit elimination",
			editCost: 4,
			diffs: []edit{
				mk(Delete, "ab"), mk(Insert, "12"), mk(Equal, "xyz"),
				mk(Delete, "cd"), mk(Insert, "34"),
			},
			want: []edit{
				mk(Delete, "abxyzcd"), mk(Insert, "12xyz34"),
			},
		},
		{
			name:     "three-edit elimination",
			editCost: 4,
			diffs: []edit{
				mk(Insert, "12"), mk(Equal, "x"),
				mk(Delete, "cd"), mk(Insert, "34"),
			},
			want: []edit{
				mk(Delete, "xcd"), mk(Insert, "12x34"),
			},
		},
		{
			name:     "backpass elimination",
			editCost: 4,
			diffs: []edit{
				mk(Delete, "ab"), mk(Insert, "12"), mk(Equal, "xy"),
				mk(Insert, "34"), mk(Equal, "z"),
				mk(Delete, "cd"), mk(Insert, "56"),
			},
			want: []edit{
				mk(Delete, "abxyzcd"), mk(Insert, "12xy34z56"),
			},
		},
		{
			name:     "high cost elimination",
			editCost: 5,
			diffs: []edit{
				mk(Delete, "ab"), mk(Insert, "12"), mk(Equal, "wxyz"),
				mk(Delete, "cd"), mk(Insert, "34"),
			},
			want: []edit{
				mk(Delete, "abwxyzcd"), mk(Insert, "12wxyz34"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanupEfficiency(tt.diffs, tt.editCost)
			if !editsEqual(got, tt.want) {
				t.Errorf("cleanupEfficiency() = %s, want %s", editsString(got), editsString(tt.want))
			}
		})
	}
}
