package textdiff

import "testing"

func TestCommonPrefixLen(t *testing.T) {
	tests := []struct {
		name         string
		text1, text2 string
		want         int
	}{
		{"disjoint", "abc", "xyz", 0},
		{"partial", "1234abcdef", "1234xyz", 4},
		{"whole is prefix", "1234", "1234xyz", 4},
		{"empty side", "", "abc", 0},
		{"identical", "abc", "abc", 3},
		{"unicode", "мир1", "мир2", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commonPrefixLen([]rune(tt.text1), []rune(tt.text2))
			if got != tt.want {
				t.Errorf("commonPrefixLen(%q, %q) = %d, want %d", tt.text1, tt.text2, got, tt.want)
			}
		})
	}
}

func TestCommonSuffixLen(t *testing.T) {
	tests := []struct {
		name         string
		text1, text2 string
		want         int
	}{
		{"disjoint", "abc", "xyz", 0},
		{"partial", "abcdef1234", "xyz1234", 4},
		{"whole is suffix", "1234", "xyz1234", 4},
		{"empty side", "abc", "", 0},
		{"identical", "abc", "abc", 3},
		{"unicode", "1мир", "2мир", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commonSuffixLen([]rune(tt.text1), []rune(tt.text2))
			if got != tt.want {
				t.Errorf("commonSuffixLen(%q, %q) = %d, want %d", tt.text1, tt.text2, got, tt.want)
			}
		})
	}
}

func TestCommonOverlapLen(t *testing.T) {
	tests := []struct {
		name         string
		text1, text2 string
		want         int
	}{
		{"empty side", "", "abcd", 0},
		{"whole overlap", "abc", "abcd", 3},
		{"no overlap", "123456", "abcd", 0},
		{"partial overlap", "123456xxx", "xxxabcd", 3},
		// Runes compare numerically; a ligature never matches its
		// decomposition.
		{"unicode ligature", "fi", "ﬁi", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commonOverlapLen([]rune(tt.text1), []rune(tt.text2))
			if got != tt.want {
				t.Errorf("commonOverlapLen(%q, %q) = %d, want %d", tt.text1, tt.text2, got, tt.want)
			}
		})
	}
}
