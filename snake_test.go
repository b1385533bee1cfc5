package textdiff

import "testing"

func TestBisect(t *testing.T) {
	got := bisect([]rune("cat"), []rune("map"))
	want := []edit{
		mk(Delete, "c"), mk(Insert, "m"),
		mk(Equal, "a"),
		mk(Delete, "t"), mk(Insert, "p"),
	}
	if !editsEqual(got, want) {
		t.Errorf("bisect() = %s, want %s", editsString(got), editsString(want))
	}
}

func TestBisect_NoCommonality(t *testing.T) {
	got := bisect([]rune("abc"), []rune("xyz"))
	want := []edit{mk(Delete, "abc"), mk(Insert, "xyz")}
	if !editsEqual(got, want) {
		t.Errorf("bisect() = %s, want %s", editsString(got), editsString(want))
	}
}

func TestBisect_RoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"sunday", "saturday"},
		{"1234567890", "abc1234def"},
		{"старт", "стоп"},
	}
	for _, p := range pairs {
		diffs := bisect([]rune(p[0]), []rune(p[1]))
		var old, new []rune
		for _, d := range diffs {
			if d.op != Insert {
				old = append(old, d.text...)
			}
			if d.op != Delete {
				new = append(new, d.text...)
			}
		}
		if string(old) != p[0] || string(new) != p[1] {
			t.Errorf("bisect(%q, %q) round-trip = (%q, %q)", p[0], p[1], string(old), string(new))
		}
	}
}
