package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty(nil, []string{"a"}); len(got) != 1 || got[0] != "a" {
		t.Fatalf("nil should take default, got %v", got)
	}
	if got := IfEmpty([]int{1, 2}, []int{9}); len(got) != 2 {
		t.Fatalf("non-empty should win, got %v", got)
	}
}

func TestSQLNull(t *testing.T) {
	if SQLNull("  ") != nil {
		t.Fatalf("blank should be NULL")
	}
	if SQLNull("p-1") != "p-1" {
		t.Fatalf("value should pass through")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"", " ", "x", "y"}, "x"},
		{[]string{"a"}, "a"},
	}
	for _, c := range cases {
		if got := FirstNonEmpty(c.in...); got != c.want {
			t.Fatalf("FirstNonEmpty(%q)=%q want %q", c.in, got, c.want)
		}
	}
}
