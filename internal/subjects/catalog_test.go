package subjects

import "testing"

func TestListHasTwelveEntries(t *testing.T) {
	got := List()
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	seen := map[string]bool{}
	for _, s := range got {
		if s.ID == "" || s.Name == "" || s.Color == "" {
			t.Errorf("incomplete entry: %+v", s)
		}
		if seen[s.ID] {
			t.Errorf("duplicate id %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestListReturnsCopy(t *testing.T) {
	first := List()
	first[0].Name = "mutated"
	if List()[0].Name == "mutated" {
		t.Error("List exposes internal catalog")
	}
}

func TestLookup(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"math", "數學"},
		{"chinese-history", "中國歷史"},
		{"other", "其他"},
		{"astrology", "astrology"}, // unknown ids pass through
		{"", ""},
	}
	for _, c := range cases {
		if got := Lookup(c.id); got != c.want {
			t.Errorf("Lookup(%q) = %q, want %q", c.id, got, c.want)
		}
	}
}
