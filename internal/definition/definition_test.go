package definition

import "testing"

func TestFind_Strategies(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		acronym string
		want    string
		ok      bool
	}{
		{
			name:    "parenthetical",
			text:    "ABC (American Broadcasting Company) is a network.",
			acronym: "ABC",
			want:    "American Broadcasting Company",
			ok:      true,
		},
		{
			name:    "reverse parenthetical",
			text:    "(American Broadcasting Company) ABC is a network.",
			acronym: "ABC",
			want:    "American Broadcasting Company",
			ok:      true,
		},
		{
			name:    "preceding phrase before parenthesized acronym",
			text:    "American Broadcasting Company (ABC) is a network.",
			acronym: "ABC",
			want:    "American Broadcasting Company",
			ok:      true,
		},
		{
			name:    "colon",
			text:    "ABC: American Broadcasting Company",
			acronym: "ABC",
			want:    "American Broadcasting Company",
			ok:      true,
		},
		{
			name:    "dash",
			text:    "ABC - American Broadcasting Company. More text.",
			acronym: "ABC",
			want:    "American Broadcasting Company",
			ok:      true,
		},
		{
			name:    "stands for",
			text:    "We know ABC stands for American Broadcasting Company.",
			acronym: "ABC",
			want:    "American Broadcasting Company",
			ok:      true,
		},
		{
			name:    "means",
			text:    "Here ABC means American Broadcasting Company.",
			acronym: "ABC",
			want:    "American Broadcasting Company",
			ok:      true,
		},
		{
			name:    "no definition",
			text:    "No definition here.",
			acronym: "ABC",
			ok:      false,
		},
		{
			name:    "case-insensitive connector and acronym",
			text:    "abc Stands For American Broadcasting Company",
			acronym: "ABC",
			want:    "American Broadcasting Company",
			ok:      true,
		},
		{
			name:    "acronym with slash is escaped literally",
			text:    "L/TA (Launch/Test Article) arrives Monday.",
			acronym: "L/TA",
			want:    "Launch/Test Article",
			ok:      true,
		},
		{
			name:    "acronym with ampersand is escaped literally",
			text:    "I&T: Integration and Test",
			acronym: "I&T",
			want:    "Integration and Test",
			ok:      true,
		},
		{
			name:    "empty text",
			text:    "",
			acronym: "ABC",
			ok:      false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Find(tc.text, tc.acronym)
			if ok != tc.ok {
				t.Fatalf("Find(%q, %q) ok = %v, want %v", tc.text, tc.acronym, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("Find(%q, %q) = %q, want %q", tc.text, tc.acronym, got, tc.want)
			}
		})
	}
}

func TestFind_StrategyOrder(t *testing.T) {
	// Both a parenthetical and a colon form are present; the parenthetical
	// strategy is earlier in the table and must win.
	text := "ABC (American Broadcasting Company) and also ABC: A Bad Capture"
	got, ok := Find(text, "ABC")
	if !ok || got != "American Broadcasting Company" {
		t.Fatalf("expected parenthetical strategy to take precedence, got %q (ok=%v)", got, ok)
	}
}
