package nmd

import "testing"

func TestShouldAnnotate(t *testing.T) {
	tests := []struct {
		notation string
		want     bool
	}{
		// Nonsense and frameshift variants with a defined stop
		{"p.Arg100Ter", true},
		{"p.Val26GlyfsTer28", true},
		{"p.Gln1029ProfsTer12", true},

		// Synonymous stop-retaining changes
		{"p.Ter811=", false},
		{"p.Ter23=", false},

		// Frameshifts whose downstream stop is unresolved
		{"p.Ter257GlufsTer?", false},
		{"p.Leu100SerfsTer?", false},

		// No stop at all
		{"p.Gly12Cys", false},
		{"p.Met1?", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			if got := ShouldAnnotate(tt.notation); got != tt.want {
				t.Errorf("ShouldAnnotate(%q) = %v, want %v", tt.notation, got, tt.want)
			}
		})
	}
}
