package gencode

import "testing"

func TestTranslate(t *testing.T) {
	std := MustForID(Standard)

	tests := []struct {
		name  string
		codon string
		want  byte
	}{
		// Standard amino acids
		{"ATG -> Met (start)", "ATG", 'M'},
		{"GGT -> Gly", "GGT", 'G'},
		{"TGT -> Cys", "TGT", 'C'},
		{"GCC -> Ala", "GCC", 'A'},
		{"CTG -> Leu", "CTG", 'L'},

		// Stop codons
		{"TAA -> Stop", "TAA", '*'},
		{"TAG -> Stop", "TAG", '*'},
		{"TGA -> Stop", "TGA", '*'},

		// Unresolvable codons
		{"too short", "AT", 'X'},
		{"too long", "ATGG", 'X'},
		{"ambiguity code", "ATN", 'X'},
		{"invalid bases", "XYZ", 'X'},
		{"empty", "", 'X'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := std.Translate(tt.codon)
			if got != tt.want {
				t.Errorf("Translate(%q) = %c, want %c", tt.codon, got, tt.want)
			}
		})
	}
}

func TestTranslateSequence(t *testing.T) {
	std := MustForID(Standard)

	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"empty", "", ""},
		{"single codon", "ATG", "M"},
		{"orf with stop", "ATGGCCTGA", "MA*"},
		{"trailing base dropped", "ATGGCCT", "MA"},
		{"two trailing bases dropped", "ATGGCCTG", "MA"},
		{"unknown triplet", "ATGNNNTGA", "MX*"},
		{"stop mid-sequence translated through", "ATGTGAGCC", "M*A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := std.TranslateSequence(tt.seq)
			if got != tt.want {
				t.Errorf("TranslateSequence(%q) = %q, want %q", tt.seq, got, tt.want)
			}
		})
	}
}

func TestTranslateSequenceDeterministic(t *testing.T) {
	std := MustForID(Standard)
	seq := "ATGGCCCTGTGACGT"
	first := std.TranslateSequence(seq)
	second := std.TranslateSequence(seq)
	if first != second {
		t.Errorf("translation not deterministic: %q vs %q", first, second)
	}
}

func TestGetCodon(t *testing.T) {
	seq := "ATGGCCCTG"

	tests := []struct {
		name  string
		codon int64
		want  string
	}{
		{"first codon", 1, "ATG"},
		{"second codon", 2, "GCC"},
		{"last codon", 3, "CTG"},
		{"past end", 4, ""},
		{"zero", 0, ""},
		{"negative", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCodon(seq, tt.codon); got != tt.want {
				t.Errorf("GetCodon(%q, %d) = %q, want %q", seq, tt.codon, got, tt.want)
			}
		})
	}
}
