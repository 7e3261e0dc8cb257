package cataloguing

import "testing"

func TestCapitalizeWord(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"mcdonald", "McDonald"},
		{"MCDONALD", "McDonald"},
		{"macdonald", "MacDonald"}, // in the Mac-surname list
		{"macy", "Macy"},           // not in the list
		{"maccarthy", "MacCarthy"},
		{"o'hara", "O'Hara"},
		{"o’hara", "O’Hara"},
		{"d'artagnan", "D'Artagnan"},
		{"hello", "Hello"},
		{"HELLO", "Hello"},
		{"mc", "Mc"},
		{"x", "X"},
		{"", ""},
		{"3rd", "3rd"},
	}

	for _, tt := range tests {
		result := e.capitalizeWord(tt.input)
		if result != tt.expected {
			t.Errorf("capitalizeWord(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestCapitalizeWordNoPrefixes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HandlePrefixes = false
	e := newTestEngineWithConfig(t, cfg)

	tests := []struct {
		input    string
		expected string
	}{
		{"mcdonald", "Mcdonald"},
		{"macdonald", "Macdonald"},
		// The apostrophe rule is independent of the prefix flag.
		{"o'hara", "O'Hara"},
	}

	for _, tt := range tests {
		result := e.capitalizeWord(tt.input)
		if result != tt.expected {
			t.Errorf("capitalizeWord(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestHasApostropheNamePrefix(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"o'hara", true},
		{"o’hara", true},
		{"d'art", true},
		{"o'h", false},   // needs two letters after the apostrophe
		{"'tis", false},  // must start with a letter
		{"ab'cd", false}, // exactly one letter before the apostrophe
		{"oh", false},
		{"", false},
	}

	for _, tt := range tests {
		result := hasApostropheNamePrefix(tt.input)
		if result != tt.expected {
			t.Errorf("hasApostropheNamePrefix(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"café", "cafe"},
		{"éèê", "eee"},
		{"naïve", "naive"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}

	for _, tt := range tests {
		result := fold(tt.input)
		if result != tt.expected {
			t.Errorf("fold(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestIsRomanNumeral(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"i", true},
		{"vi", true},
		{"xxiii", true},
		{"XIV", true},
		{"mcmxcix", true},
		{"", false},
		{"leo", false},
		{"iiii", false},
		{"vv", false},
		{"hello", false},
	}

	for _, tt := range tests {
		result := isRomanNumeral(tt.input)
		if result != tt.expected {
			t.Errorf("isRomanNumeral(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}
