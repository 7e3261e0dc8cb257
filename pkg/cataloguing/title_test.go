package cataloguing

import "testing"

func TestCapitalizeTitle(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"the hobbit: or, there and back again", "The Hobbit: Or, There and Back Again"},
		{" THE*LORD =of tHE RIngs]", " The*Lord =of the Rings]"},
		{"the thirteen-gun salute", "The Thirteen-Gun Salute"},
		{"a midsummer night's dream", "A Midsummer Night's Dream"},
		{"henry vi, part ii", "Henry VI, Part II"},
		{"A BIOGRAPHY OF GEORGE MACDONALD", "A Biography of George MacDonald"},
		{"a biography of patrick o'brien", "A Biography of Patrick O'Brien"},
		{"of mice and men", "Of Mice and Men"},
		{"the", "The"},
		{"", ""},
		{"   ", "   "},
	}

	for _, tt := range tests {
		result := e.CapitalizeTitle(tt.input)
		if result != tt.expected {
			t.Errorf("CapitalizeTitle(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestCapitalizeTitleNoPrefixes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HandlePrefixes = false
	e := newTestEngineWithConfig(t, cfg)

	result := e.CapitalizeTitle("a biography of george macdonald")
	expected := "A Biography of George Macdonald"
	if result != expected {
		t.Errorf("CapitalizeTitle without prefixes = %q, want %q", result, expected)
	}
}

func TestCapitalizeTitleIdempotent(t *testing.T) {
	e := newTestEngine(t)

	inputs := []string{
		"the hobbit: or, there and back again",
		" THE*LORD =of tHE RIngs]",
		"henry vi, part ii",
		"A BIOGRAPHY OF GEORGE MACDONALD",
		"a midsummer night's dream",
		"of mice and men",
	}

	for _, input := range inputs {
		once := e.CapitalizeTitle(input)
		twice := e.CapitalizeTitle(once)
		if once != twice {
			t.Errorf("CapitalizeTitle not idempotent on %q: %q → %q", input, once, twice)
		}
	}
}

func TestSortableTitle(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"The 3 Musketeers", "Three Musketeers"},
		{"A Tale of Two Cities", "Tale of Two Cities"},
		{"the hobbit: or, there and back again", "Hobbit or There and Back Again"},
		{"An Unsuitable Job for a Woman", "Unsuitable Job for a Woman"},
		{"Of Mice and Men", "Of Mice and Men"},
		{"the", ""},
		{"  the  ", ""},
		{"a", ""},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		result := e.SortableTitle(tt.input)
		if result != tt.expected {
			t.Errorf("SortableTitle(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSortableTitleNoCase(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"The 3 Musketeers", "three musketeers"},
		{"A Tale of Two Cities", "tale of two cities"},
		{"The Thirteen-Gun Salute", "thirteengun salute"},
		{"the 1,234 club", "one thousand two hundred thirtyfour club"},
	}

	for _, tt := range tests {
		result := e.sortableTitle(tt.input, false)
		if result != tt.expected {
			t.Errorf("sortableTitle(%q, false) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSortableTitleNoSmartNumbers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SmartNumbers = false
	e := newTestEngineWithConfig(t, cfg)

	result := e.sortableTitle("The 3 Musketeers", false)
	expected := "3 musketeers"
	if result != expected {
		t.Errorf("sortableTitle without smart numbers = %q, want %q", result, expected)
	}
}

func TestExpandNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"3", "three"},
		{"12 monkeys", "twelve monkeys"},
		{"catch 22", "catch twenty-two"},
		{"1,234", "one thousand, two hundred thirty-four"},
		{"the 1,001 nights", "the one thousand one nights"},
		{"no digits here", "no digits here"},
		{"1,,2", "one,,two"},
		{"", ""},
	}

	for _, tt := range tests {
		result := expandNumbers(tt.input)
		if result != tt.expected {
			t.Errorf("expandNumbers(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestStripNumberCommas(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1,234", "1234"},
		{"1,234,567", "1234567"},
		{"well, 1,000", "well, 1000"},
		{"a,b", "a,b"},
		{",1", ",1"},
		{"1,", "1,"},
	}

	for _, tt := range tests {
		result := stripNumberCommas(tt.input)
		if result != tt.expected {
			t.Errorf("stripNumberCommas(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
