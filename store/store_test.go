package store

import (
	"testing"

	"github.com/sidesh-hub/medinfo-india/medicine"
)

func TestLookupExactMatch(t *testing.T) {
	s := New()

	med, ok := s.Lookup("Dolo 650")
	if !ok {
		t.Fatal("Expected Dolo 650 to be found")
	}
	if med.Name != "Dolo 650" {
		t.Errorf("Expected name Dolo 650, got %s", med.Name)
	}
	if med.PriceRange.Min != 25 || med.PriceRange.Max != 35 {
		t.Errorf("Expected price range 25-35, got %.0f-%.0f", med.PriceRange.Min, med.PriceRange.Max)
	}
	if med.Availability != medicine.WidelyAvailable {
		t.Errorf("Expected availability %q, got %q", medicine.WidelyAvailable, med.Availability)
	}
}

func TestLookupNormalizesCaseAndSpace(t *testing.T) {
	s := New()

	for _, query := range []string{"dolo 650", "  DOLO 650  ", "Dolo 650"} {
		if _, ok := s.Lookup(query); !ok {
			t.Errorf("Expected %q to match", query)
		}
	}
}

func TestLookupCompositionSubstring(t *testing.T) {
	s := New()

	// "paracetamol" is not a key; it matches Dolo 650 via composition text.
	med, ok := s.Lookup("paracetamol")
	if !ok {
		t.Fatal("Expected composition substring match for paracetamol")
	}
	if med.Name != "Dolo 650" {
		t.Errorf("Expected Dolo 650 via composition, got %s", med.Name)
	}
}

func TestLookupKeyContainedInQuery(t *testing.T) {
	s := New()

	med, ok := s.Lookup("tell me about pan d")
	if !ok {
		t.Fatal("Expected key-in-query match for pan d")
	}
	if med.Name != "Pan D" {
		t.Errorf("Expected Pan D, got %s", med.Name)
	}
}

func TestLookupDiacriticFold(t *testing.T) {
	s := New()

	if _, ok := s.Lookup("paracétamol"); !ok {
		t.Error("Expected accented query to match after diacritic folding")
	}
}

func TestLookupNoMatch(t *testing.T) {
	s := New()

	if _, ok := s.Lookup("xyznotamedicine"); ok {
		t.Error("Expected no match for xyznotamedicine")
	}
	if _, ok := s.Lookup(""); ok {
		t.Error("Expected no match for empty query")
	}
	if _, ok := s.Lookup("   "); ok {
		t.Error("Expected no match for blank query")
	}
}

func TestSeedSkipsInvalidRecords(t *testing.T) {
	s := New()
	s.Seed([]medicine.Medicine{
		{ID: "1", Name: "Good", PriceRange: medicine.PriceRange{Min: 10, Max: 20}},
		{ID: "2", Name: "Bad", PriceRange: medicine.PriceRange{Min: 30, Max: 20}},
		{ID: "3", Name: ""},
	})

	if s.Count() != 1 {
		t.Errorf("Expected 1 valid record, got %d", s.Count())
	}
	if _, ok := s.Lookup("Good"); !ok {
		t.Error("Valid record should be present")
	}
}

func TestAllPreservesSeedOrder(t *testing.T) {
	s := New()

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 sample medicines, got %d", len(all))
	}
	if all[0].Name != "Dolo 650" || all[1].Name != "Azithromycin 500" || all[2].Name != "Pan D" {
		t.Errorf("Seed order not preserved: %s, %s, %s", all[0].Name, all[1].Name, all[2].Name)
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  Dolo 650 ", "dolo 650"},
		{"PARACÉTAMOL", "paracetamol"},
		{"pan d", "pan d"},
	}

	for _, tc := range testCases {
		if got := Normalize(tc.input); got != tc.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}
