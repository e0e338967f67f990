package resolver

import "testing"

func TestExtractJSONPlain(t *testing.T) {
	got, err := extractJSON(`{"found": true}`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != `{"found": true}` {
		t.Errorf("Unexpected extraction: %q", got)
	}
}

func TestExtractJSONStripsCodeFences(t *testing.T) {
	input := "```json\n{\"found\": false, \"medicine\": null}\n```"
	got, err := extractJSON(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != `{"found": false, "medicine": null}` {
		t.Errorf("Unexpected extraction: %q", got)
	}
}

func TestExtractJSONIgnoresSurroundingProse(t *testing.T) {
	input := `Sure, here is the information you asked for:

{"found": true, "medicine": {"name": "Dolo 650"}}

Let me know if you need anything else.`

	got, err := extractJSON(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != `{"found": true, "medicine": {"name": "Dolo 650"}}` {
		t.Errorf("Unexpected extraction: %q", got)
	}
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	input := `{"note": "curly {brace} inside", "found": true}`
	got, err := extractJSON(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != input {
		t.Errorf("String-aware scan failed: %q", got)
	}
}

func TestExtractJSONEscapedQuote(t *testing.T) {
	input := `{"note": "a \"quoted\" word", "found": false}`
	got, err := extractJSON(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != input {
		t.Errorf("Escape-aware scan failed: %q", got)
	}
}

func TestExtractJSONFailures(t *testing.T) {
	for _, input := range []string{
		"",
		"no json here at all",
		"{\"unbalanced\": true",
	} {
		if _, err := extractJSON(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}
