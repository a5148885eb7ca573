package services

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAssignmentSystemPromptValid(t *testing.T) {
	raw := `{"instructions": "# Essay\nWrite 500 words.", "rubric": "## Grading\nThesis 40%."}`
	got, err := parseAssignmentSystemPrompt(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Instructions != "# Essay\nWrite 500 words." {
		t.Fatalf("instructions mangled: %q", got.Instructions)
	}
	if got.Rubric != "## Grading\nThesis 40%." {
		t.Fatalf("rubric mangled: %q", got.Rubric)
	}
}

func TestParseAssignmentSystemPromptIgnoresExtraFields(t *testing.T) {
	raw := `{"instructions": "do work", "rubric": "grade work", "notes": "extra"}`
	if _, err := parseAssignmentSystemPrompt(raw); err != nil {
		t.Fatalf("extra fields should be tolerated, got %v", err)
	}
}

func TestParseAssignmentSystemPromptRejects(t *testing.T) {
	cases := []struct {
		name       string
		raw        string
		wantReason string
	}{
		{name: "not json", raw: "Here is your assignment prompt!", wantReason: "not valid JSON"},
		{name: "json array", raw: `["instructions", "rubric"]`, wantReason: "not valid JSON"},
		{name: "missing instructions", raw: `{"rubric": "grade work"}`, wantReason: "missing instructions"},
		{name: "missing rubric", raw: `{"instructions": "do work"}`, wantReason: "missing rubric"},
		{name: "null instructions", raw: `{"instructions": null, "rubric": "grade work"}`, wantReason: "missing instructions"},
		{name: "empty instructions", raw: `{"instructions": "", "rubric": "grade work"}`, wantReason: "instructions field is empty"},
		{name: "whitespace rubric", raw: `{"instructions": "do work", "rubric": "  \n "}`, wantReason: "rubric field is empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseAssignmentSystemPrompt(tc.raw)
			if got != nil {
				t.Fatalf("rejected input returned a payload")
			}
			var malformed *MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedResponseError, got %v", err)
			}
			if malformed.Raw != tc.raw {
				t.Fatalf("error does not carry the raw reply")
			}
			if !strings.Contains(malformed.Reason, tc.wantReason) {
				t.Fatalf("reason %q does not mention %q", malformed.Reason, tc.wantReason)
			}
		})
	}
}
