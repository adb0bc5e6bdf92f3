package textnorm

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases input",
			input: "Explain CALCULUS",
			want:  "explain calculus",
		},
		{
			name:  "corrects known misspellings",
			input: "expalin this dificult quize",
			want:  "explain this difficult quiz",
		},
		{
			name:  "whole word match only",
			input: "quizes praktice",
			want:  "quizes practice",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Expalin the dificult QUIZE please",
		"regular sentence with no issues",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestStripLeadingPhrases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single leading verb",
			input: "explain photosynthesis",
			want:  "photosynthesis",
		},
		{
			name:  "stacked phrases removed until fixpoint",
			input: "please explain calculus",
			want:  "calculus",
		},
		{
			name:  "compound phrase",
			input: "can you describe gravity",
			want:  "gravity",
		},
		{
			name:  "mid-string phrase untouched",
			input: "photosynthesis can you",
			want:  "photosynthesis can you",
		},
		{
			name:  "underscore joined topic",
			input: "explain_chain_rule",
			want:  "chain_rule",
		},
		{
			name:  "no partial word match",
			input: "telling stories",
			want:  "telling stories",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripLeadingPhrases(tt.input)
			if got != tt.want {
				t.Errorf("StripLeadingPhrases(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripLeadingPhrasesIdempotent(t *testing.T) {
	inputs := []string{
		"please can you explain derivatives",
		"derivatives",
		"",
		"explain_chain_rule",
	}
	for _, in := range inputs {
		once := StripLeadingPhrases(in)
		twice := StripLeadingPhrases(once)
		if once != twice {
			t.Errorf("StripLeadingPhrases not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
