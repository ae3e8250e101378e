package scoring

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple words",
			text: "shade structures",
			want: []string{"shade", "structures"},
		},
		{
			name: "lowercases and strips punctuation",
			text: "Hello, World!",
			want: []string{"hello", "world"},
		},
		{
			name: "separators become boundaries",
			text: "commercial-shade_structures/pergolas",
			want: []string{"commercial", "shade", "structures", "pergolas"},
		},
		{
			name: "digits kept",
			text: "top 10 canopies",
			want: []string{"top", "10", "canopies"},
		},
		{
			name: "multiplicity preserved",
			text: "shade shade shade",
			want: []string{"shade", "shade", "shade"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "punctuation only",
			text: "--- || &&",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Commercial Shade Structures | Acme & Co",
		"already normalized text",
		"",
		"  spaced   out  ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not a fixed point for %q: %q != %q", in, once, twice)
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	text := "Shade Structures & Canopies - 2024 Guide"
	first := Tokenize(text)
	for i := 0; i < 10; i++ {
		if got := Tokenize(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Tokenize not deterministic: %v != %v", got, first)
		}
	}
}

func TestURLText(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "strips www and com, splits path",
			url:  "https://www.example.com/shade-structures/",
			want: "example shade structures",
		},
		{
			name: "nested path",
			url:  "https://acme.com/products/steel_canopies",
			want: "acme products steel canopies",
		},
		{
			name: "non-com TLD kept",
			url:  "https://example.org/pergolas",
			want: "example org pergolas",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URLText(tt.url); got != tt.want {
				t.Errorf("URLText(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
