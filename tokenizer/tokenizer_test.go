package tokenizer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		// Empty and separator-only input
		{name: "empty string", input: "", want: []string{}},
		{name: "single space", input: " ", want: []string{}},
		{name: "punctuation only", input: "!@#", want: []string{}},
		{name: "separators only", input: " -_ \t- ", want: []string{}},

		// Separators
		{name: "space separated", input: "hello world", want: []string{"hello", "world"}},
		{name: "mixed separators", input: "my-variable_name", want: []string{"my", "variable", "name"}},
		{name: "separator runs", input: "snake_case__double--dash", want: []string{"snake", "case", "double", "dash"}},
		{name: "surrounding whitespace", input: "  leading and trailing  ", want: []string{"leading", "and", "trailing"}},
		{name: "tabs and newlines", input: "a\tb\nc", want: []string{"a", "b", "c"}},
		{name: "non-breaking space", input: "x\u00a0y", want: []string{"x", "y"}},
		{name: "leading separator", input: "-private", want: []string{"private"}},

		// Case boundaries
		{name: "camelCase", input: "camelCaseExample", want: []string{"camel", "case", "example"}},
		{name: "PascalCase", input: "PascalCaseExample", want: []string{"pascal", "case", "example"}},
		{name: "title words", input: "Hello World", want: []string{"hello", "world"}},
		{name: "all caps", input: "ALLCAPS", want: []string{"allcaps"}},
		{name: "acronym is not preserved", input: "HTTPWorld", want: []string{"httpworld"}},
		{name: "acronym in the middle", input: "getHTTPResponseCode", want: []string{"get", "httpresponse", "code"}},

		// Digits
		{name: "digit before upper", input: "item2Name", want: []string{"item2", "name"}},
		{name: "digits stay attached", input: "api_v2client", want: []string{"api", "v2client"}},
		{name: "leading digits", input: "123_abc", want: []string{"123", "abc"}},

		// Stripping
		{name: "trailing punctuation", input: "This is a Test!@#", want: []string{"this", "is", "a", "test"}},
		{name: "inner punctuation joins", input: "a!b", want: []string{"ab"}},
		{name: "dots are stripped", input: "user.profile", want: []string{"userprofile"}},
		{name: "version numbers", input: "v2.0 release", want: []string{"v20", "release"}},
		{name: "accents are stripped", input: "Crème Brûlée", want: []string{"crme", "brle"}},
		{name: "non-ascii before upper", input: "élanVital", want: []string{"lan", "vital"}},
		{name: "japanese characters", input: "日本語_test", want: []string{"test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenizeFoldAccents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "french", input: "Crème Brûlée", want: []string{"creme", "brulee"}},
		{name: "boundary after folding", input: "élanVital", want: []string{"elan", "vital"}},
		{name: "umlauts", input: "Ünïcödé", want: []string{"unicode"}},
		{name: "no ascii base", input: "Straße", want: []string{"strae"}},
		{name: "plain ascii unchanged", input: "myVariable", want: []string{"my", "variable"}},
	}

	tok := &Tokenizer{FoldAccents: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "separators unified", input: "  my-variable_name  ", want: "my variable name"},
		{name: "case preserved", input: "camelCase!", want: "camel Case"},
		{name: "punctuation only", input: "!@#", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input), "Normalize(%q)", tt.input)
		})
	}
}

func TestInsertBoundaries(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "camelCaseExample", want: "camel Case Example"},
		{input: "PascalCase", want: "Pascal Case"},
		{input: "item2Name", want: "item2 Name"},
		{input: "HTTPWorld", want: "HTTPWorld"},
		{input: "aB", want: "a B"},
		{input: "already spaced", want: "already spaced"},
		{input: "éB", want: "éB"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, InsertBoundaries(tt.input))
		})
	}
}

func TestUnifySeparators(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "my-variable_name", want: "my variable name"},
		{input: "a \t\n b", want: "a b"},
		{input: "--lead", want: " lead"},
		{input: "a_-_b", want: "a b"},
		{input: "plain", want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, UnifySeparators(tt.input))
		})
	}
}

func TestStripInvalid(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "This is a Test!@#", want: "This is a Test"},
		{input: "café", want: "caf"},
		{input: "a\tb", want: "ab"},
		{input: "!@#", want: ""},
		{input: "v2.0", want: "v20"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, StripInvalid(tt.input))
		})
	}
}

func TestFoldAccents(t *testing.T) {
	assert.Equal(t, "Creme Brulee", FoldAccents("Crème Brûlée"))
	assert.Equal(t, "plain", FoldAccents("plain"))
	assert.Equal(t, "", FoldAccents(""))
}

// FuzzTokenize checks the token invariants hold for arbitrary input.
func FuzzTokenize(f *testing.F) {
	seedCorpus := []string{
		"",
		" ",
		"!@#",
		"hello world",
		"my-variable_name",
		"camelCaseExample",
		"This is a Test!@#",
		"HTTPWorld",
		"item2Name",
		"Crème Brûlée",
		"\xff\xfe invalid utf8",
		strings.Repeat("aB", 500),
	}
	for _, seed := range seedCorpus {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tokens := Tokenize(input)
		for _, tok := range tokens {
			if tok == "" {
				t.Fatalf("Tokenize(%q) produced an empty token: %q", input, tokens)
			}
			for i := 0; i < len(tok); i++ {
				c := tok[i]
				if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
					t.Fatalf("Tokenize(%q) produced token %q outside [a-z0-9]", input, tok)
				}
			}
		}

		// Joining with '-' and tokenizing again is a fixed point.
		kebab := strings.Join(tokens, "-")
		again := strings.Join(Tokenize(kebab), "-")
		if again != kebab {
			t.Fatalf("re-tokenizing %q gave %q", kebab, again)
		}
	})
}
