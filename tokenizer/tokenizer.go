package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Delimiter is the single separator used between words in normalized text.
const Delimiter = ' '

// Tokenizer splits text into lowercase word tokens.
// The zero value is ready to use.
type Tokenizer struct {
	// FoldAccents decomposes accented letters and removes their combining
	// marks before tokenizing. Default: false
	FoldAccents bool
}

// New creates a new Tokenizer with default settings.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits s into lowercase word tokens using default settings.
func Tokenize(s string) []string {
	return New().Tokenize(s)
}

// Normalize returns s after trimming, boundary insertion, separator
// unification and stripping, using default settings.
func Normalize(s string) string {
	return New().Normalize(s)
}

// Tokenize splits s into lowercase word tokens.
// The result is empty (but non-nil) when s holds no letters or digits.
func (t *Tokenizer) Tokenize(s string) []string {
	normalized := t.Normalize(s)
	tokens := make([]string, 0, strings.Count(normalized, string(Delimiter))+1)
	for _, segment := range strings.Split(normalized, string(Delimiter)) {
		if segment == "" {
			continue
		}
		tokens = append(tokens, strings.ToLower(segment))
	}
	return tokens
}

// Normalize returns s reduced to ASCII letters, digits and single
// delimiters. Case is preserved; lower-casing happens per token.
func (t *Tokenizer) Normalize(s string) string {
	if t.FoldAccents {
		s = FoldAccents(s)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return StripInvalid(UnifySeparators(InsertBoundaries(s)))
}

// InsertBoundaries inserts a Delimiter wherever an ASCII lowercase letter or
// ASCII digit is immediately followed by an ASCII uppercase letter.
// Example: "camelCase2Go" -> "camel Case2 Go"
func InsertBoundaries(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	var prev rune
	for i, r := range s {
		if i > 0 && isUpper(r) && (isLower(prev) || isDigit(prev)) {
			b.WriteRune(Delimiter)
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// UnifySeparators replaces every run of whitespace, hyphens and underscores
// with a single Delimiter.
// Example: "my -- variable__name" -> "my variable name"
func UnifySeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if isSeparator(r) {
			if !inRun {
				b.WriteRune(Delimiter)
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// StripInvalid removes every character that is not an ASCII letter, ASCII
// digit or the Delimiter.
// Example: "This is a Test!@#" -> "This is a Test"
func StripInvalid(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == Delimiter || isAlnum(rune(c)) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FoldAccents decomposes s and removes non-spacing marks, turning "é" into
// "e". Letters without an ASCII base (such as "ß") are left untouched.
func FoldAccents(s string) string {
	// transform.Chain is stateful, so each call builds its own.
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, s)
	if err != nil {
		return s
	}
	return folded
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlnum(r rune) bool { return isUpper(r) || isLower(r) || isDigit(r) }
