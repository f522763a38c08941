package casing

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatCamel renders tokens as camelCase.
// The first token is used as-is; every later token has its first character
// upper-cased. Tokens are concatenated without a separator.
// Example: ["my", "variable", "name"] -> "myVariableName"
func FormatCamel(tokens []string) string {
	return capitalizeJoin(tokens, 1)
}

// FormatPascal renders tokens as PascalCase.
// Example: ["my", "variable", "name"] -> "MyVariableName"
func FormatPascal(tokens []string) string {
	return capitalizeJoin(tokens, 0)
}

// FormatKebab joins tokens with '-'. No casing is applied.
// Example: ["camel", "case", "example"] -> "camel-case-example"
func FormatKebab(tokens []string) string {
	return strings.Join(tokens, Kebab.Separator())
}

// FormatDot joins tokens with '.'. No casing is applied.
// Example: ["my", "variable", "name"] -> "my.variable.name"
func FormatDot(tokens []string) string {
	return strings.Join(tokens, Dot.Separator())
}

// FormatSnake joins tokens with '_'. No casing is applied.
// Example: ["my", "variable", "name"] -> "my_variable_name"
func FormatSnake(tokens []string) string {
	return strings.Join(tokens, Snake.Separator())
}

// Format renders tokens in the given convention.
// An unsupported convention renders as the empty string.
func Format(c Convention, tokens []string) string {
	switch c {
	case Camel:
		return FormatCamel(tokens)
	case Kebab:
		return FormatKebab(tokens)
	case Dot:
		return FormatDot(tokens)
	case Pascal:
		return FormatPascal(tokens)
	case Snake:
		return FormatSnake(tokens)
	}
	return ""
}

// capitalizeJoin concatenates tokens, upper-casing the first character of
// every token at index from onward.
func capitalizeJoin(tokens []string, from int) string {
	if len(tokens) == 0 {
		return ""
	}

	// Casers are stateful; language.Und keeps the mapping locale-neutral.
	upper := cases.Upper(language.Und)

	var b strings.Builder
	for i, tok := range tokens {
		if i < from || tok == "" {
			b.WriteString(tok)
			continue
		}
		_, size := utf8.DecodeRuneInString(tok)
		b.WriteString(upper.String(tok[:size]))
		b.WriteString(tok[size:])
	}
	return b.String()
}
