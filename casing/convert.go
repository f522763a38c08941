package casing

import (
	"github.com/erraggy/casekit/caseerrors"
	"github.com/erraggy/casekit/tokenizer"
)

// ToCamelCase converts input to camelCase.
// input must be text (see tokenizer.ValidateInput); nil yields a
// *caseerrors.MissingValueError and any other non-text value a
// *caseerrors.InvalidTypeError.
// Example: "my-variable_name" -> "myVariableName"
func ToCamelCase(input any) (string, error) {
	return convert("ToCamelCase", input, Camel)
}

// ToKebabCase converts input to kebab-case.
// Example: "camelCaseExample" -> "camel-case-example"
func ToKebabCase(input any) (string, error) {
	return convert("ToKebabCase", input, Kebab)
}

// ToDotCase converts input to dot.case.
// Example: "my-variable_name" -> "my.variable.name"
func ToDotCase(input any) (string, error) {
	return convert("ToDotCase", input, Dot)
}

// ToPascalCase converts input to PascalCase.
func ToPascalCase(input any) (string, error) {
	return convert("ToPascalCase", input, Pascal)
}

// ToSnakeCase converts input to snake_case.
func ToSnakeCase(input any) (string, error) {
	return convert("ToSnakeCase", input, Snake)
}

// Convert converts input to the given convention.
func Convert(input any, c Convention) (string, error) {
	return convert("Convert", input, c)
}

// CamelString converts s to camelCase.
func CamelString(s string) string { return FormatCamel(tokenizer.Tokenize(s)) }

// KebabString converts s to kebab-case.
func KebabString(s string) string { return FormatKebab(tokenizer.Tokenize(s)) }

// DotString converts s to dot.case.
func DotString(s string) string { return FormatDot(tokenizer.Tokenize(s)) }

// PascalString converts s to PascalCase.
func PascalString(s string) string { return FormatPascal(tokenizer.Tokenize(s)) }

// SnakeString converts s to snake_case.
func SnakeString(s string) string { return FormatSnake(tokenizer.Tokenize(s)) }

func convert(operation string, input any, c Convention) (string, error) {
	s, err := tokenizer.ValidateInput(operation, input)
	if err != nil {
		return "", err
	}
	if !c.Valid() {
		return "", &caseerrors.ConfigError{Option: "convention", Value: int(c), Message: "unknown convention"}
	}
	return Format(c, tokenizer.Tokenize(s)), nil
}
