// Package casing converts free-form text into identifier naming conventions.
//
// Every converter runs the same pipeline: validate the input, split it into
// lowercase word tokens with the tokenizer package, then render the tokens
// under a convention's joining and casing rule.
//
// # Quick Start
//
// Convert a value directly:
//
//	out, err := casing.ToCamelCase("my-variable_name") // "myVariableName"
//	out, err = casing.ToKebabCase("camelCaseExample")  // "camel-case-example"
//	out, err = casing.ToDotCase("hello world")         // "hello.world"
//
// Or use functional options:
//
//	result, err := casing.ConvertWithOptions(
//		casing.WithInput("Crème Brûlée"),
//		casing.WithConventionName("kebab"),
//		casing.WithFoldAccents(true),
//	)
//	fmt.Println(result.Output) // "creme-brulee"
//
// Or a reusable Converter instance:
//
//	c := casing.New()
//	c.Convention = casing.Snake
//	result, _ := c.ConvertString("HelloWorld") // "hello_world"
//
// # Conventions
//
//   - [Camel]: helloWorld
//   - [Kebab]: hello-world
//   - [Dot]: hello.world
//   - [Pascal]: HelloWorld
//   - [Snake]: hello_world
//
// The Format* functions work at the token level so they compose with any
// token source, and the string-typed helpers ([Camel], [Kebab], [Dot],
// [Pascal], [Snake]) are shortcuts for callers that already hold a string.
//
// # Errors
//
// The To* converters accept any value and reject input that is not text
// before doing any work. A nil value returns a [caseerrors.MissingValueError]
// and a non-text value such as an int returns a [caseerrors.InvalidTypeError];
// both match [caseerrors.ErrInvalidInput]. Empty or punctuation-only strings
// are valid and convert to "".
//
// # Limitations
//
// Only ASCII letters and digits survive tokenization, casing is not
// locale-aware, acronyms are not preserved ("HTTPWorld" becomes "httpworld"),
// and conversions are not reversible.
package casing
