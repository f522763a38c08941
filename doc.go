// Package casekit converts free-form text into identifier naming conventions.
//
// casekit splits arbitrary input such as form labels, config keys or
// mixed-format identifiers into a canonical sequence of lowercase words and
// renders them as camelCase, kebab-case, dot.case, PascalCase or snake_case.
//
// # Overview
//
// The library consists of three packages:
//
//   - tokenizer: validate input and split it into lowercase word tokens
//   - casing: render tokens in a naming convention, plus the To* converters
//   - caseerrors: structured errors for missing and non-text input
//
// # Installation
//
//	go get github.com/erraggy/casekit
//
// # Quick Start
//
// Convert a string:
//
//	import "github.com/erraggy/casekit/casing"
//
//	out, err := casing.ToCamelCase("my-variable_name")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // myVariableName
//
// Inspect the tokens:
//
//	import "github.com/erraggy/casekit/tokenizer"
//
//	fmt.Println(tokenizer.Tokenize("camelCaseExample")) // [camel case example]
//
// # Command Line
//
// The casekit command exposes the same conversions:
//
//	casekit convert --to kebab "Hello World"
//	casekit tokenize --format json camelCaseExample
//	casekit mcp
//
// The mcp subcommand serves convert, tokenize and conventions as Model
// Context Protocol tools over stdio.
package casekit
