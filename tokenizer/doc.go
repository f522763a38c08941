// Package tokenizer splits free-form text into a canonical sequence of
// lowercase word tokens.
//
// Every casekit converter shares this pipeline. Tokenizing runs a fixed
// sequence of pure string stages, each of which is exported so it can be
// inspected or tested on its own:
//
//  1. Trim leading and trailing whitespace.
//  2. [InsertBoundaries]: break "camelCase" style words where an ASCII
//     lowercase letter or digit is followed by an ASCII uppercase letter.
//  3. [UnifySeparators]: collapse runs of whitespace, '-' and '_' into a
//     single [Delimiter].
//  4. [StripInvalid]: drop every character that is not an ASCII letter,
//     ASCII digit or the delimiter.
//  5. Split on the delimiter, discarding empty segments.
//  6. Lower-case each segment.
//
// Boundary insertion must run before the later stages because it depends on
// letter case that lower-casing erases.
//
// # Quick Start
//
//	tokens := tokenizer.Tokenize("myHTTP-server_config v2")
//	// tokens: ["my", "http", "server", "config", "v2"]
//
// Tokenize an untyped value, reporting nil and non-string inputs:
//
//	tokens, err := tokenizer.TokenizeValue(value)
//	if errors.Is(err, caseerrors.ErrMissingValue) {
//		// handle nil input
//	}
//
// # Tokens
//
// A token is never empty and only ever contains the characters [a-z0-9].
// Digits stay attached to the letters before them, so "item2Name" yields
// ["item2", "name"]. Runs of capitals are not treated as acronyms.
//
// # Accent Folding
//
// Non-ASCII letters are stripped by default. A [Tokenizer] with FoldAccents
// set decomposes accented letters first, so "Crème" yields "creme" instead
// of "crme".
package tokenizer
