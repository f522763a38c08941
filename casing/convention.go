package casing

import (
	"fmt"
	"strings"

	"github.com/erraggy/casekit/caseerrors"
)

// Convention identifies an identifier naming convention.
// The zero value is Camel.
type Convention int

const (
	// Camel joins words without a separator and capitalizes every word but the first.
	// Example: "hello world" -> helloWorld
	Camel Convention = iota

	// Kebab joins lowercase words with '-'.
	// Example: "hello world" -> hello-world
	Kebab

	// Dot joins lowercase words with '.'.
	// Example: "hello world" -> hello.world
	Dot

	// Pascal joins words without a separator and capitalizes every word.
	// Example: "hello world" -> HelloWorld
	Pascal

	// Snake joins lowercase words with '_'.
	// Example: "hello world" -> hello_world
	Snake
)

// conventionAliases maps lowercased names to conventions.
var conventionAliases = map[string]Convention{
	"camel":      Camel,
	"camelcase":  Camel,
	"lowercamel": Camel,
	"kebab":      Kebab,
	"kebabcase":  Kebab,
	"kebab-case": Kebab,
	"dot":        Dot,
	"dotcase":    Dot,
	"dot.case":   Dot,
	"pascal":     Pascal,
	"pascalcase": Pascal,
	"uppercamel": Pascal,
	"snake":      Snake,
	"snakecase":  Snake,
	"snake_case": Snake,
}

// Conventions returns every supported convention in display order.
func Conventions() []Convention {
	return []Convention{Camel, Kebab, Dot, Pascal, Snake}
}

// ValidConventionNames returns the canonical name of every supported convention.
func ValidConventionNames() []string {
	convs := Conventions()
	names := make([]string, 0, len(convs))
	for _, c := range convs {
		names = append(names, c.String())
	}
	return names
}

// ParseConvention returns the convention for a name or alias such as
// "kebab", "kebab-case" or "camelCase". Matching is case-insensitive.
func ParseConvention(name string) (Convention, error) {
	if c, ok := conventionAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return Camel, &caseerrors.ConfigError{
		Option:  "convention",
		Value:   name,
		Message: fmt.Sprintf("unknown convention, valid conventions: %s", strings.Join(ValidConventionNames(), ", ")),
	}
}

// Valid reports whether c is a supported convention.
func (c Convention) Valid() bool {
	return c >= Camel && c <= Snake
}

func (c Convention) String() string {
	switch c {
	case Camel:
		return "camel"
	case Kebab:
		return "kebab"
	case Dot:
		return "dot"
	case Pascal:
		return "pascal"
	case Snake:
		return "snake"
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// Separator returns the string placed between words, or "" for
// conventions that mark word starts by capitalization.
func (c Convention) Separator() string {
	switch c {
	case Kebab:
		return "-"
	case Dot:
		return "."
	case Snake:
		return "_"
	}
	return ""
}

// Example returns "hello world" rendered in this convention.
func (c Convention) Example() string {
	return Format(c, []string{"hello", "world"})
}

// MarshalText encodes the convention as its canonical name.
func (c Convention) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &caseerrors.ConfigError{Option: "convention", Value: int(c), Message: "unknown convention"}
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a convention name or alias.
func (c *Convention) UnmarshalText(text []byte) error {
	parsed, err := ParseConvention(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
