package tokenizer

import (
	"reflect"

	"github.com/erraggy/casekit/caseerrors"
)

// ValidateInput checks that input is text and returns it as a string.
//
// Text is a string, a non-nil *string, or any value whose underlying kind is
// string. A nil value or a nil pointer to a string type yields a
// *caseerrors.MissingValueError. Anything else, including a nil pointer to a
// non-string type, yields a *caseerrors.InvalidTypeError. The operation name
// is recorded on the error so callers can tell which converter rejected it.
func ValidateInput(operation string, input any) (string, error) {
	switch v := input.(type) {
	case nil:
		return "", &caseerrors.MissingValueError{Operation: operation}
	case string:
		return v, nil
	case *string:
		if v == nil {
			return "", &caseerrors.MissingValueError{Operation: operation}
		}
		return *v, nil
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() == reflect.Pointer && rv.Type().Elem().Kind() == reflect.String {
		if rv.IsNil() {
			return "", &caseerrors.MissingValueError{Operation: operation}
		}
		return rv.Elem().String(), nil
	}
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", &caseerrors.InvalidTypeError{Operation: operation, Type: rv.Type().String()}
}

// TokenizeValue validates input and tokenizes it using default settings.
func TokenizeValue(input any) ([]string, error) {
	return New().TokenizeValue(input)
}

// TokenizeValue validates input and tokenizes it.
func (t *Tokenizer) TokenizeValue(input any) ([]string, error) {
	s, err := ValidateInput("Tokenize", input)
	if err != nil {
		return nil, err
	}
	return t.Tokenize(s), nil
}
