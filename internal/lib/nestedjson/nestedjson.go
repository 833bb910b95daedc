// Package nestedjson decodes list fields that the events API ships as a
// one-element array holding a JSON-encoded array of strings, e.g.
//
//	"agenda": ["[\"Intro\",\"Q&A\"]"]
package nestedjson

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyField = errors.New("field has no encoded element")
	ErrNotArray   = errors.New("encoded element is not an array of strings")
)

// DecodeStrings decodes field[0]. Any element after the first is ignored.
func DecodeStrings(field []string) ([]string, error) {
	const op = "nestedjson.DecodeStrings"

	if len(field) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyField)
	}

	var items []string

	if err := json.Unmarshal([]byte(field[0]), &items); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotArray)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// "null" unmarshals without error but is not a list.
	if items == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotArray)
	}

	return items, nil
}
