package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

var jsonNull = []byte("null")

type rangePayload struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Parse builds a ConstraintSet from its wire form:
//
//	{"importance": ["High", "Low"], "date": {"start": "2024-01-01", "end": null}}
//
// A list selects discrete values, an object selects a date range. Null entries
// and an empty or null payload impose no restriction. Field names are
// processed in sorted order so the first reported error is stable.
func Parse(raw []byte) (ConstraintSet, error) {
	set := ConstraintSet{}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return set, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, &ConstraintError{Err: ErrInvalidShape, Detail: "filters must be a JSON object"}
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field, err := ParseField(name)
		if err != nil {
			return nil, err
		}

		value := bytes.TrimSpace(entries[name])
		if len(value) == 0 || bytes.Equal(value, jsonNull) {
			continue
		}
		if _, dup := set[field]; dup {
			return nil, &ConstraintError{
				Field:  name,
				Err:    ErrInvalidShape,
				Detail: fmt.Sprintf("field %q is constrained more than once", field),
			}
		}

		c, err := parseConstraint(field, name, value)
		if err != nil {
			return nil, err
		}
		set[field] = c
	}
	return set, nil
}

func parseConstraint(field Field, name string, value []byte) (Constraint, error) {
	switch value[0] {
	case '[':
		var values []string
		if err := json.Unmarshal(value, &values); err != nil {
			return nil, &ConstraintError{Field: name, Err: ErrInvalidShape, Detail: "expected a list of strings"}
		}
		return NewDiscrete(field, values...)

	case '{':
		var p rangePayload
		dec := json.NewDecoder(bytes.NewReader(value))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, &ConstraintError{
				Field:  name,
				Err:    ErrInvalidShape,
				Detail: "expected an object with optional \"start\" and \"end\" strings",
			}
		}
		return NewDateRange(field, deref(p.Start), deref(p.End))

	default:
		return nil, &ConstraintError{
			Field:  name,
			Err:    ErrInvalidShape,
			Detail: "expected a list of values or a date range object",
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Decode checks raw against the filters schema and parses it. Schema
// violations are returned alongside an error wrapping ErrInvalidConstraint;
// other failures carry no violations.
func Decode(raw []byte) (ConstraintSet, []ValidationError, error) {
	violations, err := ValidateJSON(raw)
	if err != nil {
		return nil, nil, err
	}
	if len(violations) > 0 {
		return nil, violations, &ConstraintError{
			Err:    ErrInvalidShape,
			Detail: fmt.Sprintf("%d schema violation(s)", len(violations)),
		}
	}

	set, err := Parse(raw)
	if err != nil {
		return nil, nil, err
	}
	return set, nil, nil
}
