package filter

import (
	"fmt"

	"feedback-browser/internal/models"
)

// ConstraintSet maps each constrained field to its rule. Fields absent from
// the set impose no restriction.
type ConstraintSet map[Field]Constraint

// NewSet keys the given constraints by their field. A later constraint for the
// same field replaces an earlier one.
func NewSet(constraints ...Constraint) ConstraintSet {
	set := make(ConstraintSet, len(constraints))
	for _, c := range constraints {
		set[c.Field()] = c
	}
	return set
}

// Validate rejects sets keyed by unknown fields or holding a constraint built
// for a different field.
func (s ConstraintSet) Validate() error {
	for field, c := range s {
		if !field.valid() {
			return &ConstraintError{Field: string(field), Err: ErrUnknownField}
		}
		if c == nil {
			return &ConstraintError{Field: string(field), Err: ErrInvalidShape, Detail: "missing constraint"}
		}
		if c.Field() != field {
			return &ConstraintError{
				Field:  string(field),
				Err:    ErrInvalidShape,
				Detail: fmt.Sprintf("constraint was built for %q", c.Field()),
			}
		}
	}
	return nil
}

// Matches reports whether r satisfies every constraint in the set. An invalid
// set is rejected the same way Apply rejects it.
func Matches(r models.Feedback, set ConstraintSet) (bool, error) {
	if err := set.Validate(); err != nil {
		return false, err
	}
	return matches(r, set)
}

func matches(r models.Feedback, set ConstraintSet) (bool, error) {
	for _, field := range fieldOrder {
		c, ok := set[field]
		if !ok {
			continue
		}
		matched, err := c.match(r)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

// Apply returns the records matching every constraint, in input order. The
// input slice is never modified and the result never aliases it.
//
// A record whose date cannot be parsed fails the whole call with
// ErrInvalidDate when a bounded date constraint is present.
func Apply(records []models.Feedback, set ConstraintSet) ([]models.Feedback, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	out := make([]models.Feedback, 0, len(records))
	if len(set) == 0 {
		return append(out, records...), nil
	}

	for _, r := range records {
		ok, err := matches(r, set)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}
