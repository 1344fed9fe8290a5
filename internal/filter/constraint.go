package filter

import (
	"fmt"
	"strings"
	"time"

	"feedback-browser/internal/models"
)

// Constraint is a per-field rule. The only implementations are DiscreteValues
// and DateRange, chosen when the constraint is built.
type Constraint interface {
	Field() Field
	match(r models.Feedback) (bool, error)
}

// DiscreteValues matches records whose field value is one of an allow-set.
// An empty allow-set places no restriction on the field.
type DiscreteValues struct {
	field  Field
	values []string
	set    map[string]struct{}
}

// NewDiscrete builds an allow-set constraint. Every value must belong to the
// field's closed value set.
func NewDiscrete(field Field, values ...string) (DiscreteValues, error) {
	if !field.valid() {
		return DiscreteValues{}, &ConstraintError{Field: string(field), Err: ErrUnknownField}
	}
	if field.Kind() != KindDiscrete {
		return DiscreteValues{}, &ConstraintError{
			Field:  string(field),
			Err:    ErrInvalidShape,
			Detail: "expected a date range, got a list of values",
		}
	}

	d := DiscreteValues{
		field:  field,
		values: make([]string, 0, len(values)),
		set:    make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		if !field.allows(v) {
			return DiscreteValues{}, &ConstraintError{
				Field:  string(field),
				Err:    ErrUnknownValue,
				Detail: fmt.Sprintf("%q is not one of %s", v, strings.Join(field.AllowedValues(), ", ")),
			}
		}
		if _, dup := d.set[v]; dup {
			continue
		}
		d.set[v] = struct{}{}
		d.values = append(d.values, v)
	}
	return d, nil
}

func (d DiscreteValues) Field() Field { return d.field }

// Values returns the allow-set in the order it was given, without duplicates.
func (d DiscreteValues) Values() []string {
	out := make([]string, len(d.values))
	copy(out, d.values)
	return out
}

func (d DiscreteValues) match(r models.Feedback) (bool, error) {
	if len(d.set) == 0 {
		return true, nil
	}
	_, ok := d.set[fieldSpecs[d.field].value(r)]
	return ok, nil
}

// DateRange matches records whose date falls inside [start, end]. Either bound
// may be absent; with neither present the range matches everything.
type DateRange struct {
	field Field
	start *time.Time
	end   *time.Time
}

// NewDateRange builds a range constraint from optional bound strings. An empty
// string means the bound is absent.
func NewDateRange(field Field, start, end string) (DateRange, error) {
	if !field.valid() {
		return DateRange{}, &ConstraintError{Field: string(field), Err: ErrUnknownField}
	}
	if field.Kind() != KindDate {
		return DateRange{}, &ConstraintError{
			Field:  string(field),
			Err:    ErrInvalidShape,
			Detail: "expected a list of values, got a date range",
		}
	}

	r := DateRange{field: field}
	var err error
	if r.start, err = parseBound(field, "start", start); err != nil {
		return DateRange{}, err
	}
	if r.end, err = parseBound(field, "end", end); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

func parseBound(field Field, name, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := models.ParseDate(value)
	if err != nil {
		return nil, &ConstraintError{
			Field:  string(field),
			Err:    ErrInvalidDate,
			Detail: fmt.Sprintf("%s: %v", name, err),
		}
	}
	return &t, nil
}

func (r DateRange) Field() Field { return r.field }

// Start returns the inclusive lower bound, if any.
func (r DateRange) Start() (time.Time, bool) {
	if r.start == nil {
		return time.Time{}, false
	}
	return *r.start, true
}

// End returns the inclusive upper bound, if any.
func (r DateRange) End() (time.Time, bool) {
	if r.end == nil {
		return time.Time{}, false
	}
	return *r.end, true
}

func (r DateRange) match(rec models.Feedback) (bool, error) {
	if r.start == nil && r.end == nil {
		return true, nil
	}

	t, err := models.ParseDate(fieldSpecs[r.field].value(rec))
	if err != nil {
		return false, fmt.Errorf("%w: feedback %d: %v", ErrInvalidDate, rec.ID, err)
	}
	if r.start != nil && t.Before(*r.start) {
		return false, nil
	}
	if r.end != nil && t.After(*r.end) {
		return false, nil
	}
	return true, nil
}
