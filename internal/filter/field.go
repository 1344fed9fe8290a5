// Package filter evaluates declarative filter constraints against feedback records.
//
// A ConstraintSet maps a Field to exactly one Constraint. Records match when
// they satisfy every constraint in the set; fields without a constraint do not
// restrict the result. Everything in this package is pure and safe for
// concurrent use.
package filter

import "feedback-browser/internal/models"

// Field names a filterable feedback attribute.
type Field string

const (
	FieldImportance Field = "importance"
	FieldType       Field = "type"
	FieldCustomer   Field = "customer"
	FieldDate       Field = "date"
)

// Kind is the constraint shape a field accepts.
type Kind int

const (
	KindDiscrete Kind = iota
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindDiscrete:
		return "select"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

type fieldSpec struct {
	name    string
	kind    Kind
	value   func(models.Feedback) string
	allowed []string
}

var fieldOrder = []Field{FieldImportance, FieldType, FieldCustomer, FieldDate}

var fieldSpecs = map[Field]fieldSpec{
	FieldImportance: {
		name:    "Importance",
		kind:    KindDiscrete,
		value:   func(f models.Feedback) string { return string(f.Importance) },
		allowed: enumStrings(models.Importances),
	},
	FieldType: {
		name:    "Type",
		kind:    KindDiscrete,
		value:   func(f models.Feedback) string { return string(f.Type) },
		allowed: enumStrings(models.Categories),
	},
	FieldCustomer: {
		name:    "Customer",
		kind:    KindDiscrete,
		value:   func(f models.Feedback) string { return string(f.Customer) },
		allowed: enumStrings(models.Customers),
	},
	FieldDate: {
		name:  "Date",
		kind:  KindDate,
		value: func(f models.Feedback) string { return f.Date },
	},
}

// "category" is accepted as a synonym for the record's type column.
var fieldAliases = map[string]Field{
	"category": FieldType,
}

// ParseField resolves a wire field name. Unknown names fail with ErrUnknownField.
func ParseField(name string) (Field, error) {
	if f, ok := fieldAliases[name]; ok {
		return f, nil
	}
	if _, ok := fieldSpecs[Field(name)]; ok {
		return Field(name), nil
	}
	return "", &ConstraintError{Field: name, Err: ErrUnknownField}
}

// Fields returns every filterable field in display order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

func (f Field) Kind() Kind {
	return fieldSpecs[f].kind
}

// DisplayName is the column label shown by the filter bar.
func (f Field) DisplayName() string {
	return fieldSpecs[f].name
}

// AllowedValues lists the closed value set of a discrete field, nil for date fields.
func (f Field) AllowedValues() []string {
	allowed := fieldSpecs[f].allowed
	if allowed == nil {
		return nil
	}
	out := make([]string, len(allowed))
	copy(out, allowed)
	return out
}

func (f Field) valid() bool {
	_, ok := fieldSpecs[f]
	return ok
}

func (f Field) allows(value string) bool {
	for _, v := range fieldSpecs[f].allowed {
		if v == value {
			return true
		}
	}
	return false
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
