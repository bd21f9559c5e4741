package freshbooks

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field maps one wire key onto one field of T through a coercion.
type Field[T any] struct {
	// Wire is the JSON key as sent by the API.
	Wire string
	// Name is the Go field the value lands in.
	Name string
	// Set coerces value and stores it on dst.
	Set func(dst *T, value any) error
}

// FieldMap is the ordered, statically declared mapping of an entity.
type FieldMap[T any] []Field[T]

// Decode builds a T from a decoded JSON object. Keys absent from the table
// are ignored, and null or missing values leave the zero value in place.
func (m FieldMap[T]) Decode(data map[string]any) (*T, error) {
	var out T

	for _, field := range m {
		value, ok := data[field.Wire]
		if !ok || value == nil {
			continue
		}

		err := field.Set(&out, value)
		if err != nil {
			return nil, fmt.Errorf("field %q (%s): %w", field.Wire, field.Name, err)
		}
	}

	return &out, nil
}

// DecodeValue is Decode for a value that must be a JSON object.
func (m FieldMap[T]) DecodeValue(value any) (*T, error) {
	data, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, value)
	}

	return m.Decode(data)
}

// WireKeys lists the mapped wire keys in declaration order.
func (m FieldMap[T]) WireKeys() []string {
	keys := make([]string, 0, len(m))
	for _, field := range m {
		keys = append(keys, field.Wire)
	}

	return keys
}

func coerced[T, V any](wire, name string, target func(*T) *V, coerce func(any) (V, error)) Field[T] {
	return Field[T]{
		Wire: wire,
		Name: name,
		Set: func(dst *T, value any) error {
			v, err := coerce(value)
			if err != nil {
				return err
			}

			*target(dst) = v

			return nil
		},
	}
}

// StringField maps a string value.
func StringField[T any](wire, name string, target func(*T) *string) Field[T] {
	return coerced(wire, name, target, CoerceString)
}

// IntField maps an integer value.
func IntField[T any](wire, name string, target func(*T) *int) Field[T] {
	return coerced(wire, name, target, CoerceInt)
}

// Int64Field maps an integer id.
func Int64Field[T any](wire, name string, target func(*T) *int64) Field[T] {
	return coerced(wire, name, target, CoerceInt64)
}

// BoolField maps a boolean, accepting 0/1 and "true"/"false".
func BoolField[T any](wire, name string, target func(*T) *bool) Field[T] {
	return coerced(wire, name, target, CoerceBool)
}

// TimeField maps a timestamp in RFC 3339 or accounting layout.
func TimeField[T any](wire, name string, target func(*T) *time.Time) Field[T] {
	return coerced(wire, name, target, CoerceTime)
}

// DateField maps a calendar date.
func DateField[T any](wire, name string, target func(*T) *time.Time) Field[T] {
	return coerced(wire, name, target, CoerceDate)
}

// UUIDField maps a UUID string.
func UUIDField[T any](wire, name string, target func(*T) *uuid.UUID) Field[T] {
	return coerced(wire, name, target, CoerceUUID)
}

// MoneyField maps an {amount, code} object.
func MoneyField[T any](wire, name string, target func(*T) *Money) Field[T] {
	return coerced(wire, name, target, CoerceMoney)
}

// VisStateField maps a vis_state integer.
func VisStateField[T any](wire, name string, target func(*T) *VisState) Field[T] {
	return coerced(wire, name, target, func(value any) (VisState, error) {
		i, err := CoerceInt(value)

		return VisState(i), err
	})
}

// ObjectField maps a nested object through its own table.
func ObjectField[T, E any](wire, name string, fields FieldMap[E], target func(*T) *E) Field[T] {
	return coerced(wire, name, target, func(value any) (E, error) {
		decoded, err := fields.DecodeValue(value)
		if err != nil {
			var zero E

			return zero, err
		}

		return *decoded, nil
	})
}

// ListField maps an array of nested objects through their own table.
func ListField[T, E any](wire, name string, fields FieldMap[E], target func(*T) *[]E) Field[T] {
	return coerced(wire, name, target, func(value any) ([]E, error) {
		return DecodeItems(value, fields)
	})
}

// DecodeItems decodes a JSON array of objects.
func DecodeItems[E any](value any, fields FieldMap[E]) ([]E, error) {
	raw, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %T", ErrFieldCoercion, value)
	}

	items := make([]E, 0, len(raw))

	for i, element := range raw {
		item, err := fields.DecodeValue(element)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		items = append(items, *item)
	}

	return items, nil
}

func coercionError(want string, value any) error {
	return fmt.Errorf("%w: expected %s, got %T", ErrFieldCoercion, want, value)
}

// CoerceString converts scalars to their string form.
func CoerceString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", coercionError("string", value)
	}
}

// CoerceInt64 converts numbers and numeric strings to int64.
func CoerceInt64(value any) (int64, error) {
	switch v := value.(type) {
	case json.Number:
		i, err := v.Int64()
		if err == nil {
			return i, nil
		}

		f, err := v.Float64()
		if err != nil {
			return 0, coercionError("integer", value)
		}

		return int64(math.Trunc(f)), nil
	case float64:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, coercionError("integer", value)
		}

		return i, nil
	default:
		return 0, coercionError("integer", value)
	}
}

// CoerceInt converts numbers and numeric strings to int.
func CoerceInt(value any) (int, error) {
	i, err := CoerceInt64(value)

	return int(i), err
}

// CoerceBool converts booleans, 0/1 numbers and boolean strings.
func CoerceBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case json.Number, float64, int, int64:
		i, err := CoerceInt64(v)

		return i != 0, err
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, coercionError("boolean", value)
		}

		return b, nil
	default:
		return false, coercionError("boolean", value)
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	AccountingTimeLayout,
	"2006-01-02T15:04:05",
	DateLayout,
}

// CoerceTime parses RFC 3339 and the accounting "YYYY-MM-DD HH:MM:SS" layout.
// An empty string yields the zero time.
func CoerceTime(value any) (time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, coercionError("timestamp", value)
	}

	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: unrecognised timestamp %q", ErrFieldCoercion, s)
}

// CoerceDate parses a "YYYY-MM-DD" date. An empty string yields the zero time.
func CoerceDate(value any) (time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, coercionError("date", value)
	}

	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unrecognised date %q", ErrFieldCoercion, s)
	}

	return t, nil
}

// CoerceUUID parses a UUID string.
func CoerceUUID(value any) (uuid.UUID, error) {
	s, ok := value.(string)
	if !ok {
		return uuid.Nil, coercionError("uuid", value)
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrFieldCoercion, err)
	}

	return id, nil
}

var moneyFields = FieldMap[Money]{
	StringField("amount", "Amount", func(m *Money) *string { return &m.Amount }),
	StringField("code", "Code", func(m *Money) *string { return &m.Code }),
}

// CoerceMoney decodes an {amount, code} object.
func CoerceMoney(value any) (Money, error) {
	m, err := moneyFields.DecodeValue(value)
	if err != nil {
		return Money{}, err
	}

	return *m, nil
}
