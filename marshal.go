package optional

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Static assertions that Option implements the intended encoding
// interfaces.
var (
	_ json.Marshaler   = Option[bool]{}
	_ json.Unmarshaler = &Option[bool]{}
	_ yaml.Marshaler   = Option[bool]{}
	_ yaml.Unmarshaler = &Option[bool]{}
	_ sql.Scanner      = &Option[bool]{}
	_ driver.Valuer    = Option[bool]{}
)

// IsZero implements the IsZeroer interface as understood by encoding/json
// ("omitzero") and gopkg.in/yaml.v3 ("omitempty"). It is an alias of
// IsNone.
func (o Option[T]) IsZero() bool {
	return !o.present
}

// MarshalJSON implements the encoding/json.Marshaler interface.
// None marshals as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if o.present {
		return json.Marshal(o.value)
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface.
// null unmarshals as None.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var ptr *T
	if err := json.Unmarshal(data, &ptr); err != nil {
		return err
	}
	*o = FromPtr(ptr)
	return nil
}

type yamlMarshaler interface {
	MarshalYAML() (any, error)
}

// MarshalYAML implements the gopkg.in/yaml.v3 Marshaler interface.
// None marshals as null.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.present {
		return nil, nil
	}
	// Returning o.value directly would skip the value's own MarshalYAML,
	// so dispatch to it here when present.
	if m, ok := any(o.value).(yamlMarshaler); ok {
		return m.MarshalYAML()
	}
	return o.value, nil
}

// UnmarshalYAML implements the gopkg.in/yaml.v3 Unmarshaler interface.
// null unmarshals as None.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	var ptr *T
	if err := node.Decode(&ptr); err != nil {
		return err
	}
	*o = FromPtr(ptr)
	return nil
}

// Scan implements the database/sql.Scanner interface, mapping SQL NULL to
// None.
func (o *Option[T]) Scan(src any) error {
	var data sql.Null[T]
	if err := data.Scan(src); err != nil {
		return err
	}
	if data.Valid {
		*o = Some(data.V)
	} else {
		*o = None[T]()
	}
	return nil
}

// Value implements the database/sql/driver.Valuer interface, mapping None
// to SQL NULL.
func (o Option[T]) Value() (driver.Value, error) {
	if o.present {
		return driver.DefaultParameterConverter.ConvertValue(o.value)
	}
	return nil, nil
}
