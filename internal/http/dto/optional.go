package dto

import "encoding/json"

// Optional is a patch field that distinguishes three states: absent from
// the payload, explicitly null, and set to a value. Absent fields never
// reach the update map; explicit null is written through as NULL.
type Optional[T any] struct {
	Present bool
	Value   *T // nil when the field was explicitly null
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// put writes the field into an update map under column, if present.
func (o Optional[T]) put(updates map[string]any, column string) {
	if !o.Present {
		return
	}
	if o.Value == nil {
		updates[column] = nil
		return
	}
	updates[column] = *o.Value
}

// null reports whether the field was explicitly set to null.
func (o Optional[T]) null() bool {
	return o.Present && o.Value == nil
}
