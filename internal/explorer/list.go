package explorer

import "encoding/json"

// List is a lenient JSON array of records. A value that is not an array
// decodes as an empty list, and an element that does not fit T decodes as
// the zero T, so its fields fall back to their defaults.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler without ever failing on shape.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		*l = nil
		return nil
	}

	out := make(List[T], 0, len(elems))
	for _, raw := range elems {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			var zero T
			v = zero
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
