package staticvec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the live elements as a JSON array.
func (v Vector[T, S]) MarshalJSON() ([]byte, error) {
	s := v.Slice()
	if s == nil {
		s = []T{}
	}
	return json.Marshal(s)
}

// UnmarshalJSON replaces the contents with a decoded JSON array. An array
// longer than the capacity fails with ErrCapacityExceeded and a malformed
// element fails the whole call; either way v is unchanged. JSON null is a
// no-op.
func (v *Vector[T, S]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("staticvec: decode json: %w", err)
	}
	var staged S
	s := slotsOf[T](&staged, v.Cap())
	if len(raw) > len(s) {
		return capacityError(len(raw), len(s))
	}
	for i, r := range raw {
		if err := json.Unmarshal(r, &s[i]); err != nil {
			return fmt.Errorf("staticvec: decode json element %d: %w", i, err)
		}
	}
	v.commit(&staged, len(raw))
	return nil
}

// MarshalYAML encodes the live elements as a YAML sequence.
func (v Vector[T, S]) MarshalYAML() (any, error) {
	s := v.Slice()
	if s == nil {
		s = []T{}
	}
	return s, nil
}

// UnmarshalYAML replaces the contents with a decoded YAML sequence, with
// the same failure behaviour as UnmarshalJSON.
func (v *Vector[T, S]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.ShortTag() == "!!null" {
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("staticvec: decode yaml: line %d: expected a sequence", node.Line)
	}
	var staged S
	s := slotsOf[T](&staged, v.Cap())
	if len(node.Content) > len(s) {
		return capacityError(len(node.Content), len(s))
	}
	for i, item := range node.Content {
		if err := item.Decode(&s[i]); err != nil {
			return fmt.Errorf("staticvec: decode yaml element %d: %w", i, err)
		}
	}
	v.commit(&staged, len(node.Content))
	return nil
}

// commit destroys the current elements and adopts the n elements decoded
// into staged.
func (v *Vector[T, S]) commit(staged *S, n int) {
	v.Clear()
	v.storage = *staged
	v.length = n
}
