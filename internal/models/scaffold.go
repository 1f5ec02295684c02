package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Scaffold is the ordered part template copied into a newly tracked item's
// status. Key order follows the source file and is the display order.
type Scaffold struct {
	parts   []string
	initial map[string]Status
}

// NewScaffold builds a scaffold where every part starts unacquired
func NewScaffold(parts ...string) Scaffold {
	s := Scaffold{initial: make(map[string]Status, len(parts))}
	for _, p := range parts {
		s.add(p, StatusUnacquired)
	}
	return s
}

func (s *Scaffold) add(part string, status Status) {
	if s.initial == nil {
		s.initial = make(map[string]Status)
	}
	if _, exists := s.initial[part]; !exists {
		s.parts = append(s.parts, part)
	}
	s.initial[part] = status
}

// Parts returns the part keys in order
func (s Scaffold) Parts() []string {
	return append([]string(nil), s.parts...)
}

// Has reports whether part is a key of the scaffold
func (s Scaffold) Has(part string) bool {
	_, ok := s.initial[part]
	return ok
}

// Initial returns the starting status of a part
func (s Scaffold) Initial(part string) Status {
	return s.initial[part]
}

// Len returns the number of parts
func (s Scaffold) Len() int {
	return len(s.parts)
}

// NewStatus returns a fresh status record for a newly tracked item
func (s Scaffold) NewStatus() ItemStatus {
	out := make(ItemStatus, len(s.parts))
	for _, p := range s.parts {
		out[p] = s.initial[p]
	}
	return out
}

// UnmarshalJSON decodes a JSON object keeping key order
func (s *Scaffold) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("scaffold must be an object, got %v", tok)
	}

	out := Scaffold{initial: make(map[string]Status)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		part, _ := tok.(string)
		var status Status
		if err := dec.Decode(&status); err != nil {
			return fmt.Errorf("scaffold part %q: %w", part, err)
		}
		if !status.Valid() {
			return fmt.Errorf("scaffold part %q: invalid status %q", part, status)
		}
		out.add(part, status)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

// MarshalJSON encodes the scaffold as an object in part order
func (s Scaffold) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range s.parts {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.initial[p])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a YAML mapping keeping key order
func (s *Scaffold) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("scaffold must be a mapping (line %d)", value.Line)
	}

	out := Scaffold{initial: make(map[string]Status)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var part string
		if err := value.Content[i].Decode(&part); err != nil {
			return err
		}
		var status Status
		if err := value.Content[i+1].Decode(&status); err != nil {
			return fmt.Errorf("scaffold part %q: %w", part, err)
		}
		if !status.Valid() {
			return fmt.Errorf("scaffold part %q: invalid status %q", part, status)
		}
		out.add(part, status)
	}

	*s = out
	return nil
}
