package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// jsonIndent is one level of indentation in generated JSON artifacts.
const jsonIndent = "    "

// newOrderedMap returns an empty ordered string-keyed map. Keys keep the
// order of first insertion, which is what makes generated JSON artifacts
// reproducible and diff-friendly.
func newOrderedMap() *orderedmap.OrderedMap[string, any] {
	return orderedmap.New[string, any]()
}

// writeOrderedJSON serializes m as a JSON object whose keys appear in
// insertion order, never sorted. With a non-empty indent unit each entry is
// written on its own line at level+1 units of indentation, with ": "
// separating key and value; an empty indent unit produces the compact
// single-line form with ":" as separator. Entries after the first are
// preceded by a comma, and there is no trailing comma.
//
// Values that are themselves ordered maps are serialized recursively one
// level deeper. The recursion is fully general even though the schema
// artifact only ever nests two levels.
func writeOrderedJSON(buf *bytes.Buffer, m *orderedmap.OrderedMap[string, any], indent string, level int) error {
	if m.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}

	separator := ": "
	if indent == "" {
		separator = ":"
	}

	buf.WriteByte('{')
	first := true
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(indent, level+1))
		}

		key, err := json.Marshal(pair.Key)
		if err != nil {
			return fmt.Errorf("failed to encode key %q: %w", pair.Key, err)
		}
		buf.Write(key)
		buf.WriteString(separator)

		switch value := pair.Value.(type) {
		case *orderedmap.OrderedMap[string, any]:
			if err := writeOrderedJSON(buf, value, indent, level+1); err != nil {
				return err
			}
		default:
			encoded, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("failed to encode value for key %q: %w", pair.Key, err)
			}
			buf.Write(encoded)
		}
	}

	if indent != "" {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(indent, level))
	}
	buf.WriteByte('}')

	return nil
}
