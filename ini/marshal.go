package ini

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// ToMap converts the Document to a native Go map structure: global items
// become top-level keys, and each section becomes a nested map keyed by
// its name.
//
// A section whose name collides with a global key shadows it, matching
// how lookups distinguish the two scopes. Map iteration order is
// unspecified; use [Document.Sections] and [Section.Items] when order
// matters.
func (d *Document) ToMap() map[string]any {
	result := make(map[string]any, d.global.Len()+d.Len())

	for item := range d.global.Items() {
		result[item.Key] = item.Value
	}

	for s := range d.Sections() {
		nested := make(map[string]any, s.Len())
		for item := range s.Items() {
			nested[item.Key] = item.Value
		}

		result[s.Name()] = nested
	}

	return result
}

// MarshalJSON implements json.Marshaler for Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

// YAML renders the Document as YAML.
func (d *Document) YAML(opts ...yaml.EncodeOption) ([]byte, error) {
	return yaml.MarshalWithOptions(d.ToMap(), opts...)
}
