package models

import (
	"bytes"
	"encoding/json"
	"time"

	"fjacquet/creditlens/internal/currencyutils"
	"fjacquet/creditlens/internal/dateutils"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Detail is one attribute of a negative item, e.g. "Balance: $500".
type Detail struct {
	Key   string `json:"key" yaml:"key" csv:"key"`
	Value string `json:"value" yaml:"value" csv:"value"`
}

// Kind classifies the detail by its label.
func (d Detail) Kind() DetailKind {
	return KindFor(d.Key)
}

// Amount extracts a monetary value from the detail's value.
func (d Detail) Amount() (decimal.Decimal, bool) {
	return currencyutils.ExtractAmount(d.Value)
}

// Date parses the detail's value as a calendar date.
func (d Detail) Date() (time.Time, bool) {
	t, _, err := dateutils.ParseDate(d.Value)
	return t, err == nil
}

// Details is an insertion-ordered label -> value mapping. Keys are unique;
// setting an existing key replaces its value in place.
type Details struct {
	entries []Detail
}

// NewDetails builds Details from key/value pairs given in order.
func NewDetails(pairs ...Detail) Details {
	var d Details
	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}
	return d
}

// Set adds or replaces a value.
func (d *Details) Set(key, value string) {
	for i := range d.entries {
		if d.entries[i].Key == key {
			d.entries[i].Value = value
			return
		}
	}
	d.entries = append(d.entries, Detail{Key: key, Value: value})
}

// Get looks up a value by label.
func (d Details) Get(key string) (string, bool) {
	for _, e := range d.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Len returns the number of attributes.
func (d Details) Len() int {
	return len(d.entries)
}

// Entries returns the attributes in source order.
func (d Details) Entries() []Detail {
	out := make([]Detail, len(d.entries))
	copy(out, d.entries)
	return out
}

// Map returns the attributes as a plain map.
func (d Details) Map() map[string]string {
	m := make(map[string]string, len(d.entries))
	for _, e := range d.entries {
		m[e.Key] = e.Value
	}
	return m
}

// MarshalJSON writes an object whose keys keep source order.
func (d Details) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object, keeping key order.
func (d *Details) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	d.entries = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		key, _ := keyTok.(string)
		d.Set(key, value)
	}
	_, err := dec.Token()
	return err
}

// MarshalYAML writes a mapping node whose keys keep source order.
func (d Details) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range d.entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}
	return node, nil
}
