package yml

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Dict is the insertion-ordered field map every entity renders itself into.
// Absent optional fields are stored as nil so that "not present" stays
// distinguishable from an explicitly empty value; Clean drops them.
type Dict struct {
	keys   []string
	values map[string]any
}

func NewDict() *Dict {
	return &Dict{values: map[string]any{}}
}

// Set stores value under key, keeping first-insertion order.
func (d *Dict) Set(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

func (d *Dict) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

func (d *Dict) Len() int { return len(d.keys) }

func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Clean returns a copy without nil-valued entries.
func (d *Dict) Clean() *Dict {
	out := NewDict()
	for _, k := range d.keys {
		if v := d.values[k]; v != nil {
			out.Set(k, v)
		}
	}
	return out
}

// MarshalJSON emits the fields in insertion order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Equal compares two dicts including key order.
func (d *Dict) Equal(other *Dict) bool {
	a, err := d.MarshalJSON()
	if err != nil {
		return false
	}
	b, err := other.MarshalJSON()
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// strOrNil maps the empty string to the absence marker.
func strOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolPtrOrNil(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}

func sliceOrNil(ss []string) any {
	if len(ss) == 0 {
		return nil
	}
	return ss
}

func intPtrOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
