package rest

import (
	"net/url"
	"strings"
)

// Fields is an ordered form-field mapping. It mirrors the url.Values API but
// Encode emits pairs in caller insertion order instead of sorted by key.
// The signature is computed over the exact encoded bytes and the server
// rebuilds them from what arrives on the wire, so re-ordering fields between
// signing and sending would invalidate every request.
type Fields struct {
	keys   []string
	values map[string][]string
}

func NewFields() *Fields {
	return &Fields{
		values: map[string][]string{},
	}
}

// Set replaces any existing values for key. A key keeps its original
// position in the encoding order when it was seen before.
func (f *Fields) Set(key, value string) {
	if _, seen := f.values[key]; !seen {
		f.keys = append(f.keys, key)
	}
	f.values[key] = []string{value}
}

// Add appends value to the values already associated with key.
func (f *Fields) Add(key, value string) {
	if _, seen := f.values[key]; !seen {
		f.keys = append(f.keys, key)
	}
	f.values[key] = append(f.values[key], value)
}

// Get returns the first value associated with key or the empty string.
func (f *Fields) Get(key string) string {
	if f == nil {
		return ""
	}
	fieldValues := f.values[key]
	if len(fieldValues) == 0 {
		return ""
	}
	return fieldValues[0]
}

// Merge appends all entries of other after the entries of f.
func (f *Fields) Merge(other *Fields) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		for _, value := range other.values[key] {
			f.Add(key, value)
		}
	}
}

func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Encode serializes the fields as application/x-www-form-urlencoded.
// Encoding the same Fields twice yields byte-identical output. A nil
// receiver encodes to the empty string so optional fields need no guard.
func (f *Fields) Encode() string {
	if f == nil || len(f.keys) == 0 {
		return ""
	}
	var pairs []string
	for _, key := range f.keys {
		escapedKey := url.QueryEscape(key)
		for _, value := range f.values[key] {
			pairs = append(pairs, escapedKey+"="+url.QueryEscape(value))
		}
	}
	return strings.Join(pairs, "&")
}
