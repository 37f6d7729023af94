// Package params extracts typed fields from the untyped parameter payload
// sent with every operation. All commands go through these accessors so the
// same mistake always produces the same error code and message.
package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sshaaf/scribe/pkg/errors"
)

// Payload is a decoded JSON object of operation parameters
type Payload struct {
	values map[string]interface{}
	// path qualifies field names in errors for nested objects
	path string
}

// Parse decodes payload text into a Payload. Blank text is an empty object.
func Parse(text string) (Payload, error) {
	if strings.TrimSpace(text) == "" {
		return New(nil), nil
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return Payload{}, errors.Wrap(err, errors.ErrMalformedPayload, "parameters are not valid JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		return Payload{}, errors.New(errors.ErrMalformedPayload, "parameters contain trailing data after the JSON object")
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return Payload{}, errors.New(errors.ErrMalformedPayload, "parameters must be a JSON object")
	}
	return New(obj), nil
}

// New wraps an already decoded object
func New(values map[string]interface{}) Payload {
	if values == nil {
		values = map[string]interface{}{}
	}
	return Payload{values: values}
}

// Keys returns the payload's keys in sorted order
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key is present with a non-null value
func (p Payload) Has(key string) bool {
	v, ok := p.values[key]
	return ok && v != nil
}

// Raw returns the untyped value stored under key
func (p Payload) Raw(key string) (interface{}, bool) {
	v, ok := p.values[key]
	return v, ok && v != nil
}

// String renders the payload back to compact JSON, for logging
func (p Payload) String() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p.values); err != nil {
		return fmt.Sprintf("%v", p.values)
	}
	return strings.TrimSpace(buf.String())
}

func (p Payload) field(key string) string {
	if p.path == "" {
		return key
	}
	return p.path + "." + key
}

func (p Payload) child(key string, index int) Payload {
	path := p.field(key)
	if index >= 0 {
		path = fmt.Sprintf("%s[%d]", path, index)
	}
	return Payload{path: path}
}
