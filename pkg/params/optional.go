package params

import (
	"github.com/sshaaf/scribe/pkg/errors"
)

// The Optional accessors return ok=false when the key is absent or null,
// and a TYPE_MISMATCH error when it is present with the wrong shape.

// OptionalString returns a string field if present
func (p Payload) OptionalString(key string) (string, bool, error) {
	v, ok := p.Raw(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, errors.TypeMismatch(p.field(key), "a string", v)
	}
	return s, true, nil
}

// OptionalInt returns an integer field if present
func (p Payload) OptionalInt(key string) (int, bool, error) {
	v, ok := p.Raw(key)
	if !ok {
		return 0, false, nil
	}
	n, ok := toInt(v)
	if !ok {
		return 0, false, errors.TypeMismatch(p.field(key), "an integer", v)
	}
	return n, true, nil
}

// OptionalEnum returns the canonical spelling of an enumerated field if present
func (p Payload) OptionalEnum(key string, valid []string) (string, bool, error) {
	s, ok, err := p.OptionalString(key)
	if err != nil || !ok {
		return "", ok, err
	}
	canonical, err := p.matchEnum(key, s, valid)
	if err != nil {
		return "", false, err
	}
	return canonical, true, nil
}

// OptionalStrings returns an array-of-strings field if present
func (p Payload) OptionalStrings(key string) ([]string, bool, error) {
	v, ok := p.Raw(key)
	if !ok {
		return nil, false, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, false, errors.TypeMismatch(p.field(key), "an array of strings", v)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false, errors.TypeMismatch(p.child(key, i).path, "a string", item)
		}
		out = append(out, s)
	}
	return out, true, nil
}

// OptionalObject returns a nested object field if present
func (p Payload) OptionalObject(key string) (Payload, bool, error) {
	v, ok := p.Raw(key)
	if !ok {
		return Payload{}, false, nil
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return Payload{}, false, errors.TypeMismatch(p.field(key), "an object", v)
	}
	sub := p.child(key, -1)
	sub.values = obj
	return sub, true, nil
}

// OptionalObjects returns an array-of-objects field if present
func (p Payload) OptionalObjects(key string) ([]Payload, bool, error) {
	v, ok := p.Raw(key)
	if !ok {
		return nil, false, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, false, errors.TypeMismatch(p.field(key), "an array of objects", v)
	}
	out := make([]Payload, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, false, errors.TypeMismatch(p.child(key, i).path, "an object", item)
		}
		sub := p.child(key, i)
		sub.values = obj
		out = append(out, sub)
	}
	return out, true, nil
}

// OptionalStringMap returns an object-of-strings field if present
func (p Payload) OptionalStringMap(key string) (map[string]string, bool, error) {
	obj, ok, err := p.OptionalObject(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	out := make(map[string]string, len(obj.values))
	for _, k := range obj.Keys() {
		s, ok := obj.values[k].(string)
		if !ok {
			return nil, false, errors.TypeMismatch(obj.field(k), "a string", obj.values[k])
		}
		out[k] = s
	}
	return out, true, nil
}
