package params

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/sshaaf/scribe/pkg/errors"
)

// RequireFields checks that every key is present, reporting the first
// missing one in the order given
func (p Payload) RequireFields(keys ...string) error {
	for _, key := range keys {
		if !p.Has(key) {
			return errors.MissingField(p.field(key))
		}
	}
	return nil
}

// RequireString returns a non-blank string field. The value is returned
// untrimmed so multi-line text survives verbatim.
func (p Payload) RequireString(key string) (string, error) {
	v, ok := p.Raw(key)
	if !ok {
		return "", errors.MissingField(p.field(key))
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Newf(errors.ErrMissingField, "missing required string field '%s'", p.field(key)).
			WithDetail(errors.DetailField, p.field(key))
	}
	if strings.TrimSpace(s) == "" {
		return "", errors.EmptyField(p.field(key))
	}
	return s, nil
}

// RequireInt returns an integral number field
func (p Payload) RequireInt(key string) (int, error) {
	v, ok := p.Raw(key)
	if !ok {
		return 0, errors.MissingField(p.field(key))
	}
	n, ok := toInt(v)
	if !ok {
		return 0, errors.TypeMismatch(p.field(key), "an integer", v)
	}
	return n, nil
}

// RequireIntInRange returns an integer field within [min, max]. Values
// outside the range are rejected, never clamped.
func (p Payload) RequireIntInRange(key string, min, max int) (int, error) {
	n, err := p.RequireInt(key)
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, errors.OutOfRange(p.field(key), n, min, max)
	}
	return n, nil
}

// RequireEnum returns the canonical spelling of a string field that must
// match one of valid, compared case-insensitively
func (p Payload) RequireEnum(key string, valid []string) (string, error) {
	s, err := p.RequireString(key)
	if err != nil {
		return "", err
	}
	return p.matchEnum(key, s, valid)
}

func (p Payload) matchEnum(key, s string, valid []string) (string, error) {
	for _, candidate := range valid {
		if strings.EqualFold(strings.TrimSpace(s), candidate) {
			return candidate, nil
		}
	}
	return "", errors.InvalidEnumValue(p.field(key), s, valid)
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
