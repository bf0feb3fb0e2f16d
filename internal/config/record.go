package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Recognized keys in file order.
const (
	KeySearchRadius = "searchRadius"
	KeyTolerance    = "tolerance"
	KeyLoopSleepMs  = "loopSleepMs"
	KeyEnableKey    = "enableKey"
	KeyToggleKey    = "toggleKey"
	KeyModeKey      = "modeKey"
	KeyTheme        = "theme"
)

// RecordKeys lists the recognized keys in the order they are written.
var RecordKeys = []string{
	KeySearchRadius,
	KeyTolerance,
	KeyLoopSleepMs,
	KeyEnableKey,
	KeyToggleKey,
	KeyModeKey,
	KeyTheme,
}

// field returns a pointer to the Go field behind a recognized key.
func (r *Record) field(key string) any {
	switch key {
	case KeySearchRadius:
		return &r.SearchRadius
	case KeyTolerance:
		return &r.Tolerance
	case KeyLoopSleepMs:
		return &r.LoopSleepMs
	case KeyEnableKey:
		return &r.EnableKey
	case KeyToggleKey:
		return &r.ToggleKey
	case KeyModeKey:
		return &r.ModeKey
	case KeyTheme:
		return &r.Theme
	}
	return nil
}

// MarshalJSON writes the recognized keys in file order followed by the
// preserved unknown keys sorted by name.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range RecordKeys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, key, r.field(key)); err != nil {
			return nil, err
		}
	}

	extra := make([]string, 0, len(r.Extra))
	for key := range r.Extra {
		if r.field(key) != nil {
			continue
		}
		extra = append(extra, key)
	}
	sort.Strings(extra)
	for _, key := range extra {
		buf.WriteByte(',')
		raw := r.Extra[key]
		if len(bytes.TrimSpace(raw)) == 0 {
			raw = json.RawMessage("null")
		}
		if err := writeMember(&buf, key, raw); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := marshalPlain(key)
	if err != nil {
		return err
	}
	v, err := marshalPlain(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// marshalPlain encodes v without HTML escaping so key names such as "<" or
// "&" reach the backend as written.
func marshalPlain(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON overlays the keys present in data onto r. Fields whose key
// is absent are left alone, so decoding into Defaults() merges over them.
func (r *Record) UnmarshalJSON(data []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	if members == nil {
		return fmt.Errorf("config record must be a JSON object")
	}

	next := *r
	next.Extra = nil
	for key, raw := range r.Extra {
		if next.Extra == nil {
			next.Extra = make(map[string]json.RawMessage, len(r.Extra))
		}
		next.Extra[key] = raw
	}

	for key, raw := range members {
		if ptr := next.field(key); ptr != nil {
			if err := decodeMember(raw, ptr); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			continue
		}
		if next.Extra == nil {
			next.Extra = make(map[string]json.RawMessage)
		}
		next.Extra[key] = append(json.RawMessage(nil), raw...)
	}
	*r = next
	return nil
}

// decodeMember decodes one recognized value. Integer keys accept any JSON
// number; a fraction such as 60.5 is rounded to the nearest integer.
func decodeMember(raw json.RawMessage, ptr any) error {
	n, ok := ptr.(*int)
	if !ok {
		return json.Unmarshal(raw, ptr)
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return err
	}
	if math.IsNaN(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("number %s out of range", raw)
	}
	*n = int(math.Round(f))
	return nil
}

// Encode renders r the way it is stored on disk: two-space indentation and
// no trailing newline.
func Encode(r Record) ([]byte, error) {
	compact, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decode merges the JSON object in data over Defaults().
func Decode(data []byte) (Record, error) {
	rec := Defaults()
	if err := json.Unmarshal(data, &rec); err != nil {
		return Defaults(), err
	}
	return rec, nil
}

// Equal reports whether two records hold the same values. Preserved
// unknown keys are compared ignoring insignificant whitespace.
func (r Record) Equal(o Record) bool {
	if r.SearchRadius != o.SearchRadius ||
		r.Tolerance != o.Tolerance ||
		r.LoopSleepMs != o.LoopSleepMs ||
		r.EnableKey != o.EnableKey ||
		r.ToggleKey != o.ToggleKey ||
		r.ModeKey != o.ModeKey ||
		r.Theme != o.Theme {
		return false
	}
	if len(r.Extra) != len(o.Extra) {
		return false
	}
	for key, a := range r.Extra {
		b, ok := o.Extra[key]
		if !ok || compactJSON(a) != compactJSON(b) {
			return false
		}
	}
	return true
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// Get returns the value of a recognized key formatted for display.
func (r Record) Get(key string) (string, bool) {
	switch v := r.field(key).(type) {
	case *int:
		return strconv.Itoa(*v), true
	case *string:
		return *v, true
	}
	return "", false
}

// Set assigns a recognized key from its textual form. Integer keys must
// parse as integers; key bindings are upper-cased.
func (r *Record) Set(key, value string) error {
	switch v := r.field(key).(type) {
	case *int:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", key, value)
		}
		*v = n
	case *string:
		if key == KeyTheme {
			*v = value
		} else {
			*v = strings.ToUpper(value)
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
