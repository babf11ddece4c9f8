package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexibleBool is a tri-state boolean (true, false, unknown).
// The backend encodes these flags as JSON booleans, 0/1 integers or
// "0"/"1"/"true"/"false" strings depending on the endpoint, so decoding never fails:
// anything it cannot read becomes unknown.
type FlexibleBool struct {
	Value bool
	Valid bool
}

func NewFlexibleBool(v bool) FlexibleBool {
	return FlexibleBool{Value: v, Valid: true}
}

// ParseFlexibleBool applies the decoding order boolean, integer, string.
func ParseFlexibleBool(raw []byte) FlexibleBool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return FlexibleBool{}
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return NewFlexibleBool(b)
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return NewFlexibleBool(n != 0)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return NewFlexibleBool(s == "1" || strings.EqualFold(s, "true"))
	}

	return FlexibleBool{}
}

func (f *FlexibleBool) UnmarshalJSON(data []byte) error {
	*f = ParseFlexibleBool(data)
	return nil
}

// MarshalJSON always emits a native boolean, or null when unknown.
func (f FlexibleBool) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatBool(f.Value)), nil
}

// Ptr returns nil for unknown.
func (f FlexibleBool) Ptr() *bool {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// IsTrue reports a known true value.
func (f FlexibleBool) IsTrue() bool {
	return f.Valid && f.Value
}

func (f FlexibleBool) String() string {
	if !f.Valid {
		return "unknown"
	}
	return strconv.FormatBool(f.Value)
}
