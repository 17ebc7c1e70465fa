package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleID allows identity fields to be provided as JSON string or number
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	if f == nil {
		return fmt.Errorf("FlexibleID: nil receiver")
	}
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		*f = FlexibleID(strings.TrimSpace(s))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err == nil {
		*f = FlexibleID(num.String())
		return nil
	}

	return fmt.Errorf("FlexibleID: expected string or number, got %s", string(data))
}

// String returns the raw value
func (f FlexibleID) String() string {
	return string(f)
}

// Int64 parses the value as a base-10 integer identity
func (f FlexibleID) Int64() (int64, error) {
	return strconv.ParseInt(string(f), 10, 64)
}
