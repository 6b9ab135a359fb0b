package domain

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// DefaultLabel is used for emails that arrive without a label
const DefaultLabel = "other"

// Flag is a boolean decoded from any JSON value by truthiness
type Flag bool

// UnmarshalJSON implements json.Unmarshaler
func (f *Flag) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(val)
	case float64:
		*f = val != 0
	case string:
		*f = val != ""
	case []interface{}:
		*f = len(val) > 0
	case map[string]interface{}:
		*f = len(val) > 0
	default:
		*f = false
	}
	return nil
}

// Email is a caller-supplied email record. It only lives for one request.
type Email struct {
	Unread  Flag   `json:"unread"`
	Label   string `json:"label"`
	Subject string `json:"subject"`
}

// UnmarshalJSON fills in defaults for absent or null fields. A null record is a type error.
func (e *Email) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf(Email{})}
	}

	type emailAlias Email
	decoded := emailAlias{Label: DefaultLabel}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*e = Email(decoded)
	return nil
}

// IsUnread reports whether the email counts as unread
func (e Email) IsUnread() bool {
	return bool(e.Unread)
}
