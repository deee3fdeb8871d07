package validation

import (
	"net/mail"
	"net/url"
	"strings"
)

// Violations maps a field name to a violation code. Handlers return the map
// inside the 400 envelope so clients can highlight individual fields.
type Violations map[string]string

func (v Violations) Add(field, code string) {
	if _, exists := v[field]; !exists {
		v[field] = code
	}
}

func (v Violations) Empty() bool {
	return len(v) == 0
}

// Required adds a violation when the value is blank after trimming.
func Required(v Violations, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, field+"_required")
	}
}

// MaxLen adds a violation when the value exceeds max characters.
func MaxLen(v Violations, field, value string, max int) {
	if len([]rune(value)) > max {
		v.Add(field, field+"_too_long")
	}
}

// Email adds a violation when the value is not a parseable address.
func Email(v Violations, field, value string) {
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "invalid_email_format")
	}
}

// MinLen adds a violation when the value is shorter than min characters.
func MinLen(v Violations, field, value string, min int) {
	if len(value) < min {
		v.Add(field, field+"_too_short")
	}
}

// HTTPURL accepts an empty value or an absolute http(s) URL.
func HTTPURL(v Violations, field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		v.Add(field, "invalid_url")
	}
}

// EachMaxLen checks every element of a string list against max.
func EachMaxLen(v Violations, field string, values []string, max int) {
	for _, value := range values {
		if len([]rune(value)) > max {
			v.Add(field, field+"_entry_too_long")
			return
		}
	}
}
