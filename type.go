package incfg

import (
	"encoding"
	"fmt"
	"strings"
	"time"
)

// encodeValue renders a configuration value in its textual wire form.
// Booleans become the literals true/false, strings are always wrapped in
// double quotes, durations use their standard notation, and types
// implementing encoding.TextMarshaler encode through it. Everything else
// falls back to fmt's default formatting.
func encodeValue(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return `"` + t + `"`
	case time.Duration:
		return t.String()
	case encoding.TextMarshaler:
		if b, err := t.MarshalText(); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}

// decodeValue parses s into the value pointed to by target. Booleans accept
// only the exact literals "true" and "false". Strings never fail: a pair of
// surrounding double quotes is stripped, anything else passes through
// unchanged. Types implementing encoding.TextUnmarshaler decode through it.
// All remaining types go through fmt's scanner; leftover input after the
// scanned token is an error.
func decodeValue(s string, target any) error {
	switch t := target.(type) {
	case *bool:
		switch s {
		case "true":
			*t = true
		case "false":
			*t = false
		default:
			return fmt.Errorf("%w: unable to parse %q to \"true\" or \"false\"", ErrParse, s)
		}
		return nil
	case *string:
		*t = unquote(s)
		return nil
	case *time.Duration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%w: unable to parse %q as a duration", ErrParse, s)
		}
		*t = d
		return nil
	case encoding.TextUnmarshaler:
		if err := t.UnmarshalText([]byte(s)); err != nil {
			return fmt.Errorf("%w: unable to parse %q: %v", ErrParse, s, err)
		}
		return nil
	}

	r := strings.NewReader(s)
	if _, err := fmt.Fscan(r, target); err != nil {
		return fmt.Errorf("%w: unable to parse %q to its declared type", ErrParse, s)
	}
	if r.Len() > 0 {
		return fmt.Errorf("%w: unexpected trailing characters in %q", ErrParse, s)
	}
	return nil
}

// unquote strips exactly one pair of surrounding double quotes. Quotes are
// removed only when the string is at least two characters long and both ends
// are '"'; no escape processing happens inside.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
