package dsn

import (
	"encoding/json"
	"errors"
)

// ErrUnmatched is returned by helpers that need an error for input outside the grammar
var ErrUnmatched = errors.New("dsn: input does not match protocol://[user:password@]host:port[?options]")

// Parsed is the record of a successful match. Every field is independently
// optional; nil means absent and is never replaced by an empty value.
type Parsed struct {
	Protocol *string `json:"protocol" yaml:"protocol"`
	User     *string `json:"user" yaml:"user"`
	Password *string `json:"password" yaml:"password"`
	Host     *string `json:"host" yaml:"host"`
	Port     *int    `json:"port" yaml:"port"`
	Options  *string `json:"options" yaml:"options"`
}

// Get returns the value of f as string or int, or nil when absent
func (p Parsed) Get(f Field) any {
	switch f {
	case FieldProtocol:
		return stringOrNil(p.Protocol)
	case FieldUser:
		return stringOrNil(p.User)
	case FieldPassword:
		return stringOrNil(p.Password)
	case FieldHost:
		return stringOrNil(p.Host)
	case FieldPort:
		if p.Port == nil {
			return nil
		}
		return *p.Port
	case FieldOptions:
		return stringOrNil(p.Options)
	default:
		return nil
	}
}

// Map returns the record keyed by field name, with nil for absent fields
func (p Parsed) Map() map[string]any {
	m := make(map[string]any, len(fieldNames))
	for _, f := range Fields() {
		m[f.String()] = p.Get(f)
	}
	return m
}

// HasCredentials reports whether the user/password pair was supplied
func (p Parsed) HasCredentials() bool {
	return p.User != nil && p.Password != nil
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// Result is the outcome of one parse: either unmatched or a Parsed record.
// The zero value is unmatched.
type Result struct {
	parsed  Parsed
	matched bool
}

// Matched reports whether the input conformed to the grammar
func (r Result) Matched() bool {
	return r.matched
}

// Parsed returns the record and true, or a zero record and false when unmatched
func (r Result) Parsed() (Parsed, bool) {
	if !r.matched {
		return Parsed{}, false
	}
	return r.parsed, true
}

// Require returns the record or ErrUnmatched
func (r Result) Require() (Parsed, error) {
	if !r.matched {
		return Parsed{}, ErrUnmatched
	}
	return r.parsed, nil
}

// MarshalJSON encodes an unmatched result as null and a matched one as the
// six-field object, so "no match" stays distinct from "all fields absent"
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.matched {
		return []byte("null"), nil
	}
	return json.Marshal(r.parsed)
}
