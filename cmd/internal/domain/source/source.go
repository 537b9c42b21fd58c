package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// RequestTimeout bounds every request issued to a registry.
const RequestTimeout = 10 * time.Second

var ErrUnavailable = errors.New("data source unavailable")

// Source is a remote registry that can be queried by NIT.
//
// Query returns a nil Result and a nil error when the registry has no record
// of the NIT. Transport and decoding failures are reported as *UnavailableError.
type Source interface {
	Name() string
	Query(ctx context.Context, nit string, hints Hints) (Result, error)
}

// Hints carries values taken from an earlier result that a registry
// may need to build its own lookup key.
type Hints struct {
	ChamberCode        string
	RegistrationNumber string
}

// Result maps the registry's own field names to their non-blank values.
type Result map[string]string

// Get returns the value under key, or "" when absent.
func (r Result) Get(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}

func (r Result) IsEmpty() bool {
	return len(r) == 0
}

// Set stores v under key unless it is blank.
func (r Result) Set(key, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	r[key] = v
}

type UnavailableError struct {
	Source string
	Err    error
}

func NewUnavailable(source string, err error) *UnavailableError {
	return &UnavailableError{Source: source, Err: err}
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("data source '%s' failed: %v", e.Source, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

// String is a JSON string that also accepts numbers and null.
// Registries are not consistent about quoting numeric identifiers.
type String string

func (s *String) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = String(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = String(n.String())
	return nil
}
