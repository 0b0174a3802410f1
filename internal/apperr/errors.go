package apperr

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

type ValidationError struct {
	Message string
	Err     error
	// Fields maps a payload field to the rule it broke.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+" "+e.Fields[k])
		}
		msg += " (" + strings.Join(parts, ", ") + ")"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

func NewValidationFields(msg string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: msg, Fields: fields}
}

// TransportError is a connection failure or a non-2xx response.
type TransportError struct {
	Resource   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Resource, e.StatusCode)
	}
	if e.Err != nil {
		return e.Resource + ": " + e.Err.Error()
	}
	return e.Resource + ": transport failure"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type TimeoutError struct {
	Resource string
	After    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: no response within %s", e.Resource, e.After)
}

type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func NewNotFound(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

type Kind string

const (
	KindNone       Kind = ""
	KindTransport  Kind = "transport"
	KindTimeout    Kind = "timeout"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindCanceled   Kind = "canceled"
	KindUnknown    Kind = "unknown"
)

// KindOf classifies err for diagnostics and metric labels.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var te *TimeoutError
	var tre *TransportError
	var ve *ValidationError
	var nfe *NotFoundError
	switch {
	case errors.As(err, &te):
		return KindTimeout
	case errors.As(err, &nfe):
		return KindNotFound
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &tre):
		return KindTransport
	case errors.Is(err, context.Canceled):
		return KindCanceled
	default:
		return KindUnknown
	}
}

// TriggersFallback reports whether err makes live data untrustworthy for a page.
// A missing single article is an answer, not a failure.
func TriggersFallback(err error) bool {
	switch KindOf(err) {
	case KindNone, KindNotFound:
		return false
	default:
		return true
	}
}
