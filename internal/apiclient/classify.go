package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// Outcome is the class a response falls into.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeValidation
	OutcomeServer
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeValidation:
		return "validation"
	case OutcomeServer:
		return "server"
	default:
		return "fatal"
	}
}

// TransportError means no response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sending request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means a success response did not match the expected shape.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to parse response json (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ServerError is any response that is neither 2xx nor 4xx.
type ServerError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ServerError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("server returned %s", e.Status)
	}
	return fmt.Sprintf("server returned %s: %s", e.Status, body)
}

// ValidationError is a 4xx response with its decoded payload.
type ValidationError struct {
	StatusCode int
	Payload    models.ErrorPayload
}

func (e *ValidationError) Error() string {
	var parts []string
	if e.Payload != nil {
		for _, f := range e.Payload.FieldErrors() {
			parts = append(parts, f.Field+": "+strings.Join(f.Messages, " "))
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("request rejected with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request rejected with status %d: %s", e.StatusCode, strings.Join(parts, "; "))
}

const maxDetailLen = 200

// Classify turns one HTTP exchange into nil (success, out decoded) or one of
// *TransportError, *DecodeError, *ValidationError and *ServerError.
// out may be nil when the caller needs no body; payload may be nil when the
// caller expects no structured 4xx body.
func Classify(resp *http.Response, transportErr error, out any, payload models.ErrorPayload) error {
	if transportErr != nil {
		return &TransportError{Err: transportErr}
	}
	if resp == nil {
		return &TransportError{Err: errors.New("no response")}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		if out == nil || code == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return &DecodeError{StatusCode: code, Err: err}
		}
		return nil

	case code >= 400 && code < 500:
		if payload != nil {
			if err := json.Unmarshal(body, payload); err != nil {
				// Non-JSON bodies (HTML error pages) are only kept when short.
				detail := strings.TrimSpace(string(body))
				if detail == "" || len(detail) > maxDetailLen {
					detail = http.StatusText(code)
				}
				payload.SetDetail(detail)
			}
		}
		return &ValidationError{StatusCode: code, Payload: payload}

	default:
		return &ServerError{StatusCode: code, Status: resp.Status, Body: string(body)}
	}
}

// OutcomeOf maps an error returned by Classify (or an API call) back to its
// class. Any error that is not a validation or server error is fatal.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return OutcomeValidation
	}
	var se *ServerError
	if errors.As(err, &se) {
		return OutcomeServer
	}
	return OutcomeFatal
}

// IsFatal reports whether err must end the process with a non-zero status
// regardless of the command. Validation errors are reported and left to the
// command to decide.
func IsFatal(err error) bool {
	return err != nil && OutcomeOf(err) != OutcomeValidation
}
