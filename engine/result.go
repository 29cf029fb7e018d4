package engine

import (
	"encoding/json"
	"fmt"
)

// Status is derived from how a Result was constructed
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "Success"
	}
	return "Failure"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "Success":
		*s = StatusSuccess
	case "Failure":
		*s = StatusFailure
	default:
		return fmt.Errorf("unknown result status %q", name)
	}
	return nil
}

// Result is the outcome of one command. The zero value is not meaningful;
// use Success, SuccessWith or Failure.
type Result struct {
	status     Status
	payload    any
	hasPayload bool
	errMessage string
}

// Success is a successful result without a payload
func Success() Result {
	return Result{status: StatusSuccess}
}

// SuccessWith is a successful result carrying payload
func SuccessWith[T any](payload T) Result {
	return Result{status: StatusSuccess, payload: payload, hasPayload: true}
}

// Failure is a failed result. An empty message is allowed.
func Failure(message string) Result {
	return Result{status: StatusFailure, errMessage: message}
}

func (r Result) Status() Status { return r.status }

func (r Result) OK() bool { return r.status == StatusSuccess }

// Payload returns the result payload and whether one was set
func (r Result) Payload() (any, bool) { return r.payload, r.hasPayload }

func (r Result) ErrorMessage() string { return r.errMessage }

// PayloadAs returns the payload of r converted to T
func PayloadAs[T any](r Result) (T, bool) {
	v, ok := r.payload.(T)
	return v, ok && r.hasPayload
}

type resultJSON struct {
	Status       Status          `json:"status"`
	Result       json.RawMessage `json:"result,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
}

// MarshalJSON produces {"status":…,"result"?:…,"errorMessage"?:…}
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Status: r.status, ErrorMessage: r.errMessage}
	if r.hasPayload {
		raw, err := json.Marshal(r.payload)
		if err != nil {
			return nil, err
		}
		out.Result = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the wire shape. Payloads are decoded generically:
// strings stay strings and key lists become []string.
func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Status == StatusFailure {
		*r = Failure(in.ErrorMessage)
		return nil
	}
	if len(in.Result) == 0 {
		*r = Success()
		return nil
	}

	var s string
	if err := json.Unmarshal(in.Result, &s); err == nil {
		*r = SuccessWith(s)
		return nil
	}
	var keys []string
	if err := json.Unmarshal(in.Result, &keys); err == nil {
		*r = SuccessWith(keys)
		return nil
	}
	var v any
	if err := json.Unmarshal(in.Result, &v); err != nil {
		return err
	}
	*r = SuccessWith(v)
	return nil
}
