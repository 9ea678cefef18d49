package apiclient

import (
	"encoding/json"
	"fmt"
)

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Decode decodes the whole body of resp into T.
func Decode[T any](resp *Response) (T, error) {
	var out T
	if resp == nil || len(resp.Body) == 0 {
		return out, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return out, nil
}

// UnwrapData decodes the whole `data` object of resp into T.
func UnwrapData[T any](resp *Response) (T, error) {
	var out T
	raw, err := dataOf(resp)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: data: %v", ErrMalformedResponse, err)
	}
	return out, nil
}

// Unwrap decodes `data.<field>` of resp into T. A missing or null field is an
// error rather than a zero value.
func Unwrap[T any](resp *Response, field string) (T, error) {
	var out T
	raw, err := dataOf(resp)
	if err != nil {
		return out, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out, fmt.Errorf("%w: data is not an object", ErrMalformedResponse)
	}
	v, ok := fields[field]
	if !ok || isNull(v) {
		return out, fmt.Errorf("%w: data.%s missing", ErrMalformedResponse, field)
	}
	if err := json.Unmarshal(v, &out); err != nil {
		return out, fmt.Errorf("%w: data.%s: %v", ErrMalformedResponse, field, err)
	}
	return out, nil
}

func dataOf(resp *Response) (json.RawMessage, error) {
	if resp == nil || len(resp.Body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if isNull(env.Data) {
		return nil, fmt.Errorf("%w: data missing", ErrMalformedResponse)
	}
	return env.Data, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
