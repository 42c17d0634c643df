package resp

import (
	"net/url"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	code    int
	data    any
	err     error
	errCode string
	errMsg  string
	url     *url.URL
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client
// under the "data" key of the success envelope.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err stores the error for logging and
// sets the status code http.StatusInternalServerError if none is set yet.
func Err(e error) Fn {
	return func(_ Responder, r *Response) error {
		r.err = e
		return nil
	}
}

// ErrCode flags the response as a failure,
// carried to API callers as a machine-readable error body
// with a stable code and a human-readable message.
func ErrCode(code, msg string) Fn {
	return func(_ Responder, r *Response) error {
		r.errCode = code
		r.errMsg = msg
		return nil
	}
}

// Url parses and sets the redirect destination on the Response.
func Url(u string) Fn {
	return func(_ Responder, r *Response) error {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return err
		}

		r.url = parsed
		return nil
	}
}
