package resp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/urbanfix/urbanfix/logger"
)

// Responder maintains reusable pieces for responding to HTTP requests.
// These are the forms of response Responder can execute:
//
//	Json
//	Redirect
//	Err
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// When handling a specific HTTP request, calling code supplies additional data
// through Fn functions.
type Responder struct {
	logger logger.Logger

	// Root URL the responder is listening on, also the fallback redirect destination
	rootUrl *url.URL
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := new(Responder)
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	return d
}

// successBody is the envelope every successful API response is wrapped in.
type successBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// errorBody is the envelope every failed API response is wrapped in,
// carrying a stable, machine-readable code.
type errorBody struct {
	Success bool      `json:"success"`
	Error   errDetail `json:"error"`
}

type errDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Json writes the response as "application/json".
//
// Without an ErrCode Fn, Json writes the success envelope around any Data,
// defaulting the status code to 200.
// With an ErrCode Fn, Json writes the error envelope,
// defaulting the status code to 500.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(opts...)
	if err != nil {
		doer.Err(w, r, err)
		return err
	}

	var body any
	switch {
	case rr.errCode != "":
		if rr.code == 0 {
			rr.code = http.StatusInternalServerError
		}
		body = errorBody{Error: errDetail{Code: rr.errCode, Message: rr.errMsg}}

	default:
		if rr.code == 0 {
			rr.code = http.StatusOK
		}
		body = successBody{Success: true, Data: rr.data}
	}

	if rr.err != nil {
		doer.logger.Error(rr.err.Error(), &logger.LogContext{Error: rr.err, Request: r})
	}

	b, err := json.Marshal(body)
	if err != nil {
		doer.Err(w, r, fmt.Errorf("%w: cannot marshal body: %s", ErrInvalid, err))
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rr.code)
	_, err = w.Write(b)
	return err
}

// Redirect redirects the request to the url set by the Url Fn,
// falling back to the Responder's root URL.
//
// The default status code is 302.
func (doer *Responder) Redirect(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(opts...)
	if err != nil {
		doer.Err(w, r, err)
		return err
	}

	if rr.url == nil {
		if doer.rootUrl == nil {
			err := fmt.Errorf("%w: no redirect destination", ErrMissingData)
			doer.Err(w, r, err)
			return err
		}

		rr.url = doer.rootUrl
	}

	if rr.code == 0 {
		rr.code = http.StatusFound
	}

	if rr.err != nil {
		doer.logger.Error(rr.err.Error(), &logger.LogContext{Error: rr.err, Request: r})
	}

	http.Redirect(w, r, rr.url.String(), rr.code)
	return nil
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// Use in exceptional circumstances when no Redirect or Json can occur.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(append(opts, Err(err))...)
	if nested != nil {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	doer.logger.Error(err.Error(), &logger.LogContext{Error: err, Request: r})

	if rr.code == 0 {
		rr.code = http.StatusInternalServerError
	}

	http.Error(w, http.StatusText(rr.code), rr.code)
}

// do runs all the Fns over a fresh Response.
func (doer *Responder) do(opts ...Fn) (*Response, error) {
	rr := new(Response)
	for _, opt := range opts {
		if err := opt(*doer, rr); err != nil {
			return rr, err
		}
	}

	return rr, nil
}
