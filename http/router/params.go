package router

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/urbanfix/urbanfix"
)

// Params maps capture names to the decoded path values bound at match time.
//
// A Params is produced fresh per request and discarded with it.
type Params map[string]string

// ParamsFromContext retrieves the Params bound while matching the route.
// An unmatched or parameterless request yields an empty, non-nil Params.
func ParamsFromContext(ctx context.Context) Params {
	params, ok := ctx.Value(urbanfix.RouteParamsKey).(Params)
	if !ok || params == nil {
		return make(Params)
	}

	return params
}

// Param retrieves a single named capture from the request, or "".
func Param(r *http.Request, name string) string {
	return ParamsFromContext(r.Context())[name]
}

// ParamAs retrieves a named capture converted to T.
//
// A missing capture returns urbanfix.ErrMissingData;
// a value that does not parse as T returns urbanfix.ErrNotValid.
func ParamAs[T int | int64 | uint | float64 | string](r *http.Request, name string) (T, error) {
	var out T

	raw := Param(r, name)
	if raw == "" {
		return out, fmt.Errorf("%w: no route param %q", urbanfix.ErrMissingData, name)
	}

	switch p := any(&out).(type) {
	case *string:
		*p = raw

	case *int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return out, fmt.Errorf("%w: route param %q: %s", urbanfix.ErrNotValid, name, err)
		}
		*p = v

	case *int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return out, fmt.Errorf("%w: route param %q: %s", urbanfix.ErrNotValid, name, err)
		}
		*p = v

	case *uint:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return out, fmt.Errorf("%w: route param %q: %s", urbanfix.ErrNotValid, name, err)
		}
		*p = uint(v)

	case *float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return out, fmt.Errorf("%w: route param %q: %s", urbanfix.ErrNotValid, name, err)
		}
		*p = v
	}

	return out, nil
}
