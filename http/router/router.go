package router

import (
	"context"
	"net/http"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/middleware"
	"github.com/urbanfix/urbanfix/http/resp"
	"github.com/urbanfix/urbanfix/logger"
)

const defaultLoginPath = "/login"

// Router routes requests for resources in a standard urbanfix app layout.
//
// For each inbound request the Router matches the route table, looks the
// path up in the policy table, runs any applicable guards, and only then
// invokes the handler with the captured parameters in the request context.
// Requests matching no route fall back to static-asset resolution.
// Every request terminates with a response.
type Router struct {
	env           urbanfix.Environment
	d             *resp.Responder
	l             logger.Logger
	loginPath     string
	staticDir     string
	routes        []routeEntry
	policies      []policyEntry
	everyReqStack []middleware.Adapter
}

type routeEntry struct {
	route   Route
	pattern Pattern
}

type policyEntry struct {
	policy  Policy
	pattern Pattern
}

// New constructs a [*Router] for the given environment.
//
// Guard failures on Page routes redirect to "/login"; use SetLoginPath
// when the login page lives elsewhere.
func New(env urbanfix.Environment, d *resp.Responder, l logger.Logger) *Router {
	return &Router{env: env, d: d, l: l, loginPath: defaultLoginPath}
}

// Handle applies the [Route] to the [*Router].
func (ro *Router) Handle(route Route) error {
	return ro.HandleRoutes([]Route{route})
}

// HandleRoutes appends the set of Routes to the route table, in order,
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the provided set.
//
// A malformed path declaration fails the whole registration;
// route tables are static and misdeclarations are startup faults.
func (ro *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) error {
	for _, route := range routes {
		pattern, err := NewPattern(route.Path)
		if err != nil {
			return err
		}

		route.Middlewares = append(middlewares, route.Middlewares...)
		ro.routes = append(ro.routes, routeEntry{route: route, pattern: pattern})
	}

	return nil
}

// Guard appends the set of Policies to the policy table, in order.
//
// The policy table is matched independently of the route table:
// the first Policy whose pattern matches the request path contributes
// its Guards; no match means the route is public.
func (ro *Router) Guard(policies ...Policy) error {
	for _, policy := range policies {
		pattern, err := NewPattern(policy.Path)
		if err != nil {
			return err
		}

		ro.policies = append(ro.policies, policyEntry{policy: policy, pattern: pattern})
	}

	return nil
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request,
// including those resolved by the static fallback.
func (ro *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	ro.everyReqStack = append(ro.everyReqStack, middlewares...)
}

// ServeStatic sets the directory requests matching no route resolve against.
func (ro *Router) ServeStatic(dir string) { ro.staticDir = dir }

// SetLoginPath sets where Page routes redirect on guard failure.
func (ro *Router) SetLoginPath(path string) { ro.loginPath = path }

// ServeHTTP responds to an HTTP request.
func (ro *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.Chain(http.HandlerFunc(ro.dispatch), ro.everyReqStack...).ServeHTTP(w, r)
}

// dispatch walks a single request through the pipeline:
// match, policy check, guards, handler.
func (ro *Router) dispatch(w http.ResponseWriter, r *http.Request) {
	entry, params, ok := ro.match(r.Method, r.URL.Path)
	if !ok {
		ro.serveStatic(w, r)
		return
	}

	if guards, guarded := ro.guardsFor(r.Method, r.URL.Path); guarded {
		guarded, verdict := middleware.RunGuards(r, guards...)
		if !verdict.Allowed() {
			ro.refuse(w, r, entry.route.Kind, verdict.Reason)
			return
		}

		r = guarded
	}

	r = r.Clone(context.WithValue(r.Context(), urbanfix.RouteParamsKey, params))

	handler := middleware.Chain(
		entry.route.Handler,
		append([]middleware.Adapter{middleware.RecoverPanic(ro.env, ro.l)}, entry.route.Middlewares...)...,
	)
	handler.ServeHTTP(w, r)
}

// match finds the first declared route matching the method and path.
func (ro *Router) match(method, path string) (routeEntry, Params, bool) {
	for _, entry := range ro.routes {
		if entry.route.Method != method {
			continue
		}

		if params, ok := entry.pattern.Match(path); ok {
			return entry, params, true
		}
	}

	return routeEntry{}, nil, false
}

// guardsFor finds the guards of the first declared policy matching the request.
// Capture values play no part in policy decisions, only the presence of a match.
func (ro *Router) guardsFor(method, path string) ([]middleware.Guard, bool) {
	for _, entry := range ro.policies {
		if entry.policy.Method != "" && entry.policy.Method != method {
			continue
		}

		if _, ok := entry.pattern.Match(path); ok {
			return entry.policy.Guards, true
		}
	}

	return nil, false
}

// refuse renders a guard failure.
//
// The guard itself is transport-agnostic; the Kind of the matched route
// picks the rendering: Page routes redirect to the login page, API routes
// receive a machine-readable error body with the status distinguishing
// a missing or invalid credential from an insufficient role.
func (ro *Router) refuse(w http.ResponseWriter, r *http.Request, kind Kind, reason middleware.DenyReason) {
	if kind == Page {
		if err := ro.d.Redirect(w, r, resp.Url(ro.loginPath)); err != nil {
			ro.d.Err(w, r, err)
		}

		return
	}

	switch reason {
	case middleware.DenyForbidden:
		ro.d.Json(w, r,
			resp.Code(http.StatusForbidden),
			resp.ErrCode("FORBIDDEN", "Insufficient privileges"),
		)

	default:
		ro.d.Json(w, r,
			resp.Code(http.StatusUnauthorized),
			resp.ErrCode("NOT_AUTHENTICATED", "Not authenticated"),
		)
	}
}
