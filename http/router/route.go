package router

import (
	"net/http"

	"github.com/urbanfix/urbanfix/http/middleware"
)

// A Kind declares how a Route renders guard failures:
// API routes receive structured JSON errors,
// Page routes redirect to the login page.
type Kind int

const (
	API Kind = iota
	Page
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// Routes are matched in declaration order: declare more specific literal
// routes before routes whose capture would otherwise shadow them.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Kind        Kind
	Middlewares []middleware.Adapter
}

// A Policy pairs a path shape with the guards a matching request must pass
// before its handler runs.
//
// Policies are held in their own ordered table, matched independently of
// the route table with the identical algorithm. Keeping the tables separate
// lets one path shape cover multiple methods and lets unauthenticated
// static assets share path space with protected routes.
//
// An empty Method applies the Policy to every method on the path;
// setting it narrows the Policy, so reads can stay public
// while writes on the same path are guarded.
type Policy struct {
	Path   string
	Method string
	Guards []middleware.Guard
}
