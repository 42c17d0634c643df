// Package handler implements the HTTP endpoints of an urbanfix application.
//
// Handlers stay thin: requests are parsed and validated through http/req,
// persistence goes through narrow store interfaces, and every response is
// rendered by a resp.Responder. Authorization never happens here; by the
// time a handler runs, the router's policy table has already vetted the
// request and attached the resolved user to its context.
package handler
