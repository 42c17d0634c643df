/*
Package resp writes structured HTTP responses through a reusable [Responder].

API callers always receive one of two JSON envelopes:

	{"success": true, "data": ...}
	{"success": false, "error": {"code": "NOT_AUTHENTICATED", "message": "..."}}

The error code is stable; clients branch on it, not the message.
Page requests are redirected instead through [*Responder.Redirect].

Handlers compose a response out of [Fn] functional options:

	d.Json(w, r, resp.Code(http.StatusCreated), resp.Data(report))
*/
package resp
