/*
Package router maps inbound requests to handlers and enforces authorization
policy before any handler runs.

# Matching

A [Route] declares a method and a path pattern of literal and ":name" capture
segments. Patterns only match paths with the same segment count; literals
match exactly and captures bind any non-empty value, with one deliberate
exception: a capture never binds a reserved literal such as "count". That
rule keeps /api/reports/count resolving to the aggregate route even when
declared after /api/reports/:id. The first declared match wins.

# Policy

Authorization lives in a second ordered table of [Policy] entries matched
against the same path with the same algorithm. A matched policy's guards run
in order and halt the request at the first deny; the route's [Kind] picks
whether the refusal renders as a JSON error or a redirect to the login page.

# Fallback

Requests matching no route resolve against a static directory, guarded
against path traversal, with the 404 page rendered for missing assets.
*/
package router
