// Package req decodes the data accompanying inbound requests into structs
// and validates the result.
//
// JSON bodies decode with encoding/json; query params decode through
// gorilla/schema. Both paths run go-playground validation afterward, with
// an "enum" tag available for Enumerable fields such as roles and report
// statuses. Failures surface as ValidationErrors wrapping ErrNotValid so
// handlers can respond 422 with a machine-readable body.
package req
