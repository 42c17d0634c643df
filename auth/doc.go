/*
Package auth issues and verifies the session tokens every guarded request depends on.

# Tokens

A [Service] mints HS256-signed JWTs carrying [SessionClaims]: username, role and
email, bounded by an embedded expiry. The credential itself is the source of
truth; nothing is persisted server-side. The signing key is injected through
[Config] at construction, so a missing key fails at startup instead of on a
live request.

# Google

A [Service] can also exchange an oauth2 token from Google for the account's
user info, letting handlers map a Google account onto a local one.
*/
package auth
