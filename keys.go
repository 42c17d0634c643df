package urbanfix

// A Key stashes urbanfix-owned values in a context.Context.
type Key string

const (
	// CurrentUserKey stashes the User resolved by an authorization guard.
	CurrentUserKey Key = "CurrentUserKey"

	// IpAddrKey stashes the IP address of an HTTP request being handled by urbanfix.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// RouteParamsKey stashes the path parameters captured while matching a route.
	RouteParamsKey Key = "RouteParamsKey"

	// SessionKey stashes the legacy cookie session associated with an HTTP request.
	SessionKey Key = "SessionKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "urbanfix context key: " + string(k)
}
