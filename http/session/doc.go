// Package session manages the server-side sessions behind the legacy
// "sessionId" cookie login flow.
//
// A Service backs sessions with either encrypted cookies or Redis and hands
// out the Session for a request. A Session records the authenticated user's
// username; guards resolve that username against the live user store rather
// than trusting any role stored at login time.
package session
