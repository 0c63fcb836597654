// Package session carries the signed-in user's identity.
//
// The identity is passed explicitly into every client component instead of
// being read from shared global state, so each view's dependencies are
// visible at construction time.
package session

// Session identifies the current user for the lifetime of the running
// client. It is never persisted.
type Session struct {
	Username string
	Email    string
	Token    string
}
