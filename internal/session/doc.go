// Package session is the console's explicit session context.
//
// It owns the bearer token and the administrator profile, persisted under two
// keys of the client-side storage slot and always written or cleared
// together. The HTTP adapter reads the token from here on every request and
// calls Clear on a 401.
package session
