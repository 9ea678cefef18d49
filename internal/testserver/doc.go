// Package testserver is an in-memory implementation of the marketplace admin
// API, served by echo on an httptest listener.
//
// It issues HS256 tokens on login, rejects requests without a valid bearer
// token with 401, wraps every success in {success, message, data} and keeps
// specializations, question sets and coin pricing sheets in memory. Tests
// seed it directly and can queue canned failures with ServeNext.
package testserver
