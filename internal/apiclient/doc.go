// Package apiclient is the HTTP adapter every gateway goes through.
//
// Send attaches the bearer token held by the session, issues a single JSON
// request against the configured base URL and returns the raw response for
// 2xx statuses. A 401 clears the session and, unless the console is already
// on an authentication route, navigates to the login route. Every other
// non-2xx status becomes an *HTTPError whose message is shown to the user as
// is; transport errors are returned unmodified. There is no retry and no
// backoff.
//
// Unwrap and UnwrapData decode the server envelope `{ "data": { ... } }` into
// typed values and fail with ErrMalformedResponse when the expected shape is
// missing.
package apiclient
