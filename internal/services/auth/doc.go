// Package auth performs the administrator login call.
//
// The login endpoint is the one route whose reply is inspected as a whole
// (success flag, message, data) rather than unwrapped field by field.
package auth
