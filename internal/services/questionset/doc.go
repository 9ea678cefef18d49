// Package questionset is the gateway for /api/question-sets.
//
// Replies carry specializations populated as references; create and update
// payloads send bare ids.
package questionset
