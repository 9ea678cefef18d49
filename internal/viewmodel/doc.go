// Package viewmodel holds the per-screen state of the console.
//
// Each view-model wraps one gateway and owns an in-memory collection that is
// the source of truth between fetches. Mutations are confirmed: the local
// collection changes only after the server accepts the call, and a failure
// leaves it untouched while recording the error for display. A view-model
// runs one operation at a time; overlapping calls fail with ErrBusy.
package viewmodel
