// Package store provides file-based persistence for the admin console's
// client-side storage slot.
//
// The slot is a flat string key/value map, the same shape as a browser's
// localStorage, serialised as JSON on disk under the configured home
// directory. When a passphrase is configured the whole map is sealed with
// scrypt + ChaCha20-Poly1305 before it is written. All methods are
// concurrency-safe via internal locking and every write atomically replaces
// the file.
package store
