package interfaces

// KeyValueStore is the client-side persistent storage slot, shaped like a
// browser's localStorage.
type KeyValueStore interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	// RemoveItem deletes all keys in a single write.
	RemoveItem(keys ...string) error
}
