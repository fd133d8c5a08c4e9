package storage

// Store is a key-value persistence capability.
// Implementations range from process-local memory to durable files;
// callers must not assume anything beyond these three operations.
type Store interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
