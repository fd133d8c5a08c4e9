// Package storage provides the key-value persistence capability used for
// session tokens and the registration draft. The Store interface keeps the
// backing medium swappable: a memory store for tests and ephemeral sessions,
// a file store for state that must survive restarts.
package storage
