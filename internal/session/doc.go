// Package session owns the access/refresh token pair and its lifecycle.
// The Manager is the single writer of token storage, collapses concurrent
// refresh attempts into one request with queued callers released in arrival
// order, and treats a failed refresh as terminal until the next login.
package session
