// Package authapi provides a typed client for the remote authentication API:
// registration, activation, login (password and Google OAuth), password
// recovery, account unlock, email change, profile management, and token
// refresh. Failures are classified into sentinel errors by HTTP status and
// carry the backend message plus any per-field validation detail.
package authapi
