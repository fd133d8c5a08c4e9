// Package register implements the multi-step registration flow: a three-step
// form with per-step validation, draft persistence that survives restarts
// without ever storing passwords, and submission with server-side conflict
// routing back to the step that owns the conflicting field.
package register
