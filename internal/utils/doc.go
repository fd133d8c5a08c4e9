// Package utils provides small shared helpers: content-type checks for
// HTTP debug logging, credential masking, and a cancellable task scheduler
// used for alert dismissal and redirect delays.
package utils
