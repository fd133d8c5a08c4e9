// Package account orchestrates the session-facing account flows: login and
// logout, activation with a resend cooldown, password recovery and change,
// account unlock, email change, and profile access. It also maps API
// failures to the messages shown to the user.
package account
