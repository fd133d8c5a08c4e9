// Package app provides the application logic behind each CLI command.
// It assembles the shared components (token store, session manager, HTTP
// transport stack, API client, services) and orchestrates the login,
// registration, account and profile flows on top of them.
package app
