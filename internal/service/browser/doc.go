// Package browser implements browser-assisted login: it opens the web
// front-end's login page in a real Chrome window, waits for the user to
// authenticate there (including the Google OAuth flow the terminal cannot
// host), and extracts the issued token pair from the browser's cookies.
package browser
