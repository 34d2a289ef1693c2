// Package frontend serves the pre-built single-page application.
//
// The build directory is probed once by [New]. When it holds an index.html
// the returned router serves files from it: paths under assets/ are served
// strictly (a miss is a 404) and every other path falls back to index.html,
// leaving routing to the client. When the probe fails the router answers
// every request with 503 Service Unavailable, so the API keeps working even
// if the frontend was never built.
//
// Path resolution is done by [Build.Resolve] and [Build.Asset], which are
// pure with respect to HTTP and never yield a file outside the build
// directory.
package frontend
