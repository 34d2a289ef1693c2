// Package http implements the HTTP transport layer of the research gateway.
//
// It exposes route wiring, request handlers, and middleware. The JSON API
// lives under /api, the pre-built frontend is mounted under a configurable
// prefix (by default /app) and Prometheus metrics are exposed on their own
// path. Request tracing, access logging and request metrics are handled here
// before requests are delegated to the service layer or the frontend router.
package http
