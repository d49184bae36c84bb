// Package api is the typed HTTP client for the video-generation backend.
//
// It translates operations into REST calls and nothing more: no retries, no
// backoff, no local caching. Every call takes a context, fails by returning
// the wrapped transport or status error, and tags mutating requests with a
// client-generated X-Request-ID so backend logs can be correlated with CLI
// invocations.
package api
