// Command shortgen is the CLI client for the short-video generation backend.
//
// It creates projects, triggers generation stages, and follows progress by
// polling the backend's status endpoint. A local snapshot cache keeps listing
// usable when the backend is offline.
package main
