// Package workflow models the generation pipeline as seen by the client.
//
// The backend owns every status transition; this package only interprets the
// status string it reports. It maps (variant, status) to a presentation phase,
// ranks statuses so a stale fetch can never regress the locally displayed
// state, and describes each variant's pipeline as an ordered stage graph so
// commands can discover the next available trigger without variant-specific
// branching.
package workflow
