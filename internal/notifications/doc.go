// Package notifications delivers project milestones via ntfy.
//
// The default implementation publishes to the topic configured in
// config.toml and gracefully degrades to a no-op when notifications are
// disabled, so watch commands can always call it unconditionally.
//
// Extend this package if you need alternative transports; callers depend
// only on the simple Service interface.
package notifications
