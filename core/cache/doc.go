// Package cache wraps the Redis client used as a shared read surface.
//
// The registry keeps its state in the database; Redis only mirrors derived
// values (the latest scan result) so that other processes can read them
// without touching the database. Redis is optional: when disabled, NewClient
// returns nil and callers fall back to in-process state.
package cache
