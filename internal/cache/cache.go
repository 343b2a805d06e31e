// Package cache holds computed schedules between calculation and export.
package cache

// Cache stores serialized calculation results keyed by id for the duration of
// display and export. It is not a durable store.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
