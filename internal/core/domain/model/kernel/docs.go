// Package kernel contains shared value objects used across the order domain:
// UUID for aggregate identity and OrderCode for the human-facing business key.
// Both are immutable, constructed only through factory functions, and validate
// themselves so invalid identifiers never cross a domain boundary.
package kernel
