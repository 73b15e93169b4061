// Package utils provides common utility functions for the game-catalog
// application. It includes tolerant type conversions used when reading
// untyped wire records decoded from the remote feed, plus other shared
// logic that doesn't fit into domain-specific packages.
package utils
