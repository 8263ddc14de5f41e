// Package storage holds persistence errors shared by every store
// implementation. The store interfaces themselves live with their consumers
// (the article service and the auth manager), which keeps this package a
// leaf both sides can import.
package storage

import "errors"

// ErrNotFound reports a lookup that matched no record.
var ErrNotFound = errors.New("record not found")
