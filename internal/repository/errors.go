// Package repository implements the record store for bookings: a single
// flat JSON file holding the full collection.  The sentinel errors
// defined here let handlers distinguish a missing booking (HTTP 404)
// from a storage failure (HTTP 500) without inspecting error strings.
package repository

import "errors"

// ErrBookingNotFound is returned when no record with the requested id
// exists in the store.
var ErrBookingNotFound = errors.New("booking not found")

// ErrStoreIO is wrapped around any durable read/write failure.  Callers
// should treat it as a generic server failure; the store guarantees the
// prior on-disk state is intact when a write fails.
var ErrStoreIO = errors.New("booking store i/o failure")
