package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/appayon/table-reservation/internal/model"
)

// BookingRepo provides list/append/update access to the persisted
// booking collection.  The collection lives in a single pretty-printed
// JSON array on disk; every mutating operation rewrites the whole file.
//
// All access is serialized behind a mutex so that concurrent appends
// and status updates within this process cannot lose each other's
// writes.  Durable writes go through a temp file followed by an
// atomic rename, so each individual write either fully succeeds or
// fully fails.  Across processes the guarantee remains last-writer-wins.
type BookingRepo struct {
	mu   sync.Mutex
	path string
	log  zerolog.Logger
}

// NewBookingRepo opens (or bootstraps) the store at path.  If the file
// does not exist yet, the parent directory is created and an empty
// collection is written.  The bootstrap is idempotent.
func NewBookingRepo(path string, log zerolog.Logger) (*BookingRepo, error) {
	r := &BookingRepo{path: path, log: log.With().Str("component", "booking_repo").Logger()}
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrStoreIO, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreIO, err)
		}
		if err := r.write([]model.Booking{}); err != nil {
			return nil, err
		}
		r.log.Info().Str("path", path).Msg("initialized empty booking store")
	}
	return r, nil
}

// ListAll returns every booking in storage (append) order.  An empty
// store yields an empty slice, never an error.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

// GetByID returns the booking with the given id, or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings, err := r.read()
	if err != nil {
		return model.Booking{}, err
	}
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}

// Append durably adds one booking to the collection.  On failure the
// new record is not observable by a subsequent ListAll.
func (r *BookingRepo) Append(ctx context.Context, b model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings, err := r.read()
	if err != nil {
		return err
	}
	return r.write(append(bookings, b))
}

// UpdateByID loads the collection, applies mutate to the record with
// the matching id and persists the full collection back.  It returns
// the mutated record, ErrBookingNotFound for an unknown id, or a
// wrapped ErrStoreIO if the rewrite fails (leaving the previous
// on-disk state intact).
func (r *BookingRepo) UpdateByID(ctx context.Context, id string, mutate func(model.Booking) model.Booking) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings, err := r.read()
	if err != nil {
		return model.Booking{}, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i] = mutate(bookings[i])
			if err := r.write(bookings); err != nil {
				return model.Booking{}, err
			}
			return bookings[i], nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}

// read loads and decodes the whole collection.  Callers must hold mu.
func (r *BookingRepo) read() ([]model.Booking, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreIO, err)
	}
	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreIO, err)
	}
	return bookings, nil
}

// write replaces the collection on disk.  The payload is written to a
// temp file in the same directory and renamed over the target so a
// crash mid-write cannot leave a truncated store behind.  Callers must
// hold mu.
func (r *BookingRepo) write(bookings []model.Booking) error {
	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreIO, err)
	}
	tmp := fmt.Sprintf("%s.%d.tmp", r.path, time.Now().UnixNano())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreIO, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrStoreIO, err)
	}
	return nil
}
