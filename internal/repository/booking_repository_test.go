package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appayon/table-reservation/internal/model"
)

func newTestRepo(t *testing.T) (*BookingRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "bookings.json")
	repo, err := NewBookingRepo(path, zerolog.Nop())
	require.NoError(t, err)
	return repo, path
}

func testBooking(id, name string) model.Booking {
	return model.Booking{
		ID:        id,
		Name:      name,
		Phone:     "07911123456",
		Email:     "a@x.com",
		Guests:    2,
		Date:      "2025-01-10",
		Time:      "19:00",
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestNewBookingRepoBootstrapsEmptyStore(t *testing.T) {
	repo, path := newTestRepo(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	bookings, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestNewBookingRepoBootstrapIsIdempotent(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, repo.Append(context.Background(), testBooking("b1", "Alice")))

	// Reopening an existing store must not wipe it.
	reopened, err := NewBookingRepo(path, zerolog.Nop())
	require.NoError(t, err)
	bookings, err := reopened.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0].ID)
}

func TestAppendPreservesStorageOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testBooking("b1", "Alice")))
	require.NoError(t, repo.Append(ctx, testBooking("b2", "Bob")))
	require.NoError(t, repo.Append(ctx, testBooking("b3", "Carol")))

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, []string{"b1", "b2", "b3"}, []string{bookings[0].ID, bookings[1].ID, bookings[2].ID})
}

func TestAppendWritesPrettyPrintedJSON(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, repo.Append(context.Background(), testBooking("b1", "Alice")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")

	var bookings []model.Booking
	require.NoError(t, json.Unmarshal(data, &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "Alice", bookings[0].Name)
}

func TestGetByID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, testBooking("b1", "Alice")))

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = repo.GetByID(ctx, "nonexistent-id")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateByID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, testBooking("b1", "Alice")))
	require.NoError(t, repo.Append(ctx, testBooking("b2", "Bob")))

	now := time.Now().UTC()
	updated, err := repo.UpdateByID(ctx, "b2", func(b model.Booking) model.Booking {
		b.Status = model.StatusConfirmed
		b.UpdatedAt = &now
		return b
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, updated.Status)
	require.NotNil(t, updated.UpdatedAt)

	// The mutation is durable and the sibling record is untouched.
	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, model.StatusPending, bookings[0].Status)
	assert.Equal(t, model.StatusConfirmed, bookings[1].Status)
}

func TestUpdateByIDUnknownID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, testBooking("b1", "Alice")))

	_, err := repo.UpdateByID(ctx, "nonexistent-id", func(b model.Booking) model.Booking {
		b.Status = model.StatusConfirmed
		return b
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// No existing record was altered.
	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, model.StatusPending, bookings[0].Status)
}

func TestListAllCorruptStore(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreIO)
}
