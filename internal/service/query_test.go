package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appayon/table-reservation/internal/model"
)

func fixtureBookings() []model.Booking {
	base := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	return []model.Booking{
		{ID: "b1", Name: "Alice Smith", Phone: "07911123456", Date: "2025-01-10", Status: model.StatusPending, CreatedAt: base},
		{ID: "b2", Name: "Bob Jones", Phone: "07700900123", Date: "2025-01-10", Status: model.StatusConfirmed, CreatedAt: base.Add(time.Hour)},
		{ID: "b3", Name: "Carol White", Phone: "+44 20 7946 0958", Date: "2025-01-11", Status: model.StatusPending, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "b4", Name: "Dave Brown", Phone: "07911999888", Date: "2025-01-12", Status: model.StatusCancelled, CreatedAt: base.Add(3 * time.Hour)},
	}
}

func ids(bookings []model.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

func TestFilterBookings(t *testing.T) {
	bookings := fixtureBookings()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "empty filter returns everything", filter: Filter{}, want: []string{"b1", "b2", "b3", "b4"}},
		{name: "status all behaves as absent", filter: Filter{Status: StatusAll}, want: []string{"b1", "b2", "b3", "b4"}},
		{name: "by status", filter: Filter{Status: "confirmed"}, want: []string{"b2"}},
		{name: "by status preserves order", filter: Filter{Status: "pending"}, want: []string{"b1", "b3"}},
		{name: "by date", filter: Filter{Date: "2025-01-10"}, want: []string{"b1", "b2"}},
		{name: "date and status compose as AND", filter: Filter{Date: "2025-01-10", Status: "pending"}, want: []string{"b1"}},
		{name: "search by name is case-insensitive", filter: Filter{Search: "alice"}, want: []string{"b1"}},
		{name: "search matches phone as typed", filter: Filter{Search: "07911"}, want: []string{"b1", "b4"}},
		{name: "search whitespace matches phone spacing", filter: Filter{Search: "7946 0958"}, want: []string{"b3"}},
		{name: "trailing space in search is significant", filter: Filter{Search: "07911 "}, want: []string{}},
		{name: "search with no match", filter: Filter{Search: "zebra"}, want: []string{}},
		{name: "no match yields empty not nil", filter: Filter{Status: "cancelled", Date: "2025-01-10"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBookings(bookings, tt.filter)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterBookingsDoesNotMutateInput(t *testing.T) {
	bookings := fixtureBookings()
	_ = FilterBookings(bookings, Filter{Status: "pending"})
	assert.Equal(t, []string{"b1", "b2", "b3", "b4"}, ids(bookings))
}

func TestSortByRecency(t *testing.T) {
	bookings := fixtureBookings()
	sorted := SortByRecency(bookings)

	assert.Equal(t, []string{"b4", "b3", "b2", "b1"}, ids(sorted))
	// input order untouched
	assert.Equal(t, []string{"b1", "b2", "b3", "b4"}, ids(bookings))
}

func TestSortByRecencyStableOnTies(t *testing.T) {
	ts := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		{ID: "b1", CreatedAt: ts},
		{ID: "b2", CreatedAt: ts},
		{ID: "b3", CreatedAt: ts},
	}
	assert.Equal(t, []string{"b1", "b2", "b3"}, ids(SortByRecency(bookings)))
}

func TestSummarize(t *testing.T) {
	today := "2025-01-10"
	bookings := []model.Booking{
		{Date: today, Status: model.StatusPending},
		{Date: "2025-01-11", Status: model.StatusPending},
		{Date: "2025-01-12", Status: model.StatusConfirmed},
		{Date: "2025-01-13", Status: model.StatusCancelled},
	}
	counts := Summarize(bookings, today)
	assert.Equal(t, Counts{
		TotalToday:     1,
		TotalPending:   2,
		TotalConfirmed: 1,
		TotalCancelled: 1,
	}, counts)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Counts{}, Summarize(nil, "2025-01-10"))
}
