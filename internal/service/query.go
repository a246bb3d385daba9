package service

import (
	"sort"
	"strings"

	"github.com/appayon/table-reservation/internal/model"
)

// StatusAll is the sentinel status filter value that behaves as if no
// status filter were supplied.
const StatusAll = "all"

// Filter describes the optional predicates applied by FilterBookings.
// Zero values mean "not filtered".  Filters compose as logical AND.
type Filter struct {
	Date   string // exact match on booking date
	Status string // exact match on status; "" and "all" match everything
	Search string // substring match on name (case-insensitive) or phone
}

// FilterBookings returns the bookings matching f, preserving relative
// order.  With an empty filter every record is returned (as a copy); no
// implicit sort is applied here.
func FilterBookings(bookings []model.Booking, f Filter) []model.Booking {
	// The search text is matched as typed, whitespace included, the
	// same way the dashboard matches it.
	search := strings.ToLower(f.Search)
	out := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if f.Date != "" && b.Date != f.Date {
			continue
		}
		if f.Status != "" && f.Status != StatusAll && string(b.Status) != f.Status {
			continue
		}
		if f.Search != "" &&
			!strings.Contains(strings.ToLower(b.Name), search) &&
			!strings.Contains(b.Phone, f.Search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SortByRecency returns a copy of bookings ordered by createdAt
// descending, most recent first.  Ties keep their original relative
// order.  This is the ordering applied at the listing boundary.
func SortByRecency(bookings []model.Booking) []model.Booking {
	out := make([]model.Booking, len(bookings))
	copy(out, bookings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Counts is the dashboard summary over a booking collection.
type Counts struct {
	TotalToday     int `json:"totalToday"`
	TotalPending   int `json:"totalPending"`
	TotalConfirmed int `json:"totalConfirmed"`
	TotalCancelled int `json:"totalCancelled"`
}

// Summarize computes the dashboard counts over bookings.  today is the
// calendar date compared against each booking's date, formatted
// "YYYY-MM-DD".  Pure function of its inputs.
func Summarize(bookings []model.Booking, today string) Counts {
	var c Counts
	for _, b := range bookings {
		if b.Date == today {
			c.TotalToday++
		}
		switch b.Status {
		case model.StatusPending:
			c.TotalPending++
		case model.StatusConfirmed:
			c.TotalConfirmed++
		case model.StatusCancelled:
			c.TotalCancelled++
		}
	}
	return c
}
