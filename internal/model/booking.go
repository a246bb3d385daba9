package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Status enumerates the processing states a booking can be in.  Every
// booking starts out as pending and may be moved freely between the
// three states by an authenticated admin; there is no terminal state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the three defined statuses.  No
// other value is ever persisted.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking is a single reservation request and its current processing
// state.  JSON field names follow the public wire format used by the
// booking form and the admin dashboard.
//
// Fields:
//  ID              – opaque unique identifier, assigned at creation.
//  Name/Phone/Email – guest-supplied contact details.
//  Guests          – party size, always positive.
//  Date            – reservation date as "YYYY-MM-DD".
//  Time            – venue-local time-of-day string, e.g. "19:00".
//  Occasion        – optional free text.
//  SpecialRequests – optional free text (allergies etc.).
//  Status          – pending / confirmed / cancelled.
//  CreatedAt       – set once at creation, immutable.
//  UpdatedAt       – nil until the first status transition, then
//                    stamped on every transition.
type Booking struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	Guests          int        `json:"guests"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	Occasion        string     `json:"occasion,omitempty"`
	SpecialRequests string     `json:"specialRequests,omitempty"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// BookingRequest carries the guest-supplied fields of a candidate
// booking as posted by the public form.  Identity, status and
// timestamps are assigned by the lifecycle service, never by the
// client.
type BookingRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Guests          int    `json:"guests"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Occasion        string `json:"occasion"`
	SpecialRequests string `json:"specialRequests"`
}

// ValidationError describes a user-correctable problem with a booking
// request.  Field names the offending input; Message is surfaced
// verbatim to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	// emailRe accepts the usual local@domain.tld shape and nothing
	// fancier; it intentionally mirrors the check performed by the
	// booking form itself.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// phoneRe accepts at least ten characters drawn from digits,
	// "+", "-", parentheses and spaces.
	phoneRe = regexp.MustCompile(`^[0-9\s\-\+\(\)]{10,}$`)
)

// Validate checks the request against the required-field list and the
// email/phone format rules.  The first failing field is reported; a nil
// return means the request may enter the lifecycle service.
func (r *BookingRequest) Validate() error {
	required := []struct {
		field string
		empty bool
	}{
		{"name", strings.TrimSpace(r.Name) == ""},
		{"phone", strings.TrimSpace(r.Phone) == ""},
		{"email", strings.TrimSpace(r.Email) == ""},
		{"guests", r.Guests <= 0},
		{"date", strings.TrimSpace(r.Date) == ""},
		{"time", strings.TrimSpace(r.Time) == ""},
	}
	for _, f := range required {
		if f.empty {
			return &ValidationError{Field: f.field, Message: fmt.Sprintf("%s is required", f.field)}
		}
	}
	if !emailRe.MatchString(r.Email) {
		return &ValidationError{Field: "email", Message: "Invalid email format"}
	}
	if !phoneRe.MatchString(strings.Join(strings.Fields(r.Phone), "")) {
		return &ValidationError{Field: "phone", Message: "Invalid phone number"}
	}
	return nil
}
