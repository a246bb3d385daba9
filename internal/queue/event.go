// Package queue defines the message payloads exchanged over the broker
// and the background consumer that records confirmed bookings.
package queue

// BookingConfirmedEvent is published when a booking is transitioned to
// confirmed.  It carries enough information for downstream consumers to
// log or notify without re-reading the booking store.
type BookingConfirmedEvent struct {
	BookingID   string `json:"booking_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Guests      int    `json:"guests"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Occasion    string `json:"occasion,omitempty"`
	ConfirmedAt string `json:"confirmed_at"`
}
