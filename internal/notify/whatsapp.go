// Package notify builds guest-facing confirmation messages and the
// WhatsApp deep links used to deliver them.  Delivery itself happens in
// the admin's browser; this package only composes the target address
// and the pre-filled message.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/appayon/table-reservation/internal/model"
)

// Composer turns a booking into an outbound confirmation message.
type Composer struct {
	// CountryCode replaces a single leading zero of the guest's
	// phone number, e.g. "44" turns 07911... into 447911....
	CountryCode string
	// RestaurantName is embedded into the message template.
	RestaurantName string
	// BaseURL is the messaging deep-link base, normally https://wa.me.
	BaseURL string
}

// Notification is the composed outbound message: the normalized channel
// address, the message text and the ready-to-open deep link.
type Notification struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Compose normalizes the booking's phone number, renders the fixed
// confirmation template and returns the deep-link target.  Empty
// optional fields are substituted with "N/A".
func (c Composer) Compose(b model.Booking) Notification {
	phone := c.normalizePhone(b.Phone)
	msg := fmt.Sprintf(`Hello %s, this is %s.
Your reservation is confirmed:
Date: %s
Time: %s
Guests: %d
Occasion: %s
Special requests: %s
We look forward to welcoming you!`,
		b.Name, c.RestaurantName, b.Date, b.Time, b.Guests,
		orNA(b.Occasion), orNA(b.SpecialRequests))

	return Notification{
		Phone:   phone,
		Message: msg,
		URL:     fmt.Sprintf("%s/%s?text=%s", strings.TrimRight(c.BaseURL, "/"), phone, url.QueryEscape(msg)),
	}
}

// normalizePhone strips every non-digit character and swaps a single
// leading zero for the configured country calling code.
func (c Composer) normalizePhone(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	phone := sb.String()
	if strings.HasPrefix(phone, "0") {
		phone = c.CountryCode + phone[1:]
	}
	return phone
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
