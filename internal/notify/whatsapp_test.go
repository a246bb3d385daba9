package notify

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appayon/table-reservation/internal/model"
)

func testComposer() Composer {
	return Composer{
		CountryCode:    "44",
		RestaurantName: "Appayon Indian Restaurant",
		BaseURL:        "https://wa.me",
	}
}

func TestComposePhoneNormalization(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "leading zero replaced by country code", phone: "07911123456", want: "447911123456"},
		{name: "spaces and separators stripped", phone: "(079) 11-123 456", want: "447911123456"},
		{name: "already international", phone: "+447911123456", want: "447911123456"},
		{name: "foreign number untouched", phone: "15551234567", want: "15551234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := testComposer().Compose(model.Booking{Phone: tt.phone, Name: "Alice"})
			assert.Equal(t, tt.want, n.Phone)
		})
	}
}

func TestComposeMessage(t *testing.T) {
	b := model.Booking{
		Name:            "Alice",
		Phone:           "07911123456",
		Guests:          2,
		Date:            "2025-01-10",
		Time:            "19:00",
		Occasion:        "Birthday",
		SpecialRequests: "Window table",
	}
	n := testComposer().Compose(b)

	assert.Contains(t, n.Message, "Hello Alice, this is Appayon Indian Restaurant.")
	assert.Contains(t, n.Message, "Date: 2025-01-10")
	assert.Contains(t, n.Message, "Time: 19:00")
	assert.Contains(t, n.Message, "Guests: 2")
	assert.Contains(t, n.Message, "Occasion: Birthday")
	assert.Contains(t, n.Message, "Special requests: Window table")
	assert.Contains(t, n.Message, "We look forward to welcoming you!")
}

func TestComposeSubstitutesNAForEmptyOptionals(t *testing.T) {
	n := testComposer().Compose(model.Booking{Name: "Alice", Phone: "07911123456", Guests: 2})
	assert.Contains(t, n.Message, "Occasion: N/A")
	assert.Contains(t, n.Message, "Special requests: N/A")
}

func TestComposeKeepsNonEmptyOptionalsVerbatim(t *testing.T) {
	// only the empty string gets the placeholder; whatever else the
	// guest typed, whitespace included, is rendered as-is
	n := testComposer().Compose(model.Booking{
		Name:            "Alice",
		Phone:           "07911123456",
		Guests:          2,
		Occasion:        " ",
		SpecialRequests: " ",
	})
	assert.NotContains(t, n.Message, "N/A")
	assert.Contains(t, n.Message, "Occasion:  \n")
}

func TestComposeDeepLink(t *testing.T) {
	n := testComposer().Compose(model.Booking{Name: "Alice", Phone: "07911123456", Guests: 2})

	require.True(t, strings.HasPrefix(n.URL, "https://wa.me/447911123456?text="), n.URL)

	// the text parameter round-trips to the exact message
	u, err := url.Parse(n.URL)
	require.NoError(t, err)
	assert.Equal(t, n.Message, u.Query().Get("text"))
}

func TestComposeTrailingSlashBase(t *testing.T) {
	c := testComposer()
	c.BaseURL = "https://wa.me/"
	n := c.Compose(model.Booking{Name: "Alice", Phone: "07911123456"})
	assert.True(t, strings.HasPrefix(n.URL, "https://wa.me/447911123456?text="), n.URL)
}
