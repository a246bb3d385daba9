package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEvent(t *testing.T) {
	dir := t.TempDir()
	ev := BookingConfirmedEvent{
		BookingID:   "b1",
		Name:        "Alice",
		Phone:       "07911123456",
		Guests:      2,
		Date:        "2025-01-10",
		Time:        "19:00",
		ConfirmedAt: "2025-01-09T18:00:00Z",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, recordEvent(body, dir))
	require.NoError(t, recordEvent(body, dir))

	data, err := os.ReadFile(filepath.Join(dir, "booking.log"))
	require.NoError(t, err)
	lines := string(data)
	assert.Contains(t, lines, "booking_id=b1")
	assert.Contains(t, lines, `name="Alice"`)
	assert.Contains(t, lines, "guests=2")
	assert.Contains(t, lines, "[2025-01-09T18:00:00Z] Booking confirmed")
}

func TestRecordEventRejectsMalformedPayload(t *testing.T) {
	err := recordEvent([]byte("{not json"), t.TempDir())
	assert.Error(t, err)
}
