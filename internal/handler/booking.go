package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/appayon/table-reservation/internal/metrics"
	"github.com/appayon/table-reservation/internal/model"
	"github.com/appayon/table-reservation/internal/notify"
	"github.com/appayon/table-reservation/internal/queue"
	"github.com/appayon/table-reservation/internal/repository"
	"github.com/appayon/table-reservation/internal/service"
)

// BookingHandler exposes the public intake endpoint and the admin
// listing/transition endpoints.  The admin endpoints assume JWT and
// role validation already happened in middleware.
type BookingHandler struct {
	Svc      *service.BookingService
	Composer notify.Composer
	AMQPURL  string // empty disables the confirmed-booking event stream
	Log      zerolog.Logger
}

// NewBookingHandler constructs a BookingHandler.  Svc must be non-nil.
func NewBookingHandler(svc *service.BookingService, composer notify.Composer, amqpURL string, log zerolog.Logger) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{
		Svc:      svc,
		Composer: composer,
		AMQPURL:  amqpURL,
		Log:      log.With().Str("component", "booking_handler").Logger(),
	}
}

// Create handles POST /api/bookings.  It validates the submitted
// request and returns the stored booking with status pending.
// Validation failures produce 400 with the failing message verbatim;
// storage failures produce a generic 500.
func (h *BookingHandler) Create(c echo.Context) error {
	var req model.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	b, err := h.Svc.Submit(c.Request().Context(), req)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			metrics.IncBookingRejected(verr.Field)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Message})
		}
		h.Log.Error().Err(err).Msg("create booking failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create booking"})
	}
	metrics.IncBookingCreated()
	return c.JSON(http.StatusCreated, b)
}

// List handles GET /api/bookings?date=&status=&q=.  Results are sorted
// by recency (newest first); status=all behaves as if absent and q is
// the substring search over name and phone.  If the store read fails
// the dashboard still renders: the handler logs and returns an empty
// array instead of hard-failing.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list bookings failed, serving empty result")
		bookings = nil
	}
	filtered := service.FilterBookings(bookings, service.Filter{
		Date:   c.QueryParam("date"),
		Status: c.QueryParam("status"),
		Search: c.QueryParam("q"),
	})
	return c.JSON(http.StatusOK, service.SortByRecency(filtered))
}

// UpdateStatus handles PATCH /api/bookings/:id with body {"status": ...}.
// Any of the three states may be set at any time.  A transition into
// confirmed additionally publishes a BookingConfirmedEvent, fire and
// forget.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Valid status is required"})
	}
	b, err := h.Svc.Transition(c.Request().Context(), id, model.Status(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Valid status is required"})
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		default:
			h.Log.Error().Err(err).Str("booking_id", id).Msg("update booking failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update booking"})
		}
	}
	metrics.IncStatusTransition(string(b.Status))
	if b.Status == model.StatusConfirmed && h.AMQPURL != "" {
		h.publishConfirmed(b)
	}
	return c.JSON(http.StatusOK, b)
}

// Summary handles GET /api/bookings/summary: the dashboard counts for
// the current day.
func (h *BookingHandler) Summary(c echo.Context) error {
	bookings, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("summary read failed, serving zero counts")
		bookings = nil
	}
	today := time.Now().UTC().Format("2006-01-02")
	return c.JSON(http.StatusOK, service.Summarize(bookings, today))
}

// WhatsApp handles GET /api/bookings/:id/whatsapp.  It returns the
// normalized phone, the confirmation message and the wa.me deep link
// for the admin to open in a new browsing context.
func (h *BookingHandler) WhatsApp(c echo.Context) error {
	b, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		}
		h.Log.Error().Err(err).Msg("whatsapp compose read failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch bookings"})
	}
	metrics.IncNotificationComposed()
	return c.JSON(http.StatusOK, h.Composer.Compose(b))
}

// publishConfirmed emits the event on a detached goroutine so broker
// hiccups never slow down or fail the PATCH response.
func (h *BookingHandler) publishConfirmed(b model.Booking) {
	ev := queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		Name:        b.Name,
		Phone:       b.Phone,
		Guests:      b.Guests,
		Date:        b.Date,
		Time:        b.Time,
		Occasion:    b.Occasion,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	amqpURL := h.AMQPURL
	log := h.Log
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue.PublishBookingConfirmed(ctx, amqpURL, ev, log)
	}()
}
