package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/service"
	"github.com/fortistravel/fortis-tourism-backend/internal/util"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func RegisterBookings(e *echo.Echo, auth *service.AuthService, bookings *service.BookingService) {
	handler := &BookingHandler{bookings: bookings}

	group := e.Group("/api/v1/bookings", RequireAuth(auth))
	group.GET("", handler.list)
	group.POST("", handler.create)
	group.GET("/:id", handler.get)
	group.POST("/:id/cancel", handler.cancel)

	admin := e.Group("/api/v1/admin/bookings", RequireAuth(auth), RequireAdmin())
	admin.PUT("/:id/status", handler.updateStatus)
	admin.PUT("/:id/payment", handler.recordPayment)
}

type bookingCreateRequest struct {
	DestinationID   string  `json:"destinationId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Travelers       int     `json:"travelers"`
	SpecialRequests *string `json:"specialRequests"`
	ContactEmail    string  `json:"contactEmail"`
	ContactPhone    string  `json:"contactPhone"`
}

func (h *BookingHandler) list(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	bookings, err := h.bookings.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load bookings"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"bookings": bookings})
}

func (h *BookingHandler) create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req bookingCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	destinationID, err := uuid.Parse(strings.TrimSpace(req.DestinationID))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("destinationId must be a valid UUID"))
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("startDate must be YYYY-MM-DD"))
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("endDate must be YYYY-MM-DD"))
	}

	booking, err := h.bookings.Create(c.Request().Context(), user.ID, service.BookingCreateInput{
		DestinationID:   destinationID,
		StartDate:       startDate,
		EndDate:         endDate,
		Travelers:       req.Travelers,
		SpecialRequests: req.SpecialRequests,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDestinationNotFound):
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to create booking"))
		}
	}
	return c.JSON(http.StatusCreated, util.Envelope{"booking": booking})
}

func (h *BookingHandler) get(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	booking, err := h.bookings.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return h.bookingError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"booking": booking})
}

func (h *BookingHandler) cancel(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	booking, err := h.bookings.Cancel(c.Request().Context(), user.ID, id)
	if err != nil {
		return h.bookingError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"booking": booking})
}

func (h *BookingHandler) updateStatus(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		return h.bookingError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"booking": booking})
}

func (h *BookingHandler) recordPayment(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	var req struct {
		PaymentStatus   string  `json:"paymentStatus"`
		PaymentIntentID *string `json:"paymentIntentId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	booking, err := h.bookings.RecordPayment(c.Request().Context(), id, domain.PaymentStatus(req.PaymentStatus), req.PaymentIntentID)
	if err != nil {
		return h.bookingError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"booking": booking})
}

func (h *BookingHandler) bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, util.Error("booking not found"))
	case errors.Is(err, service.ErrBookingForbidden):
		return c.JSON(http.StatusForbidden, util.Error("booking belongs to another user"))
	case errors.Is(err, service.ErrBadTransition):
		return c.JSON(http.StatusConflict, util.Error(err.Error()))
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error("booking operation failed"))
	}
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
