package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	cfg   *config.Config
	repo  domain.Repository
	audit *audit.Dispatcher

	unavailableDates  *ucBooking.ListUnavailableDates
	purgePastDates    *ucBooking.PurgePastDates
	purgePastBookings *ucBooking.PurgePastBookings
}

func NewAdminHandler(
	cfg *config.Config,
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	unavailableDates *ucBooking.ListUnavailableDates,
	purgePastDates *ucBooking.PurgePastDates,
	purgePastBookings *ucBooking.PurgePastBookings,
) *AdminHandler {
	return &AdminHandler{
		cfg:               cfg,
		repo:              repo,
		audit:             auditDispatcher,
		unavailableDates:  unavailableDates,
		purgePastDates:    purgePastDates,
		purgePastBookings: purgePastBookings,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetUnavailableDatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1"`
}

type RemoveUnavailableDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// ======================================================
// UNAVAILABLE DATES
// ======================================================

func (h *AdminHandler) SetUnavailableDates(c *gin.Context) {
	var req SetUnavailableDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dates are required.")
		return
	}

	dates := make([]time.Time, 0, len(req.Dates))
	for _, d := range req.Dates {
		parsed, err := parseDateInSalon(h.cfg.SalonTimezone, d)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
			return
		}
		dates = append(dates, parsed)
	}

	if err := h.repo.AddRegistryDates(c.Request.Context(), dates); err != nil {
		httperr.Internal(c, "set_unavailable_dates_failed", "Error setting unavailable dates.")
		return
	}

	h.dispatchAudit(c, "unavailable_dates_added", "unavailable_date", nil, req.Dates)

	httpresp.Message(c, "Dates set as unavailable")
}

func (h *AdminHandler) GetUnavailableDates(c *gin.Context) {
	dates, err := h.unavailableDates.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "unavailable_dates_failed", "Error fetching unavailable dates.")
		return
	}

	httpresp.OK(c, gin.H{"success": true, "dates": dates})
}

func (h *AdminHandler) RemoveUnavailableDate(c *gin.Context) {
	var req RemoveUnavailableDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date is required.")
		return
	}

	date, err := parseDateInSalon(h.cfg.SalonTimezone, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	if err := h.repo.RemoveRegistryDate(c.Request.Context(), date); err != nil {
		if httperr.IsBusiness(err, "date_not_found") {
			httperr.NotFound(c, "date_not_found", "Date not found in unavailable list.")
			return
		}
		httperr.Internal(c, "remove_unavailable_date_failed", "Error removing unavailable date.")
		return
	}

	h.dispatchAudit(c, "unavailable_date_removed", "unavailable_date", nil, req.Date)

	httpresp.Message(c, "Date removed from unavailable list")
}

func (h *AdminHandler) RemovePastUnavailableDates(c *gin.Context) {
	now := timezone.NowIn(h.cfg.SalonTimezone)

	removed, err := h.purgePastDates.Execute(c.Request.Context(), now)
	if err != nil {
		httperr.Internal(c, "purge_past_dates_failed", "Error removing past unavailable dates.")
		return
	}

	if len(removed) == 0 {
		httpresp.Message(c, "No past dates to remove.")
		return
	}

	h.dispatchAudit(c, "past_unavailable_dates_removed", "unavailable_date", nil, removed)

	httpresp.OK(c, gin.H{
		"success":       true,
		"message":       "Past unavailable dates removed successfully",
		"removed_dates": removed,
	})
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *AdminHandler) ListBookings(c *gin.Context) {
	date := c.Query("date")
	if date == "" || !isValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	bookings, err := h.repo.ListBookingsForDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "list_bookings_failed", "Error listing bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	if err := h.repo.DeleteBookingByID(c.Request.Context(), uint(id)); err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "delete_booking_failed", "Error deleting booking.")
		return
	}

	bookingID := uint(id)
	h.dispatchAudit(c, "booking_deleted", "booking", &bookingID, nil)

	httpresp.Message(c, "Booking deleted successfully")
}

func (h *AdminHandler) RemovePastBookings(c *gin.Context) {
	now := timezone.NowIn(h.cfg.SalonTimezone)

	removed, err := h.purgePastBookings.Execute(c.Request.Context(), now)
	if err != nil {
		httperr.Internal(c, "purge_past_bookings_failed", "Error removing past bookings.")
		return
	}

	if len(removed) == 0 {
		httpresp.Message(c, "No past bookings to remove.")
		return
	}

	h.dispatchAudit(c, "past_bookings_removed", "booking", nil, len(removed))

	httpresp.OK(c, gin.H{
		"success":          true,
		"message":          "Past bookings removed successfully.",
		"removed_bookings": removed,
	})
}

// ======================================================
// HELPERS
// ======================================================

func (h *AdminHandler) dispatchAudit(
	c *gin.Context,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) {
	var userID *uint
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			userID = &id
		}
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	})
}
