package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	cfg *config.Config

	getAvailability  *ucBooking.GetAvailability
	createBooking    *ucBooking.CreateBooking
	unavailableDates *ucBooking.ListUnavailableDates
	notifier         notify.Notifier
}

func NewBookingHandler(
	cfg *config.Config,
	getAvailability *ucBooking.GetAvailability,
	createBooking *ucBooking.CreateBooking,
	unavailableDates *ucBooking.ListUnavailableDates,
	notifier notify.Notifier,
) *BookingHandler {
	return &BookingHandler{
		cfg:              cfg,
		getAvailability:  getAvailability,
		createBooking:    createBooking,
		unavailableDates: unavailableDates,
		notifier:         notifier,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // ex: "10:00 AM"
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	SelectedStyle string `json:"selected_style" binding:"required"`
	BookingNote   string `json:"booking_note"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	if !isValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	now := timezone.NowIn(h.cfg.SalonTimezone)

	availability, err := h.getAvailability.Execute(c.Request.Context(), date, now)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Error checking availability.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":              date,
		"booked_times":      availability.BookedTimes,
		"unavailable_slots": availability.UnavailableSlots,
	})
}

func (h *BookingHandler) UnavailableDates(c *gin.Context) {
	dates, err := h.unavailableDates.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "unavailable_dates_failed", "Error fetching unavailable dates.")
		return
	}

	httpresp.OK(c, gin.H{"success": true, "dates": dates})
}

////////////////////////////////////////////////////////
// CREATE BOOKING (REQUESTED → PENDING_PAYMENT)
////////////////////////////////////////////////////////

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date and time are required.")
		return
	}

	email := validators.NormalizeEmail(req.CustomerEmail)
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	now := timezone.NowIn(h.cfg.SalonTimezone)

	session, err := h.createBooking.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			Date:          req.Date,
			Time:          req.Time,
			CustomerName:  req.CustomerName,
			CustomerEmail: email,
			CustomerPhone: req.CustomerPhone,
			SelectedStyle: req.SelectedStyle,
			BookingNote:   req.BookingNote,
		},
		now,
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"payment_session_id": session.SessionID,
		"checkout_url":       session.CheckoutURL,
	})
}

////////////////////////////////////////////////////////
// CONTACT
////////////////////////////////////////////////////////

func (h *BookingHandler) SendMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "All fields are required.")
		return
	}

	err := h.notifier.SendContactMessage(c.Request.Context(), notify.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		httperr.Internal(c, "message_failed", "There was an error sending your message.")
		return
	}

	httpresp.Message(c, "Message sent successfully")
}

////////////////////////////////////////////////////////
// ERROR MAPPING
////////////////////////////////////////////////////////

func mapBookingErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "booking_failed", "Error creating booking.")
		return
	}

	switch code {
	case "missing_fields":
		httperr.BadRequest(c, code, "Date and time are required.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Date must be YYYY-MM-DD.")
	case "invalid_time_slot":
		httperr.BadRequest(c, code, "Time must be one of the bookable slots.")
	case "date_unavailable":
		httperr.Conflict(c, code, "Selected date is unavailable for booking.")
	case "slot_already_booked":
		httperr.Conflict(c, code, "This slot is already booked.")
	case "payment_session_failed":
		httperr.Internal(c, code, "Error creating payment session.")
	default:
		httperr.BadRequest(c, code, "Error creating booking.")
	}
}
