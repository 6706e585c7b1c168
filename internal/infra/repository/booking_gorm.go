package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) CountBookingsForDate(
	ctx context.Context,
	date string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("date = ?", date).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingGormRepository) GetBookingBySessionID(
	ctx context.Context,
	sessionID string,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("payment_session_id = ?", sessionID).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// CreateConfirmedBooking grava a reserva confirmada. A unicidade do
// banco é o mecanismo de segurança sob concorrência: violação em
// (date, time) vira conflito de slot, em payment_session_id vira
// reentrega do mesmo evento.
func (r *BookingGormRepository) CreateConfirmedBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Create(b).Error
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		// Só a sessão repetida é reentrega; booking_id repetido com
		// sessão nova é o mesmo cliente pagando o mesmo slot duas
		// vezes, ou seja, conflito de slot.
		if pgErr.ConstraintName == "idx_bookings_payment_session_id" {
			return httperr.ErrBusiness("duplicate_session")
		}
		return httperr.ErrBusiness("slot_already_booked")
	}

	return err
}

func (r *BookingGormRepository) DeleteBookingByID(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("booking_not_found")
	}

	return nil
}

func (r *BookingGormRepository) ListBookingsBefore(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	// Datas YYYY-MM-DD ordenam lexicograficamente.
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date < ?", date).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) DeleteBookingsByIDs(
	ctx context.Context,
	ids []uint,
) error {

	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Delete(&models.Booking{}, ids).Error
}

// --------------------------------------------------
// Unavailable-date registry
// --------------------------------------------------

func (r *BookingGormRepository) AddRegistryDates(
	ctx context.Context,
	dates []time.Time,
) error {

	if len(dates) == 0 {
		return nil
	}

	rows := make([]models.UnavailableDate, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, models.UnavailableDate{Date: d})
	}

	// União de conjunto: re-adicionar data existente é no-op.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *BookingGormRepository) RemoveRegistryDate(
	ctx context.Context,
	date time.Time,
) error {

	res := r.db.WithContext(ctx).
		Where("date = ?", date).
		Delete(&models.UnavailableDate{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("date_not_found")
	}

	return nil
}

func (r *BookingGormRepository) ListRegistryDates(
	ctx context.Context,
) ([]time.Time, error) {

	var rows []models.UnavailableDate
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.Date)
	}

	return dates, nil
}

func (r *BookingGormRepository) RemoveRegistryDates(
	ctx context.Context,
	dates []time.Time,
) error {

	if len(dates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("date IN ?", dates).
		Delete(&models.UnavailableDate{}).Error
}

func (r *BookingGormRepository) ListFullyBookedDates(
	ctx context.Context,
	maxPerDay int,
) ([]string, error) {

	var dates []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("date").
		Group("date").
		Having("COUNT(*) >= ?", maxPerDay).
		Order("date ASC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	return dates, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
