package repositories

import (
	"context"
	"errors"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/db_models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	FindById(ctx context.Context, id string) (*db_models.Booking, error)
	ListByOrganizer(ctx context.Context, organizerId string, page, pageSize int) ([]db_models.Booking, error)
	UpdateBreakdown(ctx context.Context, bookingId string, breakdown datatypes.JSON) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

func (b *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return b.db.WithContext(ctx).Create(booking).Error
}

func (b *bookingRepository) FindById(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := b.db.WithContext(ctx).
		Preload("Hotel").
		Preload("Members").
		First(&booking, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

func (b *bookingRepository) ListByOrganizer(ctx context.Context, organizerId string, page, pageSize int) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := b.db.WithContext(ctx).
		Preload("Hotel").
		Where("organizer_id = ?", organizerId).
		Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (b *bookingRepository) UpdateBreakdown(ctx context.Context, bookingId string, breakdown datatypes.JSON) error {
	return b.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", bookingId).
		Update("breakdown", breakdown).Error
}
