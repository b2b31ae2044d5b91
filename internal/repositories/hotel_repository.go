package repositories

import (
	"context"
	"errors"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/db_models"
	"gorm.io/gorm"
)

type HotelRepository interface {
	Insert(ctx context.Context, hotel *db_models.Hotel) error
	FindById(ctx context.Context, id string) (*db_models.Hotel, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{
		db: db,
	}
}

func (h *hotelRepository) Insert(ctx context.Context, hotel *db_models.Hotel) error {
	return h.db.WithContext(ctx).Create(hotel).Error
}

func (h *hotelRepository) FindById(ctx context.Context, id string) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := h.db.WithContext(ctx).First(&hotel, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &hotel, nil
}

func (h *hotelRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := h.db.WithContext(ctx).
		Order("name asc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&hotels).Error

	if err != nil {
		return nil, err
	}

	return hotels, nil
}
