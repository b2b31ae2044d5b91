package repositories

import (
	"context"
	"errors"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/db_models"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Insert(ctx context.Context, member *db_models.BookingMember) error
	FindById(ctx context.Context, id string) (*db_models.BookingMember, error)
	FindByBookingAndEmail(ctx context.Context, bookingId, email string) (*db_models.BookingMember, error)
	ListByBooking(ctx context.Context, bookingId string) ([]db_models.BookingMember, error)
	CountJoined(ctx context.Context, bookingId string) (int64, error)
	UpdateStatus(ctx context.Context, id string, status db_models.MemberStatus) error
	Delete(ctx context.Context, id string) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{
		db: db,
	}
}

func (m *memberRepository) Insert(ctx context.Context, member *db_models.BookingMember) error {
	return m.db.WithContext(ctx).Create(member).Error
}

func (m *memberRepository) FindById(ctx context.Context, id string) (*db_models.BookingMember, error) {
	var member db_models.BookingMember
	err := m.db.WithContext(ctx).First(&member, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (m *memberRepository) FindByBookingAndEmail(ctx context.Context, bookingId, email string) (*db_models.BookingMember, error) {
	var member db_models.BookingMember
	err := m.db.WithContext(ctx).
		First(&member, "booking_id = ? AND email = ?", bookingId, email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (m *memberRepository) ListByBooking(ctx context.Context, bookingId string) ([]db_models.BookingMember, error) {
	var members []db_models.BookingMember
	err := m.db.WithContext(ctx).
		Where("booking_id = ?", bookingId).
		Order("created_at asc").
		Find(&members).Error

	if err != nil {
		return nil, err
	}

	return members, nil
}

func (m *memberRepository) CountJoined(ctx context.Context, bookingId string) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&db_models.BookingMember{}).
		Where("booking_id = ? AND status = ?", bookingId, db_models.MemberStatusJoined).
		Count(&count).Error

	return count, err
}

func (m *memberRepository) UpdateStatus(ctx context.Context, id string, status db_models.MemberStatus) error {
	return m.db.WithContext(ctx).
		Model(&db_models.BookingMember{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (m *memberRepository) Delete(ctx context.Context, id string) error {
	return m.db.WithContext(ctx).
		Delete(&db_models.BookingMember{}, "id = ?", id).Error
}
