package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/db_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/request_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/response_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/repositories"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
	"github.com/google/uuid"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, organizerId string, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	GetBookingById(ctx context.Context, bookingId string) (*response_models.BookingResponse, error)
	ListBookingsByOrganizer(ctx context.Context, organizerId string, page, pageSize int) ([]response_models.BookingResponse, error)
	RepriceBooking(ctx context.Context, bookingId string) (*response_models.PricingBreakdown, error)
	SplitForBooking(ctx context.Context, bookingId string, customShares []response_models.MemberShare) (*response_models.MemberSplit, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	hotelRepo   repositories.HotelRepository
	memberRepo  repositories.MemberRepository
	pricing     PricingServiceInterface
	allocator   MemberAllocatorInterface
	suitability SuitabilityServiceInterface
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	hotelRepo repositories.HotelRepository,
	memberRepo repositories.MemberRepository,
	pricing PricingServiceInterface,
	allocator MemberAllocatorInterface,
	suitability SuitabilityServiceInterface,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		memberRepo:  memberRepo,
		pricing:     pricing,
		allocator:   allocator,
		suitability: suitability,
	}
}

func (b *BookingService) CreateBooking(ctx context.Context, organizerId string, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	checkIn, err := time.Parse(time.RFC3339, request.CheckIn)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	checkOut, err := time.Parse(time.RFC3339, request.CheckOut)
	if err != nil || !checkOut.After(checkIn) {
		return nil, utils.ErrInvalidInput
	}

	organizerUUID, err := uuid.Parse(organizerId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	hotel, err := b.hotelRepo.FindById(ctx, request.HotelID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hotel == nil {
		return nil, utils.ErrHotelNotFound
	}

	bookedAt := time.Now()
	breakdown, err := b.pricing.ComputeBreakdown(request_models.PricingRequest{
		BasePrice:        hotel.NightlyRate,
		RoomCount:        request.RoomCount,
		Nights:           utils.NightsBetween(checkIn, checkOut),
		MemberCount:      1, // the organizer joins immediately
		DaysUntilCheckIn: utils.DaysUntilCheckIn(bookedAt, checkIn),
	})
	if err != nil {
		return nil, err
	}

	breakdownDoc, err := json.Marshal(breakdown)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	booking := &db_models.Booking{
		HotelID:     hotel.ID,
		OrganizerID: organizerUUID,
		EventType:   request.EventType,
		RoomCount:   request.RoomCount,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		BookedAt:    bookedAt,
		Status:      db_models.BookingStatusConfirmed,
		Breakdown:   breakdownDoc,
	}
	if err := b.bookingRepo.Insert(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	organizer := &db_models.BookingMember{
		BookingID: booking.ID,
		AccountID: organizerUUID,
		Status:    db_models.MemberStatusJoined,
	}
	if err := b.memberRepo.Insert(ctx, organizer); err != nil {
		return nil, utils.ErrDatabaseError
	}

	suitability := b.suitability.Score(request_models.SuitabilityRequest{
		EventType:  request.EventType,
		Amenities:  hotel.Amenities,
		StarRating: hotel.StarRating,
		Price:      hotel.NightlyRate,
	})

	// Outbound broadcast belongs to the notification layer; the booking
	// workflow only records the intent.
	log.Printf("booking %s created, notify organizer %s (total %.0f)", booking.ID, organizerId, breakdown.TotalForAllRooms)

	response := bookingResponse(booking, hotel.Name, 1, breakdown)
	response.Suitability = suitability
	return response, nil
}

func (b *BookingService) GetBookingById(ctx context.Context, bookingId string) (*response_models.BookingResponse, error) {
	booking, err := b.bookingRepo.FindById(ctx, bookingId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	var breakdown response_models.PricingBreakdown
	if err := json.Unmarshal(booking.Breakdown, &breakdown); err != nil {
		return nil, utils.ErrDatabaseError
	}

	joined := 0
	for _, member := range booking.Members {
		if member.Status == db_models.MemberStatusJoined {
			joined++
		}
	}

	return bookingResponse(booking, booking.Hotel.Name, joined, &breakdown), nil
}

func (b *BookingService) ListBookingsByOrganizer(ctx context.Context, organizerId string, page, pageSize int) ([]response_models.BookingResponse, error) {
	bookings, err := b.bookingRepo.ListByOrganizer(ctx, organizerId, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		booking := &bookings[i]

		var breakdown response_models.PricingBreakdown
		if err := json.Unmarshal(booking.Breakdown, &breakdown); err != nil {
			return nil, utils.ErrDatabaseError
		}

		out = append(out, *bookingResponse(booking, booking.Hotel.Name, 0, &breakdown))
	}
	return out, nil
}

// RepriceBooking recomputes the stored breakdown from the booking's own
// fields and the live joined-member count. Member changes call this so the
// stored document never drifts from its inputs.
func (b *BookingService) RepriceBooking(ctx context.Context, bookingId string) (*response_models.PricingBreakdown, error) {
	booking, err := b.bookingRepo.FindById(ctx, bookingId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	memberCount, err := b.memberRepo.CountJoined(ctx, bookingId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	breakdown, err := b.pricing.ComputeBreakdown(request_models.PricingRequest{
		BasePrice:        booking.Hotel.NightlyRate,
		RoomCount:        booking.RoomCount,
		Nights:           utils.NightsBetween(booking.CheckIn, booking.CheckOut),
		MemberCount:      int(memberCount),
		DaysUntilCheckIn: utils.DaysUntilCheckIn(booking.BookedAt, booking.CheckIn),
	})
	if err != nil {
		return nil, err
	}

	breakdownDoc, err := json.Marshal(breakdown)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := b.bookingRepo.UpdateBreakdown(ctx, bookingId, breakdownDoc); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("booking %s repriced for %d members, notify group (per member %.0f)", bookingId, memberCount, breakdown.PricePerMember)

	return breakdown, nil
}

// SplitForBooking allocates the booking's current total across its joined
// members. With customShares nil it splits equally; otherwise the custom
// shares are validated and may fall back to an equal split with a warning.
func (b *BookingService) SplitForBooking(ctx context.Context, bookingId string, customShares []response_models.MemberShare) (*response_models.MemberSplit, error) {
	booking, err := b.bookingRepo.FindById(ctx, bookingId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	var breakdown response_models.PricingBreakdown
	if err := json.Unmarshal(booking.Breakdown, &breakdown); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if customShares != nil {
		return b.allocator.SplitCustom(breakdown.TotalForAllRooms, customShares)
	}

	memberCount, err := b.memberRepo.CountJoined(ctx, bookingId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return b.allocator.SplitEqually(breakdown.TotalForAllRooms, int(memberCount))
}

func bookingResponse(booking *db_models.Booking, hotelName string, memberCount int, breakdown *response_models.PricingBreakdown) *response_models.BookingResponse {
	return &response_models.BookingResponse{
		ID:          booking.ID.String(),
		HotelID:     booking.HotelID.String(),
		HotelName:   hotelName,
		EventType:   booking.EventType,
		RoomCount:   booking.RoomCount,
		CheckIn:     utils.FormatRFC3339(booking.CheckIn),
		CheckOut:    utils.FormatRFC3339(booking.CheckOut),
		Status:      string(booking.Status),
		MemberCount: memberCount,
		Breakdown:   *breakdown,
	}
}
