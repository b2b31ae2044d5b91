package services

import (
	"context"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/db_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/request_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/response_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/repositories"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
)

type HotelServiceInterface interface {
	CreateHotel(ctx context.Context, request request_models.CreateHotelRequest) (*response_models.HotelResponse, error)
	GetHotelById(ctx context.Context, hotelId string) (*response_models.HotelResponse, error)
	ListHotels(ctx context.Context, page, pageSize int) ([]response_models.HotelResponse, error)
	ScoreForEvent(ctx context.Context, hotelId, eventType string) (*response_models.SuitabilityScore, error)
	CompareCategories(ctx context.Context, hotelId string) ([]response_models.CategoryMatch, error)
}

type HotelService struct {
	hotelRepo   repositories.HotelRepository
	suitability SuitabilityServiceInterface
}

func NewHotelService(hotelRepo repositories.HotelRepository, suitability SuitabilityServiceInterface) HotelServiceInterface {
	return &HotelService{
		hotelRepo:   hotelRepo,
		suitability: suitability,
	}
}

func (h *HotelService) CreateHotel(ctx context.Context, request request_models.CreateHotelRequest) (*response_models.HotelResponse, error) {
	hotel := &db_models.Hotel{
		Name:          request.Name,
		City:          request.City,
		StarRating:    request.StarRating,
		NightlyRate:   request.NightlyRate,
		RoomsTotal:    request.RoomsTotal,
		OccupancyRate: request.OccupancyRate,
		Amenities:     request.Amenities,
	}

	if err := h.hotelRepo.Insert(ctx, hotel); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return hotelResponse(hotel), nil
}

func (h *HotelService) GetHotelById(ctx context.Context, hotelId string) (*response_models.HotelResponse, error) {
	hotel, err := h.hotelRepo.FindById(ctx, hotelId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hotel == nil {
		return nil, utils.ErrHotelNotFound
	}

	return hotelResponse(hotel), nil
}

func (h *HotelService) ListHotels(ctx context.Context, page, pageSize int) ([]response_models.HotelResponse, error) {
	hotels, err := h.hotelRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.HotelResponse, 0, len(hotels))
	for i := range hotels {
		out = append(out, *hotelResponse(&hotels[i]))
	}
	return out, nil
}

// ScoreForEvent rates a stored hotel for one event category. The score is
// computed fresh on every call and never persisted.
func (h *HotelService) ScoreForEvent(ctx context.Context, hotelId, eventType string) (*response_models.SuitabilityScore, error) {
	hotel, err := h.hotelRepo.FindById(ctx, hotelId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hotel == nil {
		return nil, utils.ErrHotelNotFound
	}

	score := h.suitability.Score(request_models.SuitabilityRequest{
		EventType:  eventType,
		Amenities:  hotel.Amenities,
		StarRating: hotel.StarRating,
		Price:      hotel.NightlyRate,
	})

	return score, nil
}

func (h *HotelService) CompareCategories(ctx context.Context, hotelId string) ([]response_models.CategoryMatch, error) {
	hotel, err := h.hotelRepo.FindById(ctx, hotelId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hotel == nil {
		return nil, utils.ErrHotelNotFound
	}

	return h.suitability.CompareAcrossCategories(hotel.Amenities, hotel.StarRating, hotel.NightlyRate), nil
}

func hotelResponse(hotel *db_models.Hotel) *response_models.HotelResponse {
	return &response_models.HotelResponse{
		ID:            hotel.ID.String(),
		Name:          hotel.Name,
		City:          hotel.City,
		StarRating:    hotel.StarRating,
		NightlyRate:   hotel.NightlyRate,
		RoomsTotal:    hotel.RoomsTotal,
		OccupancyRate: hotel.OccupancyRate,
		Amenities:     hotel.Amenities,
	}
}
