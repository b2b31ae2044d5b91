package services

import (
	"log"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/request_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/response_models"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
)

const (
	taxRate        = 0.12
	serviceFeeRate = 0.05

	groupDiscountRate       = 0.10
	groupDiscountMinMembers = 5

	earlyBirdDiscountRate = 0.07
	earlyBirdMinDays      = 30
)

type PricingServiceInterface interface {
	ComputeBreakdown(request request_models.PricingRequest) (*response_models.PricingBreakdown, error)
	SurgePrice(basePrice float64, daysUntilCheckIn int) (*response_models.AdjustedPrice, error)
	OccupancyPrice(basePrice float64, occupancyRate float64) (*response_models.AdjustedPrice, error)
}

// PricingService is stateless; every call is a pure function of its request
// apart from the GeneratedAt stamp.
type PricingService struct{}

func NewPricingService() PricingServiceInterface {
	return &PricingService{}
}

func (p *PricingService) ComputeBreakdown(request request_models.PricingRequest) (*response_models.PricingBreakdown, error) {
	if request.BasePrice < 0 || request.RoomCount < 1 || request.Nights < 1 || request.MemberCount < 0 {
		return nil, utils.ErrInvalidInput
	}

	baseTotal := request.BasePrice * float64(request.RoomCount) * float64(request.Nights)
	tax := utils.RoundHalfUp(baseTotal * taxRate)
	serviceFee := utils.RoundHalfUp(baseTotal * serviceFeeRate)
	subtotal := baseTotal + tax + serviceFee

	var groupDiscount float64
	if request.MemberCount >= groupDiscountMinMembers {
		groupDiscount = utils.RoundHalfUp(subtotal * groupDiscountRate)
	}

	var earlyBirdDiscount float64
	if request.DaysUntilCheckIn >= earlyBirdMinDays {
		earlyBirdDiscount = utils.RoundHalfUp(subtotal * earlyBirdDiscountRate)
	}

	totalDiscount := groupDiscount + earlyBirdDiscount

	total := subtotal - totalDiscount
	clamped := false
	if total < 0 {
		// Discounts exceeding the subtotal are an anomaly, not a payout.
		log.Printf("pricing: discounts %.2f exceed subtotal %.2f, clamping total to zero", totalDiscount, subtotal)
		total = 0
		clamped = true
	}

	var pricePerMember float64
	if request.MemberCount > 0 {
		pricePerMember = utils.RoundHalfUp(total / float64(request.MemberCount))
	}

	return &response_models.PricingBreakdown{
		BaseTotal:         baseTotal,
		Tax:               tax,
		ServiceFee:        serviceFee,
		GroupDiscount:     groupDiscount,
		EarlyBirdDiscount: earlyBirdDiscount,
		TotalDiscount:     totalDiscount,
		TotalPerRoom:      request.BasePrice * float64(request.Nights),
		TotalForAllRooms:  total,
		PricePerMember:    pricePerMember,
		DiscountClamped:   clamped,
		GeneratedAt:       utils.NowUnixSeconds(),
	}, nil
}

// SurgePrice applies a short-notice multiplier. Tiers are checked closest
// first and exactly one applies.
func (p *PricingService) SurgePrice(basePrice float64, daysUntilCheckIn int) (*response_models.AdjustedPrice, error) {
	if basePrice < 0 {
		return nil, utils.ErrInvalidInput
	}

	multiplier := 1.00
	switch {
	case daysUntilCheckIn <= 7:
		multiplier = 1.20
	case daysUntilCheckIn <= 14:
		multiplier = 1.10
	}

	return &response_models.AdjustedPrice{
		BasePrice:     basePrice,
		Multiplier:    multiplier,
		AdjustedPrice: utils.RoundHalfUp(basePrice * multiplier),
	}, nil
}

// OccupancyPrice applies a scarcity multiplier from the current occupancy
// rate. Tiers are checked fullest first and exactly one applies.
func (p *PricingService) OccupancyPrice(basePrice float64, occupancyRate float64) (*response_models.AdjustedPrice, error) {
	if basePrice < 0 {
		return nil, utils.ErrInvalidInput
	}
	if !utils.ValidOccupancyRate(occupancyRate) {
		return nil, utils.ErrInvalidOccupancy
	}

	multiplier := 1.00
	switch {
	case occupancyRate >= 0.90:
		multiplier = 1.25
	case occupancyRate >= 0.75:
		multiplier = 1.15
	case occupancyRate >= 0.50:
		multiplier = 1.05
	}

	return &response_models.AdjustedPrice{
		BasePrice:     basePrice,
		Multiplier:    multiplier,
		AdjustedPrice: utils.RoundHalfUp(basePrice * multiplier),
	}, nil
}
