package controllers

import (
	"net/http"
	"strconv"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/request_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/services"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
	"github.com/gin-gonic/gin"
)

type PricingController struct {
	pricingService services.PricingServiceInterface
}

func NewPricingController(pricingService services.PricingServiceInterface) *PricingController {
	return &PricingController{
		pricingService: pricingService,
	}
}

// Quote godoc
// @Summary Compute a full price breakdown
// @Description Returns base total, tax, service fee, group and early-bird discounts and the per-member price for the given stay parameters.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body request_models.QuoteRequest true "Stay parameters"
// @Success 200 {object} response_models.PricingBreakdown
// @Failure 400 {object} utils.APIResponse
// @Router /pricing/quote [post]
func (p *PricingController) Quote(c *gin.Context) {
	var req request_models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	memberCount := 1
	if req.MemberCount != nil {
		memberCount = *req.MemberCount
	}

	breakdown, err := p.pricingService.ComputeBreakdown(request_models.PricingRequest{
		BasePrice:        req.BasePrice,
		RoomCount:        req.RoomCount,
		Nights:           req.Nights,
		MemberCount:      memberCount,
		DaysUntilCheckIn: req.DaysUntilCheckIn,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown, "Price breakdown computed successfully")
}

// SurgeQuote godoc
// @Summary Apply the short-notice surge multiplier to a base price
// @Tags Pricing
// @Produce json
// @Param base_price query number true "Base price per room-night"
// @Param days_until_check_in query int true "Days until check-in"
// @Success 200 {object} response_models.AdjustedPrice
// @Failure 400 {object} utils.APIResponse
// @Router /pricing/surge [get]
func (p *PricingController) SurgeQuote(c *gin.Context) {
	basePrice, err := strconv.ParseFloat(c.Query("base_price"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid base price")
		return
	}
	days, err := strconv.Atoi(c.Query("days_until_check_in"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid days until check-in")
		return
	}

	adjusted, err := p.pricingService.SurgePrice(basePrice, days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, adjusted, "Surge price computed successfully")
}

// OccupancyQuote godoc
// @Summary Apply the occupancy multiplier to a base price
// @Tags Pricing
// @Produce json
// @Param base_price query number true "Base price per room-night"
// @Param occupancy_rate query number true "Current occupancy rate in [0,1]"
// @Success 200 {object} response_models.AdjustedPrice
// @Failure 400 {object} utils.APIResponse
// @Router /pricing/occupancy [get]
func (p *PricingController) OccupancyQuote(c *gin.Context) {
	basePrice, err := strconv.ParseFloat(c.Query("base_price"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid base price")
		return
	}
	rate, err := strconv.ParseFloat(c.Query("occupancy_rate"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid occupancy rate")
		return
	}

	adjusted, err := p.pricingService.OccupancyPrice(basePrice, rate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, adjusted, "Occupancy price computed successfully")
}
