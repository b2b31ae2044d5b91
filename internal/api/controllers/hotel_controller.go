package controllers

import (
	"net/http"
	"strconv"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/request_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/services"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
	"github.com/gin-gonic/gin"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelController(hotelService services.HotelServiceInterface) *HotelController {
	return &HotelController{
		hotelService: hotelService,
	}
}

// ListHotels godoc
// @Summary List hotels
// @Tags Hotel
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.HotelResponse
// @Router /hotels [get]
func (h *HotelController) ListHotels(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	hotels, err := h.hotelService.ListHotels(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

// GetHotelById godoc
// @Summary Get hotel details by ID
// @Tags Hotel
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Success 200 {object} response_models.HotelResponse
// @Failure 404 {object} utils.APIResponse
// @Router /hotels/{hotelId} [get]
func (h *HotelController) GetHotelById(c *gin.Context) {
	hotelId := c.Param("hotelId")
	if hotelId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Hotel ID is required")
		return
	}

	hotel, err := h.hotelService.GetHotelById(c.Request.Context(), hotelId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotel, "Hotel fetched successfully")
}

// CreateHotel godoc
// @Summary Create a hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body request_models.CreateHotelRequest true "Hotel fields"
// @Success 200 {object} response_models.HotelResponse
// @Security BearerAuth
// @Router /hotels [post]
func (h *HotelController) CreateHotel(c *gin.Context) {
	var req request_models.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	hotel, err := h.hotelService.CreateHotel(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotel, "Hotel created successfully")
}

// ScoreForEvent godoc
// @Summary Score a hotel's suitability for an event category
// @Description Rates the hotel's stored amenities, star rating and price against the requested event category. Unknown categories fall back to the general profile.
// @Tags Hotel
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param event_type query string false "Event category (mice, wedding, conference, general)"
// @Success 200 {object} response_models.SuitabilityScore
// @Failure 404 {object} utils.APIResponse
// @Router /hotels/{hotelId}/suitability [get]
func (h *HotelController) ScoreForEvent(c *gin.Context) {
	hotelId := c.Param("hotelId")
	if hotelId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Hotel ID is required")
		return
	}
	eventType := c.DefaultQuery("event_type", "general")

	score, err := h.hotelService.ScoreForEvent(c.Request.Context(), hotelId, eventType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, score, "Suitability computed successfully")
}

// CompareCategories godoc
// @Summary Compare a hotel across all event categories
// @Tags Hotel
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Success 200 {array} response_models.CategoryMatch
// @Failure 404 {object} utils.APIResponse
// @Router /hotels/{hotelId}/compare [get]
func (h *HotelController) CompareCategories(c *gin.Context) {
	hotelId := c.Param("hotelId")
	if hotelId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Hotel ID is required")
		return
	}

	matches, err := h.hotelService.CompareCategories(c.Request.Context(), hotelId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, matches, "Category comparison computed successfully")
}

func parsePaging(c *gin.Context) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}
