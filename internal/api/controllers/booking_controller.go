package controllers

import (
	"net/http"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/request_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/response_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/services"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Create a group booking
// @Description Creates a booking for the authenticated organizer, prices the stay and stores the breakdown with the booking record.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Hotel, event type, rooms, dates"
// @Success 200 {object} response_models.BookingResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	organizerId := c.GetString("user_id")

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), organizerId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking created successfully")
}

// GetBookingById godoc
// @Summary Get booking details by ID
// @Tags Booking
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response_models.BookingResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId} [get]
func (b *BookingController) GetBookingById(c *gin.Context) {
	bookingId := c.Param("bookingId")
	if bookingId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	booking, err := b.bookingService.GetBookingById(c.Request.Context(), bookingId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}

// ListMyBookings godoc
// @Summary List bookings organized by the authenticated user
// @Tags Booking
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.BookingResponse
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) ListMyBookings(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	organizerId := c.GetString("user_id")

	bookings, err := b.bookingService.ListBookingsByOrganizer(c.Request.Context(), organizerId, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// GetEqualSplit godoc
// @Summary Split the booking total equally across joined members
// @Tags Booking
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response_models.MemberSplit
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/split [get]
func (b *BookingController) GetEqualSplit(c *gin.Context) {
	bookingId := c.Param("bookingId")
	if bookingId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	split, err := b.bookingService.SplitForBooking(c.Request.Context(), bookingId, nil)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, split, "Split computed successfully")
}

// ApplyCustomSplit godoc
// @Summary Validate a custom split of the booking total
// @Description A custom split whose shares do not sum to the total is not rejected; the response falls back to an equal split and carries a warning flag.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body request_models.CustomSplitRequest true "Member shares"
// @Success 200 {object} response_models.MemberSplit
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/split [post]
func (b *BookingController) ApplyCustomSplit(c *gin.Context) {
	bookingId := c.Param("bookingId")
	if bookingId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	var req request_models.CustomSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	shares := make([]response_models.MemberShare, 0, len(req.Shares))
	for _, share := range req.Shares {
		shares = append(shares, response_models.MemberShare{
			MemberKey: share.MemberKey,
			Amount:    share.Amount,
		})
	}

	split, err := b.bookingService.SplitForBooking(c.Request.Context(), bookingId, shares)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, split, "Split computed successfully")
}
