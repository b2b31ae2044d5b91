package controllers

import (
	"net/http"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/request_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/services"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
	"github.com/gin-gonic/gin"
)

type MemberController struct {
	memberService services.MemberServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// InviteMember godoc
// @Summary Invite a member to a booking
// @Description Issues a single-use invite token. Delivery of the invite is handled by the notification layer.
// @Tags Member
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body request_models.InviteMemberRequest true "Invitee email"
// @Success 200 {object} response_models.InviteResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/invites [post]
func (m *MemberController) InviteMember(c *gin.Context) {
	bookingId := c.Param("bookingId")
	if bookingId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	var req request_models.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	invite, err := m.memberService.InviteMember(c.Request.Context(), bookingId, req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invite, "Invite created successfully")
}

// AcceptInvite godoc
// @Summary Accept a booking invite
// @Description Consumes the invite token, joins the booking and returns the repriced breakdown.
// @Tags Member
// @Accept json
// @Produce json
// @Param request body request_models.AcceptInviteRequest true "Invite token"
// @Success 200 {object} response_models.PricingBreakdown
// @Failure 410 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invites/accept [post]
func (m *MemberController) AcceptInvite(c *gin.Context) {
	var req request_models.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	accountId := c.GetString("user_id")

	breakdown, err := m.memberService.AcceptInvite(c.Request.Context(), req.Token, accountId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown, "Invite accepted, booking repriced")
}

// ListMembers godoc
// @Summary List members of a booking
// @Tags Member
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {array} response_models.MemberResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/members [get]
func (m *MemberController) ListMembers(c *gin.Context) {
	bookingId := c.Param("bookingId")
	if bookingId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	members, err := m.memberService.ListMembers(c.Request.Context(), bookingId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}

// RemoveMember godoc
// @Summary Remove a member from a booking
// @Description Removes the member and returns the repriced breakdown for the remaining group.
// @Tags Member
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param memberId path string true "Member ID"
// @Success 200 {object} response_models.PricingBreakdown
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/members/{memberId} [delete]
func (m *MemberController) RemoveMember(c *gin.Context) {
	bookingId := c.Param("bookingId")
	memberId := c.Param("memberId")
	if bookingId == "" || memberId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID and member ID are required")
		return
	}

	breakdown, err := m.memberService.RemoveMember(c.Request.Context(), bookingId, memberId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown, "Member removed, booking repriced")
}
