package request_models

type CreateBookingRequest struct {
	HotelID   string `json:"hotel_id" binding:"required,uuid4"`
	EventType string `json:"event_type" binding:"required"`
	RoomCount int    `json:"room_count" binding:"required,min=1"`
	// RFC3339 (e.g., "2026-10-10T14:00:00+05:30")
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}
