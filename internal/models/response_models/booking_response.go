package response_models

type BookingResponse struct {
	ID        string `json:"id"`
	HotelID   string `json:"hotel_id"`
	HotelName string `json:"hotel_name,omitempty"`
	EventType string `json:"event_type"`
	RoomCount int    `json:"room_count"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Status    string `json:"status"`

	MemberCount int              `json:"member_count"`
	Breakdown   PricingBreakdown `json:"breakdown"`

	// Suitability of the chosen hotel for the booking's event type,
	// computed fresh at creation time and never stored.
	Suitability *SuitabilityScore `json:"suitability,omitempty"`
}

type MemberResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type InviteResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	ExpiresIn int64  `json:"expires_in_seconds"`
}
