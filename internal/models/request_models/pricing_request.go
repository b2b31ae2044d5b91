package request_models

// PricingRequest is the full input to the pricing engine. MemberCount zero is
// legal and means "no members yet"; DaysUntilCheckIn may be negative when the
// check-in date is already in the past.
type PricingRequest struct {
	BasePrice        float64 `json:"base_price" binding:"min=0"`
	RoomCount        int     `json:"room_count" binding:"required,min=1"`
	Nights           int     `json:"nights" binding:"required,min=1"`
	MemberCount      int     `json:"member_count" binding:"min=0"`
	DaysUntilCheckIn int     `json:"days_until_check_in"`
}

type QuoteRequest struct {
	BasePrice        float64 `json:"base_price" binding:"min=0"`
	RoomCount        int     `json:"room_count" binding:"required,min=1"`
	Nights           int     `json:"nights" binding:"required,min=1"`
	MemberCount      *int    `json:"member_count"`
	DaysUntilCheckIn int     `json:"days_until_check_in"`
}

type CustomSplitRequest struct {
	Shares []CustomShare `json:"shares" binding:"required,min=1,dive"`
}

type CustomShare struct {
	MemberKey string  `json:"member_key" binding:"required"`
	Amount    float64 `json:"amount" binding:"min=0"`
}
