package response_models

// PricingBreakdown is the engine's full price decomposition for a group stay.
// Every derived field is recomputed from the request on each call; nothing in
// here is read back as an input, so repricing the same request is idempotent
// apart from GeneratedAt.
type PricingBreakdown struct {
	BaseTotal         float64 `json:"base_total"`
	Tax               float64 `json:"tax"`
	ServiceFee        float64 `json:"service_fee"`
	GroupDiscount     float64 `json:"group_discount"`
	EarlyBirdDiscount float64 `json:"early_bird_discount"`
	TotalDiscount     float64 `json:"total_discount"`
	TotalPerRoom      float64 `json:"total_per_room"`
	TotalForAllRooms  float64 `json:"total_for_all_rooms"`
	PricePerMember    float64 `json:"price_per_member"`

	// DiscountClamped is set when the combined discounts exceeded the
	// subtotal and the total was clamped to zero instead of going negative.
	DiscountClamped bool `json:"discount_clamped,omitempty"`

	GeneratedAt int64 `json:"generated_at"`
}

type AdjustedPrice struct {
	BasePrice     float64 `json:"base_price"`
	Multiplier    float64 `json:"multiplier"`
	AdjustedPrice float64 `json:"adjusted_price"`
}
