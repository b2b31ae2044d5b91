package request_models

// SuitabilityRequest describes one hotel against one event category.
// Unrecognized event types resolve to the general profile; StarRating zero
// means "not rated" and defaults inside the engine.
type SuitabilityRequest struct {
	EventType  string   `json:"event_type"`
	Amenities  []string `json:"amenities"`
	StarRating int      `json:"star_rating"`
	Price      float64  `json:"price"`
}
